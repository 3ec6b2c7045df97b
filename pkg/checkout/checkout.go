package checkout

import (
	"github.com/goliatone/go-checkoutfields/pkg/fields"
	"github.com/goliatone/go-checkoutfields/pkg/settings"
)

// Field keys contributed by this package.
const (
	KeyTitle     = "billing_title"
	KeyBirthdate = "billing_birthdate"
	KeyEmail     = "billing_email"
)

// Title option codes. They are stored and exported, keep them stable.
const (
	TitleMr = "1"
	TitleMs = "2"
)

// Render priorities. The title sits before every standard field, the
// birthdate after all of them.
const (
	PriorityTitle     = -100
	PriorityBirthdate = 2000
)

// BirthdatePlaceholder hints the Display encoding to shoppers.
const BirthdatePlaceholder = "mm/dd/yyyy"

// BirthdateMask is the input mask matching the Display encoding.
const BirthdateMask = "00/00/0000"

// TitleOptions returns the honorific choices in display order.
func TitleOptions() []fields.Option {
	return []fields.Option{
		{Value: TitleMs, Label: "Ms"},
		{Value: TitleMr, Label: "Mr"},
	}
}

// TitleLabel maps a stored title code to its label.
func TitleLabel(code string) (string, bool) {
	for _, opt := range TitleOptions() {
		if opt.Value == code {
			return opt.Label, true
		}
	}
	return "", false
}

// TitleDescriptor returns the honorific radio field when the title flag is on.
func TitleDescriptor(snap settings.Snapshot) (fields.Descriptor, bool) {
	if !snap.Enabled(settings.FlagTitle) {
		return fields.Descriptor{}, false
	}
	return fields.Descriptor{
		Key:          KeyTitle,
		Kind:         fields.KindRadio,
		Label:        "Title",
		Required:     true,
		Priority:     PriorityTitle,
		Classes:      []string{"billing-title"},
		LabelClasses: []string{"control-label"},
		Options:      TitleOptions(),
	}, true
}

// BirthdateDescriptor returns the birthdate text field when the birthdate flag
// is on and the request renders the checkout page.
func BirthdateDescriptor(snap settings.Snapshot, onCheckout bool) (fields.Descriptor, bool) {
	if !snap.Enabled(settings.FlagBirthdate) || !onCheckout {
		return fields.Descriptor{}, false
	}
	return fields.Descriptor{
		Key:          KeyBirthdate,
		Kind:         fields.KindText,
		Label:        "Date of birth",
		Required:     false,
		Priority:     PriorityBirthdate,
		Classes:      []string{"billing-birthdate"},
		LabelClasses: []string{"control-label"},
		Placeholder:  BirthdatePlaceholder,
		Autocomplete: "bday",
		InputMask:    BirthdateMask,
	}, true
}

// DefaultEmailPlaceholder is used by EmailPlaceholder when none is configured.
const DefaultEmailPlaceholder = "name@example.com"

// EmailPlaceholder sets a placeholder on the billing email field and makes
// sure it validates as an email. Collections without the field are returned
// unchanged.
func EmailPlaceholder(c fields.Collection, placeholder string) fields.Collection {
	if placeholder == "" {
		placeholder = DefaultEmailPlaceholder
	}
	out := c.Clone()
	out.Update(fields.SectionBilling, KeyEmail, func(d *fields.Descriptor) {
		d.Placeholder = placeholder
		if !d.HasValidation("email") {
			d.Validate = append(d.Validate, "email")
		}
	})
	return out
}
