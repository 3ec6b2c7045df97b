package fields

import (
	"fmt"
	"strings"
)

// Kind is the closed set of input kinds a descriptor may declare.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindTel      Kind = "tel"
	KindTextarea Kind = "textarea"
	KindRadio    Kind = "radio"
	KindSelect   Kind = "select"
	KindCountry  Kind = "country"
	KindState    Kind = "state"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindEmail, KindTel, KindTextarea, KindRadio, KindSelect, KindCountry, KindState:
		return true
	default:
		return false
	}
}

// HasOptions reports whether the kind renders a fixed list of choices.
func (k Kind) HasOptions() bool {
	return k == KindRadio || k == KindSelect
}

// Section names used by the checkout form.
const (
	SectionBilling  = "billing"
	SectionShipping = "shipping"
	SectionAccount  = "account"
	SectionOrder    = "order"
)

// Option is a single choice of a radio or select descriptor. Value is the
// stable code that gets submitted and stored.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Descriptor declares one checkout input.
type Descriptor struct {
	Key          string   `json:"key"`
	Kind         Kind     `json:"type"`
	Label        string   `json:"label,omitempty"`
	Required     bool     `json:"required"`
	Priority     int      `json:"priority"`
	Classes      []string `json:"class,omitempty"`
	LabelClasses []string `json:"label_class,omitempty"`
	InputClasses []string `json:"input_class,omitempty"`
	Placeholder  string   `json:"placeholder,omitempty"`
	Autocomplete string   `json:"autocomplete,omitempty"`
	InputMask    string   `json:"input_mask,omitempty"`
	Validate     []string `json:"validate,omitempty"`
	Options      []Option `json:"options,omitempty"`
}

// Validate checks the descriptor's kind and kind-specific attributes.
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Key) == "" {
		return ErrEmptyKey
	}
	if !d.Kind.Valid() {
		return fmt.Errorf("%w: %q (field %s)", ErrUnknownKind, d.Kind, d.Key)
	}
	if d.Kind.HasOptions() {
		if len(d.Options) == 0 {
			return fmt.Errorf("fields: %s field %q requires options", d.Kind, d.Key)
		}
		seen := make(map[string]struct{}, len(d.Options))
		for _, opt := range d.Options {
			if _, dup := seen[opt.Value]; dup {
				return fmt.Errorf("fields: field %q repeats option %q", d.Key, opt.Value)
			}
			seen[opt.Value] = struct{}{}
		}
	} else if len(d.Options) > 0 {
		return fmt.Errorf("fields: %s field %q does not accept options", d.Kind, d.Key)
	}
	return nil
}

// OptionLabel returns the label for an option code.
func (d Descriptor) OptionLabel(value string) (string, bool) {
	for _, opt := range d.Options {
		if opt.Value == value {
			return opt.Label, true
		}
	}
	return "", false
}

// Clone returns a deep copy of d.
func (d Descriptor) Clone() Descriptor {
	out := d
	out.Classes = cloneStrings(d.Classes)
	out.LabelClasses = cloneStrings(d.LabelClasses)
	out.InputClasses = cloneStrings(d.InputClasses)
	out.Validate = cloneStrings(d.Validate)
	if d.Options != nil {
		out.Options = append([]Option(nil), d.Options...)
	}
	return out
}

// HasValidation reports whether rule is in the validation list.
func (d Descriptor) HasValidation(rule string) bool {
	for _, existing := range d.Validate {
		if existing == rule {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
