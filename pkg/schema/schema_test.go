package schema_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-checkoutfields/pkg/checkout"
	"github.com/goliatone/go-checkoutfields/pkg/fields"
	"github.com/goliatone/go-checkoutfields/pkg/pipeline"
	"github.com/goliatone/go-checkoutfields/pkg/schema"
	"github.com/goliatone/go-checkoutfields/pkg/settings"
)

func billingSection(t *testing.T) fields.Collection {
	t.Helper()
	d := checkout.DefaultStages(nil, "")
	c, err := d.Run(context.Background(), pipeline.Env{
		Settings:   settings.Snapshot{Title: true, Birthdate: true},
		OnCheckout: true,
	}, fields.StandardCheckout())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return c
}

func validPayload() map[string]string {
	return map[string]string{
		"billing_title":      "2",
		"billing_first_name": "Alice",
		"billing_last_name":  "Martin",
		"billing_country":    "FR",
		"billing_address_1":  "1 rue du Port",
		"billing_city":       "Saint-Malo",
		"billing_state":      "35",
		"billing_postcode":   "35400",
		"billing_phone":      "0102030405",
		"billing_email":      "alice@example.com",
		"billing_birthdate":  "05/21/1990",
	}
}

func TestMaskPattern(t *testing.T) {
	if got := schema.MaskPattern(checkout.BirthdateMask); got != `^\d\d/\d\d/\d\d\d\d$` {
		t.Fatalf("unexpected pattern %q", got)
	}
}

func TestFromSection_Shape(t *testing.T) {
	s := schema.FromSection(billingSection(t), fields.SectionBilling)

	title := s.Properties[checkout.KeyTitle]
	if title == nil || title.Value == nil {
		t.Fatalf("expected title property")
	}
	if diff := cmp.Diff([]any{"2", "1"}, title.Value.Enum); diff != "" {
		t.Fatalf("title enum mismatch (-want +got):\n%s", diff)
	}
	for _, key := range s.Required {
		if key == checkout.KeyBirthdate {
			t.Fatalf("birthdate must not be required")
		}
	}
	if s.Properties[checkout.KeyBirthdate] == nil {
		t.Fatalf("expected birthdate property")
	}
}

func TestValidate(t *testing.T) {
	s := schema.FromSection(billingSection(t), fields.SectionBilling)

	if err := schema.Validate(s, validPayload()); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}

	noBirthdate := validPayload()
	noBirthdate["billing_birthdate"] = ""
	if err := schema.Validate(s, noBirthdate); err != nil {
		t.Fatalf("expected empty optional birthdate to pass, got %v", err)
	}

	cases := map[string]func(map[string]string){
		"unknown title":   func(p map[string]string) { p["billing_title"] = "9" },
		"missing title":   func(p map[string]string) { delete(p, "billing_title") },
		"bad date shape":  func(p map[string]string) { p["billing_birthdate"] = "1990-05-21" },
		"missing surname": func(p map[string]string) { delete(p, "billing_last_name") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := validPayload()
			mutate(p)
			if err := schema.Validate(s, p); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
