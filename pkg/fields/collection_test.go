package fields_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-checkoutfields/pkg/fields"
)

func TestMerge_SortsByPriorityAndKeepsInput(t *testing.T) {
	base := fields.StandardCheckout()
	before := base.Clone()

	merged := fields.Merge(base, fields.SectionBilling,
		fields.Descriptor{Key: "billing_birthdate", Kind: fields.KindText, Priority: 2000},
		fields.Descriptor{Key: "billing_title", Kind: fields.KindRadio, Priority: -100, Options: []fields.Option{{Value: "1", Label: "Mr"}}},
	)

	keys := merged.Keys(fields.SectionBilling)
	if keys[0] != "billing_title" {
		t.Fatalf("expected title first, got %v", keys)
	}
	if keys[len(keys)-1] != "billing_birthdate" {
		t.Fatalf("expected birthdate last, got %v", keys)
	}
	if diff := cmp.Diff(before, base); diff != "" {
		t.Fatalf("merge mutated its input (-want +got):\n%s", diff)
	}
}

func TestMerge_CollisionReplacesInPlace(t *testing.T) {
	base := fields.NewCollection(fields.Section{Name: fields.SectionBilling, Fields: []fields.Descriptor{
		{Key: "a", Kind: fields.KindText, Priority: 1, Label: "old"},
		{Key: "b", Kind: fields.KindText, Priority: 2},
	}})

	merged := fields.Merge(base, fields.SectionBilling, fields.Descriptor{Key: "a", Kind: fields.KindText, Priority: 1, Label: "new"})

	got := merged.Section(fields.SectionBilling)
	if len(got) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(got))
	}
	if got[0].Key != "a" || got[0].Label != "new" {
		t.Fatalf("expected replaced descriptor first, got %+v", got[0])
	}
}

func TestMerge_TiesKeepInsertionOrder(t *testing.T) {
	merged := fields.Merge(fields.Collection{}, fields.SectionBilling,
		fields.Descriptor{Key: "first", Kind: fields.KindText, Priority: 5},
		fields.Descriptor{Key: "second", Kind: fields.KindText, Priority: 5},
		fields.Descriptor{Key: "early", Kind: fields.KindText, Priority: 1},
		fields.Descriptor{Key: "third", Kind: fields.KindText, Priority: 5},
	)
	want := []string{"early", "first", "second", "third"}
	if diff := cmp.Diff(want, merged.Keys(fields.SectionBilling)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestReorder_AlwaysSortedAndIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		var section fields.Section
		section.Name = fields.SectionBilling
		for i := 0; i < 1+rng.Intn(20); i++ {
			section.Fields = append(section.Fields, fields.Descriptor{
				Key:      string(rune('a' + i)),
				Kind:     fields.KindText,
				Priority: rng.Intn(10) - 5,
			})
		}
		unsorted := fields.Collection{Sections: []fields.Section{section}}

		once := fields.Reorder(unsorted)
		if !fields.Sorted(once) {
			t.Fatalf("round %d: reorder output not sorted: %v", round, once.Keys(fields.SectionBilling))
		}
		twice := fields.Reorder(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("round %d: reorder not idempotent (-want +got):\n%s", round, diff)
		}
	}
}

func TestCollection_Update(t *testing.T) {
	c := fields.StandardCheckout()
	ok := c.Update(fields.SectionBilling, "billing_email", func(d *fields.Descriptor) {
		d.Placeholder = "you@example.com"
	})
	if !ok {
		t.Fatalf("expected billing_email to exist")
	}
	got, _ := c.Field(fields.SectionBilling, "billing_email")
	if got.Placeholder != "you@example.com" {
		t.Fatalf("placeholder not applied: %+v", got)
	}
	if c.Update(fields.SectionShipping, "billing_email", func(*fields.Descriptor) {}) {
		t.Fatalf("expected missing section to report false")
	}
}

func TestDescriptor_Validate(t *testing.T) {
	cases := []struct {
		name    string
		d       fields.Descriptor
		wantErr error
		fails   bool
	}{
		{name: "text ok", d: fields.Descriptor{Key: "k", Kind: fields.KindText}},
		{name: "radio ok", d: fields.Descriptor{Key: "k", Kind: fields.KindRadio, Options: []fields.Option{{Value: "1"}}}},
		{name: "empty key", d: fields.Descriptor{Kind: fields.KindText}, wantErr: fields.ErrEmptyKey, fails: true},
		{name: "unknown kind", d: fields.Descriptor{Key: "k", Kind: "datepicker"}, wantErr: fields.ErrUnknownKind, fails: true},
		{name: "radio without options", d: fields.Descriptor{Key: "k", Kind: fields.KindRadio}, fails: true},
		{name: "text with options", d: fields.Descriptor{Key: "k", Kind: fields.KindText, Options: []fields.Option{{Value: "1"}}}, fails: true},
		{name: "duplicate option", d: fields.Descriptor{Key: "k", Kind: fields.KindSelect, Options: []fields.Option{{Value: "1"}, {Value: "1"}}}, fails: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.d.Validate()
			if !tc.fails {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestStandardBilling_IsValidAndSorted(t *testing.T) {
	for _, d := range fields.StandardBilling() {
		if err := d.Validate(); err != nil {
			t.Fatalf("standard field %s invalid: %v", d.Key, err)
		}
	}
	if !fields.Sorted(fields.StandardCheckout()) {
		t.Fatalf("standard checkout not sorted")
	}
}
