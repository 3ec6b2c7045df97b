package profile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-checkoutfields/pkg/profile"
)

func TestMemoryStore_MetaRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := profile.NewMemoryStore()

	got, err := store.Meta(ctx, profile.Customer("7"), profile.KeyBirthdate)
	if err != nil || got != "" {
		t.Fatalf("expected empty missing value, got %q, %v", got, err)
	}

	if err := store.SetMeta(ctx, profile.Customer("7"), profile.KeyBirthdate, "1990-05-21"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _ = store.Meta(ctx, profile.Customer("7"), profile.KeyBirthdate)
	if got != "1990-05-21" {
		t.Fatalf("expected stored value, got %q", got)
	}

	other, _ := store.Meta(ctx, profile.Order("7"), profile.KeyBirthdate)
	if other != "" {
		t.Fatalf("expected scopes to be isolated, got %q", other)
	}
}

func TestMemoryStore_RejectsBadArgs(t *testing.T) {
	ctx := context.Background()
	store := profile.NewMemoryStore()

	if err := store.SetMeta(ctx, profile.Ref{ID: "1"}, "k", "v"); !errors.Is(err, profile.ErrInvalidRef) {
		t.Fatalf("expected ErrInvalidRef, got %v", err)
	}
	if err := store.SetMeta(ctx, profile.Customer("1"), " ", "v"); !errors.Is(err, profile.ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
}

func TestMemoryStore_Identities(t *testing.T) {
	ctx := context.Background()
	store := profile.NewMemoryStore()
	want := profile.Identity{ID: "42", FirstName: "Alice", LastName: "Martin", Email: "alice@example.com"}
	if err := store.PutIdentity(ctx, want); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := store.Identity(ctx, " 42 ")
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("identity mismatch (-want +got):\n%s", diff)
	}
	if _, err := store.Identity(ctx, "missing"); !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIdentity_Anonymous(t *testing.T) {
	if !(profile.Identity{FirstName: "Bob"}).Anonymous() {
		t.Fatalf("identity without id should be anonymous")
	}
	if (profile.Identity{ID: "1"}).Anonymous() {
		t.Fatalf("identity with id should not be anonymous")
	}
}
