package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-checkoutfields/pkg/mergetags"
	"github.com/goliatone/go-checkoutfields/pkg/profile"
)

func run(t *testing.T, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	if err := execute(context.Background(), args); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.Bytes()
}

func TestParsePairs(t *testing.T) {
	got, err := parsePairs([]string{"billing_title=2", "billing_birthdate=05/21/1990", "note=a=b"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := map[string]string{"billing_title": "2", "billing_birthdate": "05/21/1990", "note": "a=b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pairs mismatch (-want +got):\n%s", diff)
	}
	if _, err := parsePairs([]string{"=x"}); err == nil {
		t.Fatalf("expected error for empty key")
	}
	if _, err := parsePairs([]string{"novalue"}); err == nil {
		t.Fatalf("expected error for missing separator")
	}
}

func TestCommands_EndToEnd(t *testing.T) {
	db := filepath.Join(t.TempDir(), "checkout.db")

	run(t, "--db", db, "settings", "set", "title_field_enabled", "yes")
	run(t, "--db", db, "settings", "set", "birthdate_field_enabled", "yes")
	run(t, "--db", db, "customer", "put", "--customer", "42", "--first-name", "Alice", "--last-name", "Martin", "--email", "alice@example.com")
	run(t, "--db", db, "submit", "--customer", "42", "--order", "1001", "billing_title=2", "billing_birthdate=05/21/1990")

	var tags mergetags.Set
	if err := json.Unmarshal(run(t, "--db", db, "export", "--customer", "42"), &tags); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	want := mergetags.Set{"PRENOM": "Alice", "NOM": "Martin", "CIV": "Ms", "DDN": "05/21"}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Fatalf("export mismatch (-want +got):\n%s", diff)
	}

	var prefilled map[string]string
	if err := json.Unmarshal(run(t, "--db", db, "prefill", "--customer", "42", "billing_birthdate"), &prefilled); err != nil {
		t.Fatalf("decode prefill: %v", err)
	}
	if prefilled["billing_birthdate"] != "05/21/1990" {
		t.Fatalf("unexpected prefill %v", prefilled)
	}
}

func TestCommands_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	db := filepath.Join(t.TempDir(), "checkout.db")

	run(t, "--db", db, "settings", "set", "title_field_enabled", "yes")
	run(t, "--db", db, "customer", "put", "--customer", "42", "--first-name", "Alice", "--last-name", "Martin")
	run(t, "--db", db, "submit", "--customer", "42", "--order", "1001", "billing_title=2")

	var written map[string][]string
	if err := json.Unmarshal(run(t, "--db", db, "submit", "billing_title=1"), &written); err != nil {
		t.Fatalf("decode submit: %v", err)
	}
	if len(written) != 1 {
		t.Fatalf("expected only the order to be written, got %v", written)
	}
	for ref := range written {
		if ref == profile.Order("1001").String() || ref == profile.Customer("42").String() {
			t.Fatalf("previous run's flags reused: %v", written)
		}
	}

	var tags mergetags.Set
	if err := json.Unmarshal(run(t, "--db", db, "export"), &tags); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	want := mergetags.Set{"PRENOM": "", "NOM": ""}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Fatalf("anonymous export mismatch (-want +got):\n%s", diff)
	}
}
