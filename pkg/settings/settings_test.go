package settings_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-checkoutfields/pkg/settings"
)

func TestLoad_DefaultsToDisabled(t *testing.T) {
	snap, err := settings.Load(context.Background(), settings.NewMemoryStore(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(settings.Snapshot{}, snap); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ParsesValues(t *testing.T) {
	store := settings.NewMemoryStore(map[string]string{
		settings.KeyTitleEnabled:     "yes",
		settings.KeyBirthdateEnabled: "no",
	})
	snap, err := settings.Load(context.Background(), store)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !snap.Enabled(settings.FlagTitle) || snap.Enabled(settings.FlagBirthdate) {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

type failingStore struct{}

func (failingStore) Option(context.Context, string) (string, bool, error) {
	return "", false, errors.New("boom")
}

func TestLoad_StoreErrorFailsClosed(t *testing.T) {
	snap, err := settings.Load(context.Background(), failingStore{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if snap.Title || snap.Birthdate {
		t.Fatalf("expected disabled flags, got %+v", snap)
	}
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store := settings.NewMemoryStore(nil)
	want := settings.Snapshot{Birthdate: true}
	if err := settings.Save(ctx, store, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _, _ := store.Option(ctx, settings.KeyTitleEnabled)
	if raw != "no" {
		t.Fatalf("expected canonical no, got %q", raw)
	}
	got, err := settings.Load(ctx, store)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBool(t *testing.T) {
	cases := map[string]bool{
		"yes": true, "YES": true, " true ": true, "1": true, "on": true,
		"no": false, "": false, "0": false, "enabled": false,
	}
	for in, want := range cases {
		if got := settings.ParseBool(in); got != want {
			t.Errorf("ParseBool(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLayered_FirstHitWins(t *testing.T) {
	override := settings.NewMemoryStore(map[string]string{settings.KeyTitleEnabled: "no"})
	base := settings.NewMemoryStore(map[string]string{
		settings.KeyTitleEnabled:     "yes",
		settings.KeyBirthdateEnabled: "yes",
	})
	snap, err := settings.Load(context.Background(), settings.Layered{override, base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(settings.Snapshot{Birthdate: true}, snap); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_YAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"settings.yaml": {Data: []byte("title_field_enabled: true\nbirthdate_field_enabled: \"no\"\n")},
		"settings.json": {Data: []byte(`{"title_field_enabled": "no", "birthdate_field_enabled": true}`)},
		"empty.yaml":    {Data: []byte("   \n")},
	}

	ctx := context.Background()
	yamlStore, err := settings.LoadFS(fsys, "settings.yaml")
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	snap, _ := settings.Load(ctx, yamlStore)
	if diff := cmp.Diff(settings.Snapshot{Title: true}, snap); diff != "" {
		t.Fatalf("yaml snapshot mismatch (-want +got):\n%s", diff)
	}

	jsonStore, err := settings.LoadFS(fsys, "settings.json")
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	snap, _ = settings.Load(ctx, jsonStore)
	if diff := cmp.Diff(settings.Snapshot{Birthdate: true}, snap); diff != "" {
		t.Fatalf("json snapshot mismatch (-want +got):\n%s", diff)
	}

	if _, err := settings.LoadFS(fsys, "empty.yaml"); err == nil {
		t.Fatalf("expected error for empty document")
	}
}
