package settings

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Flag identifies an optional checkout field toggled by an administrator.
type Flag int

const (
	FlagTitle Flag = iota + 1
	FlagBirthdate
)

// Settings keys backing each flag.
const (
	KeyTitleEnabled     = "title_field_enabled"
	KeyBirthdateEnabled = "birthdate_field_enabled"
)

// Key returns the settings key backing the flag.
func (f Flag) Key() string {
	switch f {
	case FlagTitle:
		return KeyTitleEnabled
	case FlagBirthdate:
		return KeyBirthdateEnabled
	default:
		return ""
	}
}

func (f Flag) String() string {
	switch f {
	case FlagTitle:
		return "title"
	case FlagBirthdate:
		return "birthdate"
	default:
		return fmt.Sprintf("flag(%d)", int(f))
	}
}

// Flags lists every known flag in a stable order.
func Flags() []Flag {
	return []Flag{FlagTitle, FlagBirthdate}
}

// Snapshot is a read-only view of the flags taken once per request. The zero
// value has every optional field disabled.
type Snapshot struct {
	Title     bool `json:"title" yaml:"title"`
	Birthdate bool `json:"birthdate" yaml:"birthdate"`
}

// Enabled reports whether the flag is on. Unknown flags are off.
func (s Snapshot) Enabled(flag Flag) bool {
	switch flag {
	case FlagTitle:
		return s.Title
	case FlagBirthdate:
		return s.Birthdate
	default:
		return false
	}
}

// With returns a copy of s with flag set to enabled.
func (s Snapshot) With(flag Flag, enabled bool) Snapshot {
	switch flag {
	case FlagTitle:
		s.Title = enabled
	case FlagBirthdate:
		s.Birthdate = enabled
	}
	return s
}

// Store is the key/value settings backend.
type Store interface {
	// Option returns the raw value for key. ok is false when the key is unset.
	Option(ctx context.Context, key string) (value string, ok bool, err error)
}

// Writer persists settings values.
type Writer interface {
	SetOption(ctx context.Context, key, value string) error
}

// Load reads every flag from store. Missing keys are disabled. On error the
// returned snapshot holds the flags read so far and the rest stay disabled.
func Load(ctx context.Context, store Store) (Snapshot, error) {
	var snap Snapshot
	if store == nil {
		return snap, nil
	}
	for _, flag := range Flags() {
		if err := ctx.Err(); err != nil {
			return snap, err
		}
		raw, ok, err := store.Option(ctx, flag.Key())
		if err != nil {
			return snap, fmt.Errorf("settings: read %s: %w", flag.Key(), err)
		}
		if !ok {
			continue
		}
		snap = snap.With(flag, ParseBool(raw))
	}
	return snap, nil
}

// Save writes every flag of snap using the canonical yes/no encoding.
func Save(ctx context.Context, w Writer, snap Snapshot) error {
	if w == nil {
		return ErrReadOnly
	}
	for _, flag := range Flags() {
		if err := w.SetOption(ctx, flag.Key(), FormatBool(snap.Enabled(flag))); err != nil {
			return fmt.Errorf("settings: write %s: %w", flag.Key(), err)
		}
	}
	return nil
}

// ParseBool interprets a stored flag value. Anything other than an explicit
// affirmative is false.
func ParseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1", "on":
		return true
	default:
		return false
	}
}

// FormatBool renders a flag value the way it is stored.
func FormatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// MemoryStore keeps settings in a map. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	options map[string]string
}

// NewMemoryStore returns a store seeded with values.
func NewMemoryStore(values map[string]string) *MemoryStore {
	store := &MemoryStore{options: make(map[string]string, len(values))}
	for key, value := range values {
		store.options[strings.TrimSpace(key)] = value
	}
	return store
}

// Option implements Store.
func (m *MemoryStore) Option(_ context.Context, key string) (string, bool, error) {
	if m == nil {
		return "", false, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.options[key]
	return value, ok, nil
}

// SetOption implements Writer.
func (m *MemoryStore) SetOption(_ context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.options == nil {
		m.options = make(map[string]string)
	}
	m.options[key] = value
	return nil
}

// Layered consults each store in order and returns the first value found.
type Layered []Store

// Option implements Store.
func (l Layered) Option(ctx context.Context, key string) (string, bool, error) {
	for _, store := range l {
		if store == nil {
			continue
		}
		value, ok, err := store.Option(ctx, key)
		if err != nil {
			return "", false, err
		}
		if ok {
			return value, true, nil
		}
	}
	return "", false, nil
}
