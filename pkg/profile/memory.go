package profile

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MemoryStore keeps metadata and identities in maps. It implements Store and
// Directory and is safe for concurrent use.
type MemoryStore struct {
	mu         sync.RWMutex
	meta       map[Ref]map[string]string
	identities map[string]Identity
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		meta:       make(map[Ref]map[string]string),
		identities: make(map[string]Identity),
	}
}

// Meta implements MetaReader.
func (m *MemoryStore) Meta(ctx context.Context, ref Ref, key string) (string, error) {
	if err := checkArgs(ctx, ref, key); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.meta[ref][key], nil
}

// SetMeta implements MetaWriter.
func (m *MemoryStore) SetMeta(ctx context.Context, ref Ref, key, value string) error {
	if err := checkArgs(ctx, ref, key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	bag, ok := m.meta[ref]
	if !ok {
		bag = make(map[string]string)
		m.meta[ref] = bag
	}
	bag[key] = value
	return nil
}

// PutIdentity registers or replaces an identity.
func (m *MemoryStore) PutIdentity(_ context.Context, identity Identity) error {
	id := strings.TrimSpace(identity.ID)
	if id == "" {
		return fmt.Errorf("%w: identity id is required", ErrInvalidRef)
	}
	identity.ID = id
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identities[id] = identity
	return nil
}

// Identity implements Directory.
func (m *MemoryStore) Identity(_ context.Context, id string) (Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	identity, ok := m.identities[strings.TrimSpace(id)]
	if !ok {
		return Identity{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return identity, nil
}

func checkArgs(ctx context.Context, ref Ref, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ref.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidRef, ref)
	}
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}
