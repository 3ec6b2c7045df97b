package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-checkoutfields/pkg/fields"
	"github.com/goliatone/go-checkoutfields/pkg/settings"
)

// Env is the request-scoped input every stage sees.
type Env struct {
	Settings   settings.Snapshot
	OnCheckout bool
}

// Stage transforms a field collection. Implementations must not mutate their
// input; fields.Merge and fields.Reorder already return copies.
type Stage interface {
	Apply(ctx context.Context, env Env, c fields.Collection) (fields.Collection, error)
}

// StageFunc adapts plain functions to the Stage interface.
type StageFunc func(ctx context.Context, env Env, c fields.Collection) (fields.Collection, error)

// Apply executes the wrapped function when non-nil.
func (fn StageFunc) Apply(ctx context.Context, env Env, c fields.Collection) (fields.Collection, error) {
	if fn == nil {
		return c, nil
	}
	return fn(ctx, env, c)
}

type entry struct {
	name     string
	priority int
	stage    Stage
	order    int
}

// Dispatcher runs registered stages in ascending priority. Ties fall back to
// registration order. The zero value is ready to use.
type Dispatcher struct {
	mu      sync.RWMutex
	entries []entry
}

// New returns an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{}
}

// Register adds a stage. Blank names and nil stages are ignored.
func (d *Dispatcher) Register(name string, priority int, stage Stage) {
	if d == nil || stage == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = append(d.entries, entry{
		name:     trimmed,
		priority: priority,
		stage:    stage,
		order:    len(d.entries),
	})
}

// Stages returns the stage names in execution order.
func (d *Dispatcher) Stages() []string {
	ordered := d.ordered()
	names := make([]string, len(ordered))
	for i, e := range ordered {
		names[i] = e.name
	}
	return names
}

// Run threads c through every stage. The first failing stage stops the run
// and its error is returned wrapped with the stage name alongside the last
// good collection.
func (d *Dispatcher) Run(ctx context.Context, env Env, c fields.Collection) (fields.Collection, error) {
	current := c
	for _, e := range d.ordered() {
		if err := ctx.Err(); err != nil {
			return current, err
		}
		next, err := e.stage.Apply(ctx, env, current)
		if err != nil {
			return current, fmt.Errorf("pipeline: stage %q: %w", e.name, err)
		}
		current = next
	}
	return current, nil
}

func (d *Dispatcher) ordered() []entry {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	entries := append([]entry(nil), d.entries...)
	d.mu.RUnlock()
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority == entries[j].priority {
			return entries[i].order < entries[j].order
		}
		return entries[i].priority < entries[j].priority
	})
	return entries
}
