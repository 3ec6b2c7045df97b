package submission

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-checkoutfields/pkg/dateformat"
	"github.com/goliatone/go-checkoutfields/pkg/profile"
	"github.com/goliatone/go-checkoutfields/pkg/settings"
)

// Handler writes the optional checkout fields to the persistence adapter.
// Every failure degrades to "nothing written": a bad birthdate or an
// unavailable store must not block checkout, so errors are logged instead of
// returned.
type Handler struct {
	store  profile.Store
	logger *zap.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for skipped writes.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New returns a Handler writing to store.
func New(store profile.Store, options ...Option) *Handler {
	h := &Handler{store: store, logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Result lists the keys written by a call, in write order.
type Result struct {
	Written []string
}

// Checkout stores the title and birthdate found in payload under ref. Keys
// missing from payload are left alone; an invalid birthdate writes nothing
// so any earlier value survives.
func (h *Handler) Checkout(ctx context.Context, ref profile.Ref, payload map[string]string) Result {
	var res Result
	if h == nil || h.store == nil {
		return res
	}
	if !ref.Valid() {
		h.logger.Warn("submission: invalid reference", zap.Stringer("ref", ref))
		return res
	}

	if raw, ok := payload[profile.KeyTitle]; ok {
		if h.write(ctx, ref, profile.KeyTitle, SanitizeText(raw)) {
			res.Written = append(res.Written, profile.KeyTitle)
		}
	}

	if raw, ok := payload[profile.KeyBirthdate]; ok {
		display := SanitizeText(raw)
		storage, valid := dateformat.ToStorage(display)
		if !valid {
			h.logger.Debug("submission: birthdate skipped",
				zap.Stringer("ref", ref),
				zap.String("value", display),
			)
		} else if h.write(ctx, ref, profile.KeyBirthdate, storage) {
			res.Written = append(res.Written, profile.KeyBirthdate)
		}
	}
	return res
}

// CustomerUpdated re-normalises a birthdate that was stored in the Display
// encoding. Values already in the Storage encoding do not parse as Display,
// so repeated calls are no-ops. Nothing happens while the birthdate flag is
// off.
func (h *Handler) CustomerUpdated(ctx context.Context, snap settings.Snapshot, ref profile.Ref) Result {
	var res Result
	if h == nil || h.store == nil || !snap.Enabled(settings.FlagBirthdate) {
		return res
	}
	if !ref.Valid() {
		h.logger.Warn("submission: invalid reference", zap.Stringer("ref", ref))
		return res
	}

	stored, err := h.store.Meta(ctx, ref, profile.KeyBirthdate)
	if err != nil {
		h.logger.Warn("submission: read birthdate", zap.Stringer("ref", ref), zap.Error(err))
		return res
	}
	if strings.TrimSpace(stored) == "" {
		return res
	}
	storage, ok := dateformat.ToStorage(SanitizeText(stored))
	if !ok {
		return res
	}
	if h.write(ctx, ref, profile.KeyBirthdate, storage) {
		res.Written = append(res.Written, profile.KeyBirthdate)
	}
	return res
}

func (h *Handler) write(ctx context.Context, ref profile.Ref, key, value string) bool {
	if err := h.store.SetMeta(ctx, ref, key, value); err != nil {
		h.logger.Warn("submission: write skipped",
			zap.Stringer("ref", ref),
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	h.logger.Debug("submission: stored", zap.Stringer("ref", ref), zap.String("key", key))
	return true
}
