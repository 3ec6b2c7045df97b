package prefill

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-checkoutfields/pkg/dateformat"
	"github.com/goliatone/go-checkoutfields/pkg/profile"
)

// Resolver supplies initial checkout values from the signed-in identity.
type Resolver struct {
	meta   profile.MetaReader
	logger *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for swallowed store errors.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New returns a Resolver reading customer metadata from meta.
func New(meta profile.MetaReader, options ...Option) *Resolver {
	r := &Resolver{meta: meta, logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Resolve returns the default for key. handled is false for keys the resolver
// does not own; callers should keep their current value in that case. A
// handled key may still resolve to "", and always does for anonymous shoppers.
func (r *Resolver) Resolve(ctx context.Context, key string, identity profile.Identity) (value string, handled bool) {
	switch key {
	case "billing_first_name", "shipping_first_name":
		return signedIn(identity, identity.FirstName), true
	case "billing_last_name", "shipping_last_name":
		return signedIn(identity, identity.LastName), true
	case "billing_email":
		return signedIn(identity, identity.Email), true
	case profile.KeyBirthdate:
		return r.birthdate(ctx, identity), true
	default:
		return "", false
	}
}

// Prefill is the render-time hook shape: unhandled keys pass current through.
func (r *Resolver) Prefill(ctx context.Context, current, key string, identity profile.Identity) string {
	value, handled := r.Resolve(ctx, key, identity)
	if !handled {
		return current
	}
	return value
}

// signedIn returns value only when identity belongs to a signed-in customer.
func signedIn(identity profile.Identity, value string) string {
	if identity.Anonymous() {
		return ""
	}
	return value
}

func (r *Resolver) birthdate(ctx context.Context, identity profile.Identity) string {
	if identity.Anonymous() || r.meta == nil {
		return ""
	}
	stored, err := r.meta.Meta(ctx, identity.Ref(), profile.KeyBirthdate)
	if err != nil {
		r.logger.Warn("prefill: read stored birthdate",
			zap.String("customer", identity.ID),
			zap.Error(err),
		)
		return ""
	}
	display, ok := dateformat.ToDisplay(strings.TrimSpace(stored))
	if !ok {
		return ""
	}
	return display
}
