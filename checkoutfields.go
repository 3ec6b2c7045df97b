// Package checkoutfields adds an honorific title and a birthdate to a
// checkout form and keeps them flowing through the rest of the order
// lifecycle. Plugin exposes one method per host extension point:
//
//   - BillingFields: field rendering (title, birthdate, email placeholder, reorder)
//   - Prefill: initial values from the signed-in identity
//   - CheckoutSubmitted: order/customer metadata writes
//   - CustomerUpdated: birthdate re-normalisation
//   - MergeTags: mailing list merge tags
//
// Settings are read once per call into a snapshot and passed down
// explicitly. None of the extension points fail the surrounding checkout:
// bad input and store errors degrade to omitted data and are logged.
package checkoutfields

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	"github.com/goliatone/go-checkoutfields/pkg/checkout"
	"github.com/goliatone/go-checkoutfields/pkg/fields"
	"github.com/goliatone/go-checkoutfields/pkg/mergetags"
	"github.com/goliatone/go-checkoutfields/pkg/pipeline"
	"github.com/goliatone/go-checkoutfields/pkg/prefill"
	"github.com/goliatone/go-checkoutfields/pkg/profile"
	"github.com/goliatone/go-checkoutfields/pkg/schema"
	"github.com/goliatone/go-checkoutfields/pkg/settings"
	"github.com/goliatone/go-checkoutfields/pkg/submission"
)

// Option customises the plugin configuration.
type Option func(*Plugin)

// WithSettingsStore sets where feature flags are read from. Without one every
// optional field stays disabled.
func WithSettingsStore(store settings.Store) Option {
	return func(p *Plugin) {
		p.settings = store
	}
}

// WithProfileStore sets the persistence adapter for customer and order
// metadata.
func WithProfileStore(store profile.Store) Option {
	return func(p *Plugin) {
		p.profiles = store
	}
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Plugin) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDispatcher replaces the field rendering pipeline. The default runs
// checkout.DefaultStages.
func WithDispatcher(d *pipeline.Dispatcher) Option {
	return func(p *Plugin) {
		p.dispatcher = d
	}
}

// WithEmailPlaceholder overrides the billing email placeholder used by the
// default pipeline.
func WithEmailPlaceholder(placeholder string) Option {
	return func(p *Plugin) {
		p.emailPlaceholder = placeholder
	}
}

// Plugin wires the pipeline components to their stores.
type Plugin struct {
	settings         settings.Store
	profiles         profile.Store
	logger           *zap.Logger
	dispatcher       *pipeline.Dispatcher
	emailPlaceholder string

	resolver  *prefill.Resolver
	submitter *submission.Handler
	exporter  *mergetags.Exporter
}

// New constructs a Plugin applying any provided options.
func New(options ...Option) *Plugin {
	p := &Plugin{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.dispatcher == nil {
		p.dispatcher = checkout.DefaultStages(pipeline.New(), p.emailPlaceholder)
	}
	if p.profiles == nil {
		p.profiles = profile.NewMemoryStore()
	}
	p.resolver = prefill.New(p.profiles, prefill.WithLogger(p.logger))
	p.submitter = submission.New(p.profiles, submission.WithLogger(p.logger))
	p.exporter = mergetags.New(p.profiles, mergetags.WithLogger(p.logger))
	return p
}

// Settings reads the current flags. A failing store yields the flags read so
// far with the rest disabled.
func (p *Plugin) Settings(ctx context.Context) settings.Snapshot {
	snap, err := settings.Load(ctx, p.settings)
	if err != nil {
		p.logger.Warn("checkoutfields: settings unavailable, optional fields disabled", zap.Error(err))
	}
	return snap
}

// Stages lists the field rendering stages in execution order.
func (p *Plugin) Stages() []string {
	return p.dispatcher.Stages()
}

// BillingFields runs the field rendering pipeline over c. onCheckout tells
// whether the current request renders the checkout page. On a stage failure
// the input collection is returned alongside the error so the host can still
// render its standard fields.
func (p *Plugin) BillingFields(ctx context.Context, c fields.Collection, onCheckout bool) (fields.Collection, error) {
	env := pipeline.Env{Settings: p.Settings(ctx), OnCheckout: onCheckout}
	out, err := p.dispatcher.Run(ctx, env, c)
	if err != nil {
		p.logger.Error("checkoutfields: field pipeline failed", zap.Error(err))
		return c, err
	}
	return out, nil
}

// Prefill returns the initial value for key. Keys the plugin does not own
// keep current.
func (p *Plugin) Prefill(ctx context.Context, current, key string, identity profile.Identity) string {
	return p.resolver.Prefill(ctx, current, key, identity)
}

// CheckoutSubmitted stores the optional fields of payload under ref.
func (p *Plugin) CheckoutSubmitted(ctx context.Context, ref profile.Ref, payload map[string]string) submission.Result {
	return p.submitter.Checkout(ctx, ref, payload)
}

// CustomerUpdated re-normalises the stored birthdate of ref.
func (p *Plugin) CustomerUpdated(ctx context.Context, ref profile.Ref) submission.Result {
	return p.submitter.CustomerUpdated(ctx, p.Settings(ctx), ref)
}

// MergeTags augments base with the merge tags of identity.
func (p *Plugin) MergeTags(ctx context.Context, base mergetags.Set, identity profile.Identity) mergetags.Set {
	return p.exporter.Export(ctx, p.Settings(ctx), base, identity)
}

// SubmissionSchema describes the billing payload the rendered form submits.
func (p *Plugin) SubmissionSchema(ctx context.Context, c fields.Collection, onCheckout bool) (*openapi3.Schema, error) {
	rendered, err := p.BillingFields(ctx, c, onCheckout)
	if err != nil {
		return nil, err
	}
	return schema.FromSection(rendered, fields.SectionBilling), nil
}
