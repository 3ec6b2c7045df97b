package mergetags

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-checkoutfields/pkg/checkout"
	"github.com/goliatone/go-checkoutfields/pkg/dateformat"
	"github.com/goliatone/go-checkoutfields/pkg/profile"
	"github.com/goliatone/go-checkoutfields/pkg/settings"
)

// Merge tag keys expected by the mailing list audience.
const (
	TagFirstName = "PRENOM"
	TagLastName  = "NOM"
	TagTitle     = "CIV"
	TagBirthdate = "DDN"
)

// Set maps merge tag keys to values. A missing key means "not sent", which
// the mailing list treats differently from an empty value.
type Set map[string]string

// Clone returns a copy of s. A nil set clones to an empty, non-nil set.
func (s Set) Clone() Set {
	out := make(Set, len(s)+4)
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Exporter derives merge tags from stored customer metadata.
type Exporter struct {
	meta   profile.MetaReader
	logger *zap.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger used for swallowed store errors.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New returns an Exporter reading customer metadata from meta.
func New(meta profile.MetaReader, options ...Option) *Exporter {
	e := &Exporter{meta: meta, logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Export returns base augmented with the tags for identity. base is not
// modified.
//
// PRENOM and NOM are always set: the stored billing name when it is not
// blank, the identity's own name otherwise. CIV is set only for a known title
// code with the title flag on. DDN is set only for a valid stored birthdate
// with the birthdate flag on.
func (e *Exporter) Export(ctx context.Context, snap settings.Snapshot, base Set, identity profile.Identity) Set {
	out := base.Clone()

	out[TagFirstName] = firstNonBlank(e.read(ctx, identity, profile.KeyFirstName), identity.FirstName)
	out[TagLastName] = firstNonBlank(e.read(ctx, identity, profile.KeyLastName), identity.LastName)

	if snap.Enabled(settings.FlagTitle) {
		if code := strings.TrimSpace(e.read(ctx, identity, profile.KeyTitle)); code != "" {
			if label, ok := checkout.TitleLabel(code); ok {
				out[TagTitle] = label
			} else {
				e.logger.Debug("mergetags: unknown title code",
					zap.String("customer", identity.ID),
					zap.String("code", code),
				)
			}
		}
	}

	if snap.Enabled(settings.FlagBirthdate) {
		stored := strings.TrimSpace(e.read(ctx, identity, profile.KeyBirthdate))
		if exported, ok := dateformat.ToExport(stored); ok {
			out[TagBirthdate] = exported
		}
	}
	return out
}

func (e *Exporter) read(ctx context.Context, identity profile.Identity, key string) string {
	if e.meta == nil || identity.Anonymous() {
		return ""
	}
	value, err := e.meta.Meta(ctx, identity.Ref(), key)
	if err != nil {
		e.logger.Warn("mergetags: read meta",
			zap.String("customer", identity.ID),
			zap.String("key", key),
			zap.Error(err),
		)
		return ""
	}
	return value
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
