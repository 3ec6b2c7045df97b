package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-checkoutfields/pkg/fields"
)

// maskTokens maps input mask characters to pattern fragments.
var maskTokens = map[rune]string{
	'0': `\d`,
	'9': `\d?`,
	'A': `[A-Za-z0-9]`,
	'S': `[A-Za-z]`,
}

// FromSection builds an object schema describing the submission payload of a
// collection section. Every descriptor becomes a string property; choice
// kinds carry an enum of option codes and masked inputs carry a pattern.
// Optional masked fields also accept the empty string.
func FromSection(c fields.Collection, section string) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	out.Title = section
	var required []string

	for _, d := range c.Section(section) {
		prop := openapi3.NewStringSchema()
		prop.Title = d.Label
		if d.Placeholder != "" {
			prop.Description = d.Placeholder
		}

		switch {
		case d.Kind.HasOptions():
			values := make([]any, 0, len(d.Options))
			for _, opt := range d.Options {
				values = append(values, opt.Value)
			}
			prop = prop.WithEnum(values...)
		case d.Kind == fields.KindEmail:
			prop = prop.WithFormat("email")
		case d.InputMask != "":
			pattern := MaskPattern(d.InputMask)
			if !d.Required {
				pattern = "^$|" + pattern
			}
			prop = prop.WithPattern(pattern)
		}

		out = out.WithProperty(d.Key, prop)
		if d.Required {
			required = append(required, d.Key)
		}
	}
	out.Required = required
	return out
}

// MaskPattern converts an input mask such as "00/00/0000" into an anchored
// regular expression.
func MaskPattern(mask string) string {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range mask {
		if token, ok := maskTokens[r]; ok {
			b.WriteString(token)
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	b.WriteString("$")
	return b.String()
}

// Validate checks payload against s.
func Validate(s *openapi3.Schema, payload map[string]string) error {
	if s == nil {
		return errors.New("schema: schema is nil")
	}
	doc := make(map[string]any, len(payload))
	for k, v := range payload {
		doc[k] = v
	}
	if err := s.VisitJSON(doc, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
