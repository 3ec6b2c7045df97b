package submission

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// maxUnescape bounds how many layers of entity encoding are peeled off before
// the policy runs.
const maxUnescape = 4

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// SanitizeText reduces a submitted value to a single line of plain text: markup
// is stripped, line breaks and tabs become spaces, runs of whitespace collapse
// and the result is trimmed. Entity-encoded markup is decoded before the
// policy runs so it is stripped like literal markup, and no angle bracket
// survives in the result.
func SanitizeText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	decoded := raw
	for range maxUnescape {
		next := html.UnescapeString(decoded)
		if next == decoded {
			break
		}
		decoded = next
	}
	cleaned := html.UnescapeString(textSanitizer().Sanitize(decoded))
	cleaned = angleBrackets.Replace(cleaned)
	return strings.Join(strings.Fields(cleaned), " ")
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
