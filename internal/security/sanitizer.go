package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup from user-supplied free text (post bodies,
// comments, bios) before it is persisted.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean removes all HTML, unescapes the entities bluemonday introduces and
// trims surrounding whitespace, leaving plain text.
func (s *Sanitizer) Clean(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}
