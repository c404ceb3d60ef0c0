// Package redact scrubs obvious PII patterns from free text. Matching is
// best-effort regex work, not a guarantee of complete PII removal.
package redact

import (
	"regexp"
	"strings"
)

// Placeholder tokens substituted for matched PII.
const (
	EmailPlaceholder = "[email redacted]"
	PhonePlaceholder = "[phone redacted]"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	// North-American-shaped phone numbers, tolerating separators, optional
	// country code and area-code parentheses.
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[\s.\-])?(\(\d{3}\)|\d{3})[\s.\-]?\d{3}[\s.\-]?\d{4}`)
)

// Service redacts email and phone patterns when enabled, limited to the
// configured field names.
type Service struct {
	enabled bool
	fields  map[string]bool
}

// NewService creates a redactor applying to the named DTO fields. An empty
// list falls back to the description field; a disabled redactor passes text
// through untouched.
func NewService(enabled bool, fields []string) *Service {
	if len(fields) == 0 {
		fields = []string{"description"}
	}
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[strings.ToLower(strings.TrimSpace(f))] = true
	}
	return &Service{enabled: enabled, fields: set}
}

// Enabled reports whether redaction is active.
func (s *Service) Enabled() bool {
	return s.enabled
}

// FieldEnabled reports whether the named field is subject to redaction.
func (s *Service) FieldEnabled(name string) bool {
	return s.enabled && s.fields[strings.ToLower(name)]
}

// Redact replaces email and phone substrings with fixed placeholders.
// No-op when the service is disabled or the text is empty.
func (s *Service) Redact(text string) string {
	if !s.enabled || text == "" {
		return text
	}
	text = emailRe.ReplaceAllString(text, EmailPlaceholder)
	text = phoneRe.ReplaceAllString(text, PhonePlaceholder)
	return text
}
