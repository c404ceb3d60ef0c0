package redact

import (
	"strings"
	"testing"
)

func TestRedact(t *testing.T) {
	svc := NewService(true, []string{"description"})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "email redacted",
			in:   "Apply at jobs@acme.com today",
			want: "Apply at [email redacted] today",
		},
		{
			name: "email with plus tag",
			in:   "Contact hiring+backend@acme.co.uk",
			want: "Contact [email redacted]",
		},
		{
			name: "plain phone",
			in:   "Call 555-123-4567 for details",
			want: "Call [phone redacted] for details",
		},
		{
			name: "parenthesized area code",
			in:   "Call (555) 123 4567",
			want: "Call [phone redacted]",
		},
		{
			name: "country code",
			in:   "Reach us on +1 555.123.4567",
			want: "Reach us on [phone redacted]",
		},
		{
			name: "multiple matches",
			in:   "a@b.com or c@d.org",
			want: "[email redacted] or [email redacted]",
		},
		{
			name: "year range untouched",
			in:   "Experience from 2024-2026 preferred",
			want: "Experience from 2024-2026 preferred",
		},
		{
			name: "no PII untouched",
			in:   "Senior Go engineer, Berlin office",
			want: "Senior Go engineer, Berlin office",
		},
		{
			name: "empty text",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Redact(tt.in); got != tt.want {
				t.Errorf("Redact(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRedactDisabled(t *testing.T) {
	svc := NewService(false, []string{"description"})
	in := "Mail me at someone@example.com"

	if got := svc.Redact(in); got != in {
		t.Errorf("disabled redactor changed text: %q", got)
	}
	if svc.Enabled() {
		t.Error("Enabled() = true for disabled service")
	}
	if svc.FieldEnabled("description") {
		t.Error("FieldEnabled = true for disabled service")
	}
}

func TestFieldEnabled(t *testing.T) {
	svc := NewService(true, []string{"description", "Title"})

	if !svc.FieldEnabled("description") {
		t.Error("configured field not enabled")
	}
	if !svc.FieldEnabled("TITLE") {
		t.Error("field matching is not case-insensitive")
	}
	if svc.FieldEnabled("company") {
		t.Error("unconfigured field enabled")
	}

	// An empty field list falls back to the description field.
	fallback := NewService(true, nil)
	if !fallback.FieldEnabled("description") {
		t.Error("empty field list did not default to description")
	}
}

func TestRedactPlaceholdersStable(t *testing.T) {
	svc := NewService(true, []string{"description"})
	out := svc.Redact("someone@example.com / 555-123-4567")

	if !strings.Contains(out, EmailPlaceholder) || !strings.Contains(out, PhonePlaceholder) {
		t.Errorf("placeholders missing from %q", out)
	}
}
