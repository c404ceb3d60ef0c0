package dedup

import (
	"strings"
	"testing"

	"github.com/ternarybob/colligo/internal/models"
)

func TestBuildHash(t *testing.T) {
	svc := NewService()

	base := &models.JobDTO{
		Title:       "Software Engineer",
		Company:     models.Company{Name: "Acme"},
		Location:    models.Location{City: "Austin", Country: "US"},
		Description: "Build things.",
	}

	t.Run("deterministic", func(t *testing.T) {
		if svc.BuildHash(base) != svc.BuildHash(base) {
			t.Error("hash not deterministic")
		}
	})

	t.Run("case-insensitive", func(t *testing.T) {
		upper := *base
		upper.Title = "SOFTWARE ENGINEER"
		if svc.BuildHash(base) != svc.BuildHash(&upper) {
			t.Error("hash differs on case only")
		}
	})

	t.Run("content-sensitive", func(t *testing.T) {
		other := *base
		other.Company = models.Company{Name: "Globex"}
		if svc.BuildHash(base) == svc.BuildHash(&other) {
			t.Error("hash identical for different companies")
		}
	})

	t.Run("description beyond 300 chars ignored", func(t *testing.T) {
		long := *base
		long.Description = strings.Repeat("a", 300) + "tail one"
		longer := *base
		longer.Description = strings.Repeat("a", 300) + "tail two"
		if svc.BuildHash(&long) != svc.BuildHash(&longer) {
			t.Error("hash sensitive to description past the cap")
		}
	})

	t.Run("cap counts characters not bytes", func(t *testing.T) {
		// 300 two-byte runes: a byte-based cap would split one in half.
		a := *base
		a.Description = strings.Repeat("é", 300) + "tail one"
		b := *base
		b.Description = strings.Repeat("é", 300) + "tail two"
		if svc.BuildHash(&a) != svc.BuildHash(&b) {
			t.Error("hash sensitive to multi-byte description past the cap")
		}

		within := *base
		within.Description = strings.Repeat("é", 299) + "x"
		if svc.BuildHash(&a) == svc.BuildHash(&within) {
			t.Error("hash blind to a difference within the cap")
		}
	})

	t.Run("hex sha256 shape", func(t *testing.T) {
		if h := svc.BuildHash(base); len(h) != 64 {
			t.Errorf("hash length = %d, want 64", len(h))
		}
	})
}

func TestCompositeKey(t *testing.T) {
	svc := NewService()
	hash := "abc123"

	tests := []struct {
		name string
		dto  models.JobDTO
		want string
	}{
		{
			name: "external id wins",
			dto: models.JobDTO{
				Source:       models.SourceGreenhouse,
				ExternalID:   "gh-42",
				CanonicalURL: "https://boards.greenhouse.io/acme/42",
			},
			want: "greenhouse:gh-42",
		},
		{
			name: "url second",
			dto: models.JobDTO{
				Source:       models.SourceLinkedIn,
				CanonicalURL: "https://WWW.Linkedin.com/jobs/view/99?utm_source=share#top",
			},
			want: "linkedin:https://www.linkedin.com/jobs/view/99",
		},
		{
			name: "hash fallback",
			dto:  models.JobDTO{Source: models.SourceManualUpload},
			want: "manual_upload:abc123",
		},
		{
			name: "unparseable url falls through to hash",
			dto: models.JobDTO{
				Source:       models.SourceIndeed,
				CanonicalURL: "not a url",
			},
			want: "indeed:abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.CompositeKey(&tt.dto, hash); got != tt.want {
				t.Errorf("CompositeKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips query", "https://acme.com/jobs/1?utm=x&ref=y", "https://acme.com/jobs/1"},
		{"strips fragment", "https://acme.com/jobs/1#apply", "https://acme.com/jobs/1"},
		{"lowers host", "https://ACME.com/Jobs/1", "https://acme.com/Jobs/1"},
		{"trims trailing slash", "https://acme.com/jobs/", "https://acme.com/jobs"},
		{"no host", "not a url", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.in); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
