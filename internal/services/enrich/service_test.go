package enrich

import (
	"testing"

	"github.com/ternarybob/colligo/internal/models"
)

func TestEnrich(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name         string
		dto          models.JobDTO
		wantSkills   []string
		wantBenefits []string
	}{
		{
			name: "skills from description",
			dto: models.JobDTO{
				Title:       "Backend Engineer",
				Description: "We use Go, Kubernetes and PostgreSQL daily.",
			},
			wantSkills: []string{"Go", "PostgreSQL", "Kubernetes"},
		},
		{
			name: "skill from title",
			dto: models.JobDTO{
				Title: "Senior Python Developer",
			},
			wantSkills: []string{"Python"},
		},
		{
			name: "existing entries preserved without duplicates",
			dto: models.JobDTO{
				Title:       "Frontend Engineer",
				Description: "Experience with react and TypeScript.",
				Skills:      []string{"React"},
			},
			wantSkills: []string{"React", "TypeScript"},
		},
		{
			name: "punctuated terms match",
			dto: models.JobDTO{
				Title:       "Systems Engineer",
				Description: "Modern C++ and C# services with CI/CD pipelines.",
			},
			wantSkills: []string{"C++", "C#", "CI/CD"},
		},
		{
			name: "no substring false positives",
			dto: models.JobDTO{
				Title:       "Manager",
				Description: "Cargo handling and Pythonic thinking not required.",
			},
			wantSkills: nil,
		},
		{
			name: "benefits matched",
			dto: models.JobDTO{
				Title:       "Engineer",
				Description: "We offer 401k matching, equity and unlimited PTO.",
			},
			wantBenefits: []string{"401k", "Equity", "Unlimited PTO"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Enrich(&tt.dto)

			assertSetEqual(t, "skills", got.Skills, tt.wantSkills)
			assertSetEqual(t, "benefits", got.Benefits, tt.wantBenefits)
		})
	}
}

func TestEnrichDoesNotMutateInput(t *testing.T) {
	svc := NewService()
	dto := &models.JobDTO{
		Title:  "Go Developer",
		Skills: []string{"Leadership"},
	}

	out := svc.Enrich(dto)

	if len(out.Skills) < 2 {
		t.Fatalf("expected enrichment, got %v", out.Skills)
	}
	if len(dto.Skills) != 1 || dto.Skills[0] != "Leadership" {
		t.Errorf("input skills mutated: %v", dto.Skills)
	}
}

func assertSetEqual(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", label, got, want)
		return
	}
	seen := make(map[string]bool, len(got))
	for _, v := range got {
		seen[v] = true
	}
	for _, v := range want {
		if !seen[v] {
			t.Errorf("%s missing %q in %v", label, v, got)
		}
	}
}
