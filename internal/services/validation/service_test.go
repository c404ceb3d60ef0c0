package validation

import (
	"testing"
	"time"

	"github.com/ternarybob/colligo/internal/models"
)

func validDTO() *models.JobDTO {
	posted := time.Now().Add(-24 * time.Hour)
	return &models.JobDTO{
		Source:   models.SourceLinkedIn,
		Title:    "Software Engineer",
		Company:  models.Company{Name: "Acme"},
		Location: models.Location{Country: "US", City: "Austin"},
		PostedAt: &posted,
	}
}

func TestValidate(t *testing.T) {
	future := time.Now().Add(48 * time.Hour)
	posted := time.Now().Add(-24 * time.Hour)
	expiredBefore := posted.Add(-time.Hour)

	tests := []struct {
		name      string
		mutate    func(*models.JobDTO)
		wantCodes []string
	}{
		{
			name:      "valid record passes",
			mutate:    func(dto *models.JobDTO) {},
			wantCodes: []string{},
		},
		{
			name:      "missing source",
			mutate:    func(dto *models.JobDTO) { dto.Source = "" },
			wantCodes: []string{models.CodeSourceRequired},
		},
		{
			name:      "blank title",
			mutate:    func(dto *models.JobDTO) { dto.Title = "   " },
			wantCodes: []string{models.CodeTitleRequired},
		},
		{
			name:      "blank company name",
			mutate:    func(dto *models.JobDTO) { dto.Company.Name = "" },
			wantCodes: []string{models.CodeCompanyRequired},
		},
		{
			name: "no country and no remote type",
			mutate: func(dto *models.JobDTO) {
				dto.Location = models.Location{City: "Austin"}
			},
			wantCodes: []string{models.CodeLocationRequired},
		},
		{
			name: "remote type satisfies location",
			mutate: func(dto *models.JobDTO) {
				dto.Location = models.Location{RemoteType: models.RemoteTypeRemote}
			},
			wantCodes: []string{},
		},
		{
			name:      "missing posted_at",
			mutate:    func(dto *models.JobDTO) { dto.PostedAt = nil },
			wantCodes: []string{models.CodePostedAtRequired},
		},
		{
			name:      "future posted_at",
			mutate:    func(dto *models.JobDTO) { dto.PostedAt = &future },
			wantCodes: []string{models.CodePostedAtFuture},
		},
		{
			name: "inverted salary range",
			mutate: func(dto *models.JobDTO) {
				dto.Salary = &models.Salary{Min: 200000, Max: 100000}
			},
			wantCodes: []string{models.CodeSalaryRangeInvalid},
		},
		{
			name: "open-ended salary is fine",
			mutate: func(dto *models.JobDTO) {
				dto.Salary = &models.Salary{Min: 100000}
			},
			wantCodes: []string{},
		},
		{
			name: "expires before posted",
			mutate: func(dto *models.JobDTO) {
				dto.ExpiresAt = &expiredBefore
			},
			wantCodes: []string{models.CodeExpiresBeforePost},
		},
		{
			name: "all violations collected at once",
			mutate: func(dto *models.JobDTO) {
				dto.Source = ""
				dto.Title = ""
				dto.Company.Name = ""
				dto.PostedAt = nil
			},
			wantCodes: []string{
				models.CodeSourceRequired,
				models.CodeTitleRequired,
				models.CodeCompanyRequired,
				models.CodePostedAtRequired,
			},
		},
	}

	svc := NewService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := validDTO()
			tt.mutate(dto)

			violations := svc.Validate(dto)

			if len(violations) != len(tt.wantCodes) {
				t.Fatalf("got %d violations %v, want %d", len(violations), codes(violations), len(tt.wantCodes))
			}
			got := codes(violations)
			for _, want := range tt.wantCodes {
				if !contains(got, want) {
					t.Errorf("missing violation %s, got %v", want, got)
				}
			}
		})
	}
}

func codes(violations []models.FieldError) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.Code
	}
	return out
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
