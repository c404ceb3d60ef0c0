// Package validation rejects structurally invalid job records before any
// side effect happens. All violations are collected, never short-circuited,
// so a producer can fix every problem from one rejection.
package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/colligo/internal/models"
)

// Service validates producer-supplied job DTOs.
type Service struct {
	validate *validator.Validate
}

// NewService creates a new validation service.
func NewService() *Service {
	return &Service{
		validate: validator.New(),
	}
}

// Validate checks the DTO and returns every violation found. An empty slice
// means the record is acceptable. Validate never panics or errors out.
func (s *Service) Validate(dto *models.JobDTO) []models.FieldError {
	violations := []models.FieldError{}

	// Struct-tag checks first (required source enum field).
	if err := s.validate.Struct(dto); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				if fe.Field() == "Source" {
					violations = append(violations, models.FieldError{
						Code:    models.CodeSourceRequired,
						Message: "source is required",
						Field:   "source",
					})
				}
			}
		}
	}

	if strings.TrimSpace(dto.Title) == "" {
		violations = append(violations, models.FieldError{
			Code:    models.CodeTitleRequired,
			Message: "title must not be empty",
			Field:   "title",
		})
	}

	if strings.TrimSpace(dto.Company.Name) == "" {
		violations = append(violations, models.FieldError{
			Code:    models.CodeCompanyRequired,
			Message: "company name is required",
			Field:   "company.name",
		})
	}

	if dto.Location.Country == "" && dto.Location.RemoteType == "" {
		violations = append(violations, models.FieldError{
			Code:    models.CodeLocationRequired,
			Message: "location requires a country or a remote type",
			Field:   "location",
		})
	}

	if dto.PostedAt == nil {
		violations = append(violations, models.FieldError{
			Code:    models.CodePostedAtRequired,
			Message: "posted_at is required",
			Field:   "posted_at",
		})
	} else if dto.PostedAt.After(time.Now()) {
		violations = append(violations, models.FieldError{
			Code:    models.CodePostedAtFuture,
			Message: "posted_at must not be in the future",
			Field:   "posted_at",
		})
	}

	if dto.Salary != nil && dto.Salary.Min != 0 && dto.Salary.Max != 0 && dto.Salary.Min > dto.Salary.Max {
		violations = append(violations, models.FieldError{
			Code:    models.CodeSalaryRangeInvalid,
			Message: "salary.min must not exceed salary.max",
			Field:   "salary",
		})
	}

	if dto.ExpiresAt != nil && dto.PostedAt != nil && dto.ExpiresAt.Before(*dto.PostedAt) {
		violations = append(violations, models.FieldError{
			Code:    models.CodeExpiresBeforePost,
			Message: "expires_at must not precede posted_at",
			Field:   "expires_at",
		})
	}

	return violations
}
