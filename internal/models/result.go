package models

import (
	"fmt"
	"strings"
)

// Violation codes returned by the validator.
const (
	CodeTitleRequired      = "TITLE_REQUIRED"
	CodeCompanyRequired    = "COMPANY_REQUIRED"
	CodeLocationRequired   = "LOCATION_REQUIRED"
	CodePostedAtRequired   = "POSTED_AT_REQUIRED"
	CodePostedAtFuture     = "POSTED_AT_FUTURE"
	CodeSalaryRangeInvalid = "SALARY_RANGE_INVALID"
	CodeExpiresBeforePost  = "EXPIRES_AT_LT_POSTED"
	CodeSourceRequired     = "SOURCE_REQUIRED"
)

// FieldError is a single structured validation violation.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

// ValidationError aggregates every violation found in one DTO. It is the only
// error the pipeline returns before any side effect has happened.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	codes := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		codes[i] = fe.Code
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(codes, ", "))
}

// IngestResult describes the outcome of a single-record ingestion.
// Deduped is true when the record resolved to an existing canonical job.
// UpdatedFields is empty for a pure bookkeeping touch (only LastSeenAt moved).
type IngestResult struct {
	CompositeKey  string   `json:"composite_key"`
	JobID         string   `json:"job_id"`
	Deduped       bool     `json:"deduped"`
	UpdatedFields []string `json:"updated_fields"`
}

// BulkItemResult pairs one input item with its result or error.
// Index correlates back to the (possibly truncated) input slice.
type BulkItemResult struct {
	Index  int           `json:"index"`
	Result *IngestResult `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// BulkIngestResult aggregates a batch. A partial failure never fails the
// batch; callers inspect Failed and the per-item results.
type BulkIngestResult struct {
	Success int              `json:"success"`
	Failed  int              `json:"failed"`
	Results []BulkItemResult `json:"results"`
}
