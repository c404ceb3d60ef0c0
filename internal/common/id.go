package common

import (
	"github.com/google/uuid"
)

// NewJobID generates a unique canonical job ID with the "job_" prefix
// Format: job_<uuid>
func NewJobID() string {
	return "job_" + uuid.New().String()
}

// NewAuditID generates a unique audit entry ID with the "aud_" prefix
// Format: aud_<uuid>
func NewAuditID() string {
	return "aud_" + uuid.New().String()
}
