// Package audit records ingestion outcomes as append-only audit entries.
package audit

import (
	"context"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/colligo/internal/interfaces"
	"github.com/ternarybob/colligo/internal/models"
)

// Service appends audit entries describing what an ingestion changed.
type Service struct {
	storage interfaces.AuditStorage
	enabled bool
	logger  arbor.ILogger
}

// NewService creates an audit recorder. When disabled it records nothing.
func NewService(storage interfaces.AuditStorage, enabled bool, logger arbor.ILogger) *Service {
	return &Service{
		storage: storage,
		enabled: enabled,
		logger:  logger,
	}
}

// RecordIngest appends an entry for a create or a mutating update.
// Best-effort: failures are logged and swallowed so a broken audit trail
// never rolls back a persisted job.
func (s *Service) RecordIngest(ctx context.Context, job *models.CanonicalJob, created bool, updatedFields []string) {
	if !s.enabled {
		return
	}

	action := models.AuditActionUpdate
	if created {
		action = models.AuditActionCreate
	}

	diff := map[string]interface{}{
		"compositeKey": job.CompositeKey,
	}
	if !created {
		diff["updatedFields"] = updatedFields
	}

	entry := &models.AuditEntry{
		JobID:  job.ID,
		Action: action,
		Source: job.Audit.LastSource,
		Diff:   diff,
	}

	if err := s.storage.Append(ctx, entry); err != nil {
		s.logger.Warn().
			Err(err).
			Str("job_id", job.ID).
			Str("action", string(action)).
			Msg("Failed to append audit entry")
	}
}

// History returns the audit trail for a job, oldest first.
func (s *Service) History(ctx context.Context, jobID string, limit int) ([]*models.AuditEntry, error) {
	return s.storage.ListByJobID(ctx, jobID, limit)
}
