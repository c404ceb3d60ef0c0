package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/colligo/internal/common"
	"github.com/ternarybob/colligo/internal/interfaces"
	"github.com/ternarybob/colligo/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// AuditStorage implements the AuditStorage interface for Badger.
// Entries are append-only; there is deliberately no update or delete path.
type AuditStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewAuditStorage creates a new AuditStorage instance
func NewAuditStorage(db *BadgerDB, logger arbor.ILogger) interfaces.AuditStorage {
	return &AuditStorage{
		db:     db,
		logger: logger,
	}
}

func (s *AuditStorage) Append(ctx context.Context, entry *models.AuditEntry) error {
	if entry.JobID == "" {
		return fmt.Errorf("audit entry requires a job ID")
	}
	if entry.ID == "" {
		entry.ID = common.NewAuditID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := s.db.Store().Insert(entry.ID, entry); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

func (s *AuditStorage) ListByJobID(ctx context.Context, jobID string, limit int) ([]*models.AuditEntry, error) {
	query := badgerhold.Where("JobID").Eq(jobID).Index("JobID").SortBy("CreatedAt")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []models.AuditEntry
	if err := s.db.Store().Find(&entries, query); err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	result := make([]*models.AuditEntry, len(entries))
	for i := range entries {
		result[i] = &entries[i]
	}
	return result, nil
}

// Ensure AuditStorage implements the interface
var _ interfaces.AuditStorage = (*AuditStorage)(nil)
