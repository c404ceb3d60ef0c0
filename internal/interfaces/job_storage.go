// Package interfaces provides service interfaces for dependency injection.
package interfaces

import (
	"context"
	"errors"

	"github.com/ternarybob/colligo/internal/models"
)

// ErrJobNotFound is returned when no canonical job matches the lookup.
var ErrJobNotFound = errors.New("job not found")

// UpsertOutcome reports what a merge-upsert actually did.
// UpdatedFields lists visible fields that changed; the unconditional
// LastSeenAt touch is never included, so an empty slice with Created=false
// identifies a true no-op ingestion.
type UpsertOutcome struct {
	Job           *models.CanonicalJob
	Created       bool
	UpdatedFields []string
}

// BulkOutcome aggregates a batched upsert.
type BulkOutcome struct {
	Matched  int // records that resolved to an existing key
	Modified int // records where at least one visible field changed
	Upserted int // records inserted as new
	Failed   int // records that errored without aborting the batch
}

// ListOptions narrows list queries.
type ListOptions struct {
	Source string
	Limit  int
	Offset int
}

// JobStorage is the durable contract for canonical jobs. The unique
// constraint on CompositeKey is the sole serialization point for concurrent
// writers of the same logical job.
type JobStorage interface {
	// UpsertByCompositeKey inserts doc when its composite key is unseen,
	// otherwise merges with fill-or-improve semantics. A losing concurrent
	// insert is retried as an update, never surfaced as an error.
	UpsertByCompositeKey(ctx context.Context, doc *models.CanonicalJob) (*UpsertOutcome, error)

	// BulkUpsert applies UpsertByCompositeKey over a batch, tolerating
	// individual-item failures.
	BulkUpsert(ctx context.Context, docs []*models.CanonicalJob) (*BulkOutcome, error)

	GetByID(ctx context.Context, id string) (*models.CanonicalJob, error)
	GetByCompositeKey(ctx context.Context, key string) (*models.CanonicalJob, error)
	ListBySource(ctx context.Context, opts *ListOptions) ([]*models.CanonicalJob, error)
	CountJobs(ctx context.Context) (int, error)
}

// AuditStorage appends immutable audit entries. Nothing in this module
// mutates or deletes an entry once written.
type AuditStorage interface {
	Append(ctx context.Context, entry *models.AuditEntry) error
	ListByJobID(ctx context.Context, jobID string, limit int) ([]*models.AuditEntry, error)
}

// StorageManager owns the storage lifecycle and index assurance.
type StorageManager interface {
	JobStorage() JobStorage
	AuditStorage() AuditStorage
	HotListCache() HotListCache

	// EnsureIndexes verifies the fixed index set exists. Idempotent and
	// memoized; only the first call per process does work.
	EnsureIndexes() error

	Close() error
}
