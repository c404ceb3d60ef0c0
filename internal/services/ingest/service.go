// Package ingest runs the full job ingestion pipeline: validation,
// normalization, redaction, identity derivation, enrichment, merge-upsert
// persistence, then best-effort cache warming and audit recording.
package ingest

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/colligo/internal/common"
	"github.com/ternarybob/colligo/internal/interfaces"
	"github.com/ternarybob/colligo/internal/models"
	"github.com/ternarybob/colligo/internal/services/audit"
	"github.com/ternarybob/colligo/internal/services/cache"
	"github.com/ternarybob/colligo/internal/services/dedup"
	"github.com/ternarybob/colligo/internal/services/enrich"
	"github.com/ternarybob/colligo/internal/services/normalize"
	"github.com/ternarybob/colligo/internal/services/redact"
	"github.com/ternarybob/colligo/internal/services/validation"
)

// Service wires the pipeline stages together. All stages before persistence
// are pure; the upsert is the durability boundary, and everything after it
// is best-effort.
type Service struct {
	config     common.IngestConfig
	validator  *validation.Service
	normalizer *normalize.Service
	redactor   *redact.Service
	deduper    *dedup.Service
	enricher   *enrich.Service
	storage    interfaces.JobStorage
	warmer     *cache.Service
	auditor    *audit.Service
	logger     arbor.ILogger
}

// NewService creates the ingestion pipeline.
func NewService(
	config common.IngestConfig,
	validator *validation.Service,
	normalizer *normalize.Service,
	redactor *redact.Service,
	deduper *dedup.Service,
	enricher *enrich.Service,
	storage interfaces.JobStorage,
	warmer *cache.Service,
	auditor *audit.Service,
	logger arbor.ILogger,
) *Service {
	return &Service{
		config:     config,
		validator:  validator,
		normalizer: normalizer,
		redactor:   redactor,
		deduper:    deduper,
		enricher:   enricher,
		storage:    storage,
		warmer:     warmer,
		auditor:    auditor,
		logger:     logger,
	}
}

// IngestOne runs one record through the pipeline. A validation failure
// returns *models.ValidationError before any write; post-persistence
// failures (cache, audit) are absorbed.
func (s *Service) IngestOne(ctx context.Context, dto *models.JobDTO) (*models.IngestResult, error) {
	if violations := s.validator.Validate(dto); len(violations) > 0 {
		return nil, &models.ValidationError{Errors: violations}
	}

	record := s.normalizer.Normalize(dto)
	record = s.enricher.Enrich(record)

	hash := s.deduper.BuildHash(record)
	key := s.deduper.CompositeKey(record, hash)

	doc := s.buildCanonical(record, hash, key)

	outcome, err := s.storage.UpsertByCompositeKey(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to persist job %s: %w", key, err)
	}

	// Durability boundary crossed. Cache and audit must not fail the call.
	s.warmer.WarmHotLists(ctx, outcome.Job)
	if outcome.Created || len(outcome.UpdatedFields) > 0 {
		s.auditor.RecordIngest(ctx, outcome.Job, outcome.Created, outcome.UpdatedFields)
	}

	s.logger.Info().
		Str("composite_key", key).
		Str("job_id", outcome.Job.ID).
		Bool("created", outcome.Created).
		Int("updated_fields", len(outcome.UpdatedFields)).
		Msg("Job ingested")

	return &models.IngestResult{
		CompositeKey:  key,
		JobID:         outcome.Job.ID,
		Deduped:       !outcome.Created,
		UpdatedFields: outcome.UpdatedFields,
	}, nil
}

// buildCanonical maps the processed DTO onto the persisted shape. Creation
// stamps (ID, CreatedAt, FirstSeenAt) are the storage layer's job.
func (s *Service) buildCanonical(record *models.JobDTO, hash, key string) *models.CanonicalJob {
	canonicalURL := record.CanonicalURL
	if normalized := dedup.NormalizeURL(canonicalURL); normalized != "" {
		canonicalURL = normalized
	}

	doc := &models.CanonicalJob{
		CompositeKey:      key,
		Hash:              hash,
		Source:            record.Source,
		ExternalID:        record.ExternalID,
		CanonicalURL:      canonicalURL,
		Title:             record.Title,
		Company:           record.Company,
		Location:          record.Location,
		Salary:            record.Salary,
		Seniority:         record.Seniority,
		Description:       record.Description,
		Skills:            record.Skills,
		Benefits:          record.Benefits,
		ApplicationCount:  record.ApplicationCount,
		ReferralAvailable: record.ReferralAvailable,
	}
	if record.PostedAt != nil {
		doc.PostedAt = *record.PostedAt
	}
	if record.ExpiresAt != nil {
		expires := *record.ExpiresAt
		doc.ExpiresAt = &expires
	}
	if s.redactor.FieldEnabled("description") {
		doc.SanitizedDescription = s.redactor.Redact(record.Description)
	}
	return doc
}

// Ensure Service implements the interface
var _ interfaces.IngestService = (*Service)(nil)
