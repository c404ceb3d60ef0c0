package interfaces

import (
	"context"

	"github.com/ternarybob/colligo/internal/models"
)

// IngestService is the producer-facing entry point. Scrapers, importers and
// API handlers all feed raw DTOs through these two calls.
type IngestService interface {
	// IngestOne runs the full single-record pipeline. A validation failure
	// returns *models.ValidationError and performs no writes; failures after
	// persistence are absorbed and logged.
	IngestOne(ctx context.Context, dto *models.JobDTO) (*models.IngestResult, error)

	// IngestBulk runs the single-record pipeline over a batch under bounded
	// concurrency. Input beyond the configured max batch size is silently
	// truncated. Never returns an error for partial failure.
	IngestBulk(ctx context.Context, dtos []*models.JobDTO) *models.BulkIngestResult
}
