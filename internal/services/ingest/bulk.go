package ingest

import (
	"context"

	"github.com/ternarybob/colligo/internal/models"
	"github.com/ternarybob/colligo/internal/services/workers"
	"golang.org/x/time/rate"
)

// IngestBulk runs the single-record pipeline over a batch on a bounded
// worker pool. Item failures are isolated into their result slot; the batch
// itself never fails. Input beyond the configured max batch size is
// truncated.
func (s *Service) IngestBulk(ctx context.Context, dtos []*models.JobDTO) *models.BulkIngestResult {
	if max := s.config.MaxBatchSize; max > 0 && len(dtos) > max {
		s.logger.Warn().
			Int("submitted", len(dtos)).
			Int("max_batch_size", max).
			Msg("Bulk input truncated")
		dtos = dtos[:max]
	}

	results := make([]models.BulkItemResult, len(dtos))

	var limiter *rate.Limiter
	if s.config.RateLimitPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.config.RateLimitPerSecond), 1)
	}

	pool := workers.NewPool(ctx, s.config.Concurrency, s.logger)
	pool.Start()

	for i, dto := range dtos {
		i, dto := i, dto
		task := func(taskCtx context.Context) error {
			if limiter != nil {
				if err := limiter.Wait(taskCtx); err != nil {
					results[i] = models.BulkItemResult{Index: i, Error: err.Error()}
					return nil
				}
			}

			res, err := s.IngestOne(taskCtx, dto)
			if err != nil {
				results[i] = models.BulkItemResult{Index: i, Error: err.Error()}
				return nil
			}
			results[i] = models.BulkItemResult{Index: i, Result: res}
			return nil
		}

		if err := pool.Submit(task); err != nil {
			results[i] = models.BulkItemResult{Index: i, Error: err.Error()}
		}
	}

	pool.Wait()

	bulk := &models.BulkIngestResult{Results: results}
	for _, item := range results {
		if item.Error != "" {
			bulk.Failed++
		} else {
			bulk.Success++
		}
	}

	s.logger.Info().
		Int("success", bulk.Success).
		Int("failed", bulk.Failed).
		Msg("Bulk ingestion complete")

	return bulk
}
