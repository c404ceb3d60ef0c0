package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ternarybob/colligo/internal/app"
	"github.com/ternarybob/colligo/internal/models"
	"gopkg.in/yaml.v3"
)

// runBatch loads a batch file and submits it through the bulk pipeline.
func runBatch(ctx context.Context, application *app.App, path string) error {
	dtos, err := loadBatch(path)
	if err != nil {
		return err
	}

	application.Logger.Info().
		Int("records", len(dtos)).
		Str("file", path).
		Msg("Submitting batch")

	result := application.IngestService.IngestBulk(ctx, dtos)

	for _, item := range result.Results {
		if item.Error != "" {
			application.Logger.Warn().
				Int("index", item.Index).
				Str("error", item.Error).
				Msg("Batch item rejected")
		}
	}

	fmt.Printf("Batch complete: %d succeeded, %d failed\n", result.Success, result.Failed)
	return nil
}

// loadBatch parses a JSON or YAML array of job records. The format is picked
// by file extension, defaulting to JSON.
func loadBatch(path string) ([]*models.JobDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var dtos []*models.JobDTO
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &dtos); err != nil {
			return nil, fmt.Errorf("failed to parse YAML batch file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &dtos); err != nil {
			return nil, fmt.Errorf("failed to parse JSON batch file %s: %w", path, err)
		}
	}

	if len(dtos) == 0 {
		return nil, fmt.Errorf("batch file %s contains no records", path)
	}
	return dtos, nil
}
