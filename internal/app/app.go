// Package app wires configuration, storage and the pipeline services into
// one container with a single lifecycle.
package app

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/colligo/internal/common"
	"github.com/ternarybob/colligo/internal/interfaces"
	"github.com/ternarybob/colligo/internal/services/audit"
	"github.com/ternarybob/colligo/internal/services/cache"
	"github.com/ternarybob/colligo/internal/services/dedup"
	"github.com/ternarybob/colligo/internal/services/enrich"
	"github.com/ternarybob/colligo/internal/services/ingest"
	"github.com/ternarybob/colligo/internal/services/normalize"
	"github.com/ternarybob/colligo/internal/services/redact"
	"github.com/ternarybob/colligo/internal/services/validation"
	"github.com/ternarybob/colligo/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	StorageManager interfaces.StorageManager

	IngestService interfaces.IngestService
	AuditService  *audit.Service
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := app.initStorage(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.initServices()

	logger.Info().
		Str("base_currency", cfg.Ingest.BaseCurrency).
		Int("max_batch_size", cfg.Ingest.MaxBatchSize).
		Bool("pii_redaction", cfg.PII.RedactionEnabled).
		Bool("audit", cfg.Audit.Enabled).
		Msg("Application initialization complete")

	return app, nil
}

func (a *App) initStorage() error {
	manager, err := badger.NewManager(&a.Config.Storage.Badger, a.Logger)
	if err != nil {
		return err
	}
	a.StorageManager = manager

	a.Logger.Debug().
		Str("storage", "badger").
		Str("path", a.Config.Storage.Badger.Path).
		Msg("Storage layer initialized")

	if a.Config.Ingest.EnsureIndexesOnStart {
		if err := manager.EnsureIndexes(); err != nil {
			return fmt.Errorf("failed to ensure indexes: %w", err)
		}
	}

	return nil
}

func (a *App) initServices() {
	warmer := cache.NewService(a.StorageManager.HotListCache(), a.Config.Cache.TTLSeconds, a.Config.Cache.HotListTTLSeconds, a.Logger)
	a.AuditService = audit.NewService(a.StorageManager.AuditStorage(), a.Config.Audit.Enabled, a.Logger)

	a.IngestService = ingest.NewService(
		a.Config.Ingest,
		validation.NewService(),
		normalize.NewService(a.Config.Ingest.BaseCurrency, a.Config.Ingest.DefaultCountry),
		redact.NewService(a.Config.PII.RedactionEnabled, a.Config.PII.Fields),
		dedup.NewService(),
		enrich.NewService(),
		a.StorageManager.JobStorage(),
		warmer,
		a.AuditService,
		a.Logger,
	)
}

// Close releases storage resources. Safe to call once at shutdown.
func (a *App) Close() error {
	if a.StorageManager != nil {
		return a.StorageManager.Close()
	}
	return nil
}
