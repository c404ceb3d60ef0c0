package badger

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/colligo/internal/common"
	"github.com/ternarybob/colligo/internal/interfaces"
	"github.com/ternarybob/colligo/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// Manager owns the badger connection, the typed stores and background
// maintenance. EnsureIndexes is memoized so the one-time index contract is
// explicit rather than hidden in per-call checks.
type Manager struct {
	db           *BadgerDB
	jobStorage   interfaces.JobStorage
	auditStorage interfaces.AuditStorage
	hotListCache interfaces.HotListCache
	logger       arbor.ILogger

	indexOnce sync.Once
	indexErr  error

	gc *cron.Cron
}

// NewManager opens the database and wires the typed stores.
func NewManager(cfg *common.BadgerConfig, logger arbor.ILogger) (*Manager, error) {
	db, err := NewBadgerDB(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize badger storage: %w", err)
	}

	m := &Manager{
		db:           db,
		jobStorage:   NewJobStorage(db, logger),
		auditStorage: NewAuditStorage(db, logger),
		hotListCache: NewHotListCache(db, logger),
		logger:       logger,
	}

	if cfg.GCSchedule != "" {
		if err := m.startGC(cfg.GCSchedule); err != nil {
			logger.Warn().Err(err).Str("schedule", cfg.GCSchedule).Msg("Failed to start value-log GC schedule")
		}
	}

	return m, nil
}

func (m *Manager) JobStorage() interfaces.JobStorage {
	return m.jobStorage
}

func (m *Manager) AuditStorage() interfaces.AuditStorage {
	return m.auditStorage
}

func (m *Manager) HotListCache() interfaces.HotListCache {
	return m.hotListCache
}

// EnsureIndexes verifies the fixed index set for the stored types. Index
// definitions live on the model structs (badgerhold tags) and badgerhold
// maintains them on every write; this call proves each tagged index is
// queryable by running a probe query against it, so a broken definition
// fails startup instead of the first read. Only the first call per process
// does work.
func (m *Manager) EnsureIndexes() error {
	m.indexOnce.Do(func() {
		m.logger.Debug().Msg("Ensuring storage indexes")

		var jobs []models.CanonicalJob
		if err := m.db.Store().Find(&jobs, badgerhold.Where("CompositeKey").Eq("").Index("CompositeKey").Limit(1)); err != nil {
			m.indexErr = fmt.Errorf("failed to verify job composite key index: %w", err)
			return
		}
		if err := m.db.Store().Find(&jobs, badgerhold.Where("Source").Eq("").Index("Source").Limit(1)); err != nil {
			m.indexErr = fmt.Errorf("failed to verify job source index: %w", err)
			return
		}

		var entries []models.AuditEntry
		if err := m.db.Store().Find(&entries, badgerhold.Where("JobID").Eq("").Index("JobID").Limit(1)); err != nil {
			m.indexErr = fmt.Errorf("failed to verify audit job index: %w", err)
			return
		}

		m.logger.Info().Msg("Storage indexes ensured")
	})
	return m.indexErr
}

// startGC schedules periodic badger value-log garbage collection.
func (m *Manager) startGC(schedule string) error {
	m.gc = cron.New(cron.WithSeconds())

	_, err := m.gc.AddFunc(schedule, func() {
		// RunValueLogGC returns ErrNoRewrite when there is nothing to do;
		// that is the common case and not worth logging.
		if err := m.db.Store().Badger().RunValueLogGC(0.5); err == nil {
			m.logger.Debug().Msg("Value-log GC rewrote a log file")
		}
	})
	if err != nil {
		return err
	}

	m.gc.Start()
	m.logger.Info().Str("schedule", schedule).Msg("Value-log GC scheduler started")
	return nil
}

// Close stops maintenance and closes the database.
func (m *Manager) Close() error {
	if m.gc != nil {
		m.gc.Stop()
	}
	return m.db.Close()
}

// Ensure Manager implements the interface
var _ interfaces.StorageManager = (*Manager)(nil)
