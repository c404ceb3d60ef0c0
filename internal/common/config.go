package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string        `toml:"environment"` // "development" or "production"
	Storage     StorageConfig `toml:"storage"`
	Logging     LoggingConfig `toml:"logging"`
	Ingest      IngestConfig  `toml:"ingest"`
	PII         PIIConfig     `toml:"pii"`
	Audit       AuditConfig   `toml:"audit"`
	Cache       CacheConfig   `toml:"cache"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
	GCSchedule     string `toml:"gc_schedule"`      // Cron schedule for value-log GC (empty disables)
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Format string   `toml:"format"` // "json" or "text"
	Output []string `toml:"output"` // "stdout", "file"
}

// IngestConfig tunes the ingestion pipeline.
type IngestConfig struct {
	BaseCurrency         string  `toml:"base_currency"`           // Currency code stamped on normalized salaries when the source matches
	DefaultCountry       string  `toml:"default_country"`         // Fallback country code when the DTO carries none
	MaxBatchSize         int     `toml:"max_batch_size"`          // Bulk input beyond this is truncated
	Concurrency          int     `toml:"concurrency"`             // Worker pool size for bulk ingestion
	RateLimitPerSecond   float64 `toml:"rate_limit_per_second"`   // Persistence rate cap for bulk runs (0 disables)
	EnsureIndexesOnStart bool    `toml:"ensure_indexes_on_start"` // Run index assurance during app init
	FuzzyThreshold       float64 `toml:"fuzzy_threshold"`         // Reserved for future near-duplicate matching; unused by exact-key dedup
}

// PIIConfig gates the description redaction pass.
type PIIConfig struct {
	RedactionEnabled bool     `toml:"redaction_enabled"`
	Fields           []string `toml:"fields"` // DTO fields the redactor applies to (default: description)
}

// AuditConfig gates audit trail writes.
type AuditConfig struct {
	Enabled bool `toml:"enabled"`
}

// CacheConfig tunes hot-list cache markers.
type CacheConfig struct {
	TTLSeconds        int `toml:"ttl_seconds"`          // General marker TTL
	HotListTTLSeconds int `toml:"hot_list_ttl_seconds"` // Hot-list marker TTL
}

// NewDefaultConfig creates a configuration with default values.
// Technical parameters are hardcoded here for production stability; only
// user-facing settings should be exposed in colligo.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path:       "./data",
				GCSchedule: "0 0 */6 * * *", // Every 6 hours (cron format with seconds)
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: []string{"stdout", "file"},
		},
		Ingest: IngestConfig{
			BaseCurrency:         "USD",
			DefaultCountry:       "US",
			MaxBatchSize:         500,
			Concurrency:          4, // Small pool - the store is the bottleneck, not CPU
			RateLimitPerSecond:   0, // Disabled by default
			EnsureIndexesOnStart: true,
			FuzzyThreshold:       0.85, // Reserved - exact-key dedup ignores this
		},
		PII: PIIConfig{
			RedactionEnabled: true,
			Fields:           []string{"description"},
		},
		Audit: AuditConfig{
			Enabled: true,
		},
		Cache: CacheConfig{
			TTLSeconds:        300,
			HotListTTLSeconds: 120,
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env. Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("COLLIGO_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Storage configuration
	if badgerPath := os.Getenv("COLLIGO_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if gcSchedule := os.Getenv("COLLIGO_BADGER_GC_SCHEDULE"); gcSchedule != "" {
		config.Storage.Badger.GCSchedule = gcSchedule
	}

	// Logging configuration
	if level := os.Getenv("COLLIGO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("COLLIGO_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv("COLLIGO_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Ingest configuration
	if baseCurrency := os.Getenv("COLLIGO_BASE_CURRENCY"); baseCurrency != "" {
		config.Ingest.BaseCurrency = strings.ToUpper(baseCurrency)
	}
	if defaultCountry := os.Getenv("COLLIGO_DEFAULT_COUNTRY"); defaultCountry != "" {
		config.Ingest.DefaultCountry = strings.ToUpper(defaultCountry)
	}
	if maxBatch := os.Getenv("COLLIGO_MAX_BATCH_SIZE"); maxBatch != "" {
		if m, err := strconv.Atoi(maxBatch); err == nil && m > 0 {
			config.Ingest.MaxBatchSize = m
		}
	}
	if concurrency := os.Getenv("COLLIGO_INGEST_CONCURRENCY"); concurrency != "" {
		if c, err := strconv.Atoi(concurrency); err == nil && c > 0 {
			config.Ingest.Concurrency = c
		}
	}
	if rateLimit := os.Getenv("COLLIGO_INGEST_RATE_LIMIT"); rateLimit != "" {
		if r, err := strconv.ParseFloat(rateLimit, 64); err == nil && r >= 0 {
			config.Ingest.RateLimitPerSecond = r
		}
	}
	if ensureIndexes := os.Getenv("COLLIGO_ENSURE_INDEXES_ON_START"); ensureIndexes != "" {
		if b, err := strconv.ParseBool(ensureIndexes); err == nil {
			config.Ingest.EnsureIndexesOnStart = b
		}
	}

	// PII configuration
	if piiEnabled := os.Getenv("COLLIGO_PII_REDACTION"); piiEnabled != "" {
		if b, err := strconv.ParseBool(piiEnabled); err == nil {
			config.PII.RedactionEnabled = b
		}
	}

	// Audit configuration
	if auditEnabled := os.Getenv("COLLIGO_AUDIT_ENABLED"); auditEnabled != "" {
		if b, err := strconv.ParseBool(auditEnabled); err == nil {
			config.Audit.Enabled = b
		}
	}

	// Cache configuration
	if ttl := os.Getenv("COLLIGO_CACHE_TTL_SECONDS"); ttl != "" {
		if t, err := strconv.Atoi(ttl); err == nil && t > 0 {
			config.Cache.TTLSeconds = t
		}
	}
	if hotTTL := os.Getenv("COLLIGO_HOT_LIST_TTL_SECONDS"); hotTTL != "" {
		if t, err := strconv.Atoi(hotTTL); err == nil && t > 0 {
			config.Cache.HotListTTLSeconds = t
		}
	}
}
