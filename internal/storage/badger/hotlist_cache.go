package badger

import (
	"context"
	"fmt"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/colligo/internal/interfaces"
)

// cacheKeyPrefix namespaces cache markers away from badgerhold buckets.
const cacheKeyPrefix = "hotcache:"

// HotListCache implements the HotListCache interface on raw badger entries,
// using the database's native TTL support for eviction. Markers share the
// store with canonical data but live under their own key prefix.
type HotListCache struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewHotListCache creates a badger-backed hot list cache
func NewHotListCache(db *BadgerDB, logger arbor.ILogger) interfaces.HotListCache {
	return &HotListCache{
		db:     db,
		logger: logger,
	}
}

func (c *HotListCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	err := c.db.Store().Badger().Update(func(txn *badgerdb.Txn) error {
		entry := badgerdb.NewEntry([]byte(cacheKeyPrefix+key), []byte(value))
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("failed to set cache entry: %w", err)
	}
	return nil
}

func (c *HotListCache) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := c.db.Store().Badger().View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get([]byte(cacheKeyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if err == badgerdb.ErrKeyNotFound {
		return "", interfaces.ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("failed to get cache entry: %w", err)
	}
	return value, nil
}

// Ensure HotListCache implements the interface
var _ interfaces.HotListCache = (*HotListCache)(nil)
