package session

import (
	"os"
	"path/filepath"
	"time"

	"github.com/creastat/storefront"
)

// StoreType represents the type of session store.
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeFile   StoreType = "file"
	StoreTypeRedis  StoreType = "redis"
)

// DefaultFileName is the well-known session file, relative to the user's
// home directory, used when no path option is given.
const DefaultFileName = ".storefront/session.json"

// NewStore creates a session Store of the given type.
// Supports "memory", "file" and "redis" driver types.
// For Redis, requires WithRedisClient option.
func NewStore(storeType StoreType, opts ...StoreOption) (Store, error) {
	config := &storeConfig{}
	for _, opt := range opts {
		opt(config)
	}

	switch storeType {
	case StoreTypeMemory:
		return &memoryStore{}, nil

	case StoreTypeFile:
		path := config.filePath
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(home, DefaultFileName)
		}
		return &fileStore{path: path}, nil

	case StoreTypeRedis:
		if config.redisClient == nil {
			return nil, storefront.ErrInvalidConfig
		}
		ttl := config.redisTTL
		if ttl <= 0 {
			ttl = 30 * 24 * time.Hour
		}
		return &redisStore{
			client: config.redisClient,
			ttl:    ttl,
		}, nil

	default:
		return nil, storefront.ErrInvalidStoreType
	}
}
