package infra

import (
	"fmt"

	"stockbook/internal/config"
	"stockbook/internal/storage"
)

// OpenKV selects and initializes the configured storage backend.
func OpenKV(cfg *config.Config) (storage.KV, error) {
	switch cfg.StorageBackend {
	case "file":
		return storage.NewFile(cfg.DataDir)
	case "redis":
		return storage.NewRedis(cfg.RedisURL)
	case "memory":
		return storage.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
