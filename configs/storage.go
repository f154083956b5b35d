package configs

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cloud-tech1/food-finds-clone/entity"
	"github.com/cloud-tech1/food-finds-clone/storage"
)

// OpenStorage builds the durable key-value store the session persists
// into. The sqlite driver is the durable option; "memory" keeps state for
// the process only.
func OpenStorage(cfg *Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "memory":
		return storage.NewMemory(), nil
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.StorageSource), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open storage db: %w", err)
		}
		if err := db.AutoMigrate(&entity.StorageEntry{}); err != nil {
			return nil, fmt.Errorf("migrate storage db: %w", err)
		}
		return storage.NewGorm(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
