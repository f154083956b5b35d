package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cloud-tech1/food-finds-clone/entity"
)

// Gorm is the durable Store, one row per key in the storage_entries
// table. The table must already be migrated (configs.OpenStorage does it).
type Gorm struct{ DB *gorm.DB }

func NewGorm(db *gorm.DB) *Gorm { return &Gorm{DB: db} }

func (g *Gorm) Get(key string) (string, bool) {
	var e entity.StorageEntry
	err := g.DB.Where("key = ?", key).First(&e).Error
	if err != nil {
		// ErrRecordNotFound and any read failure both read as "absent";
		// the session layer degrades to empty state either way.
		return "", false
	}
	return e.Value, true
}

func (g *Gorm) Set(key, value string) error {
	return g.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entity.StorageEntry{Key: key, Value: value}).Error
}

func (g *Gorm) Remove(key string) error {
	err := g.DB.Where("key = ?", key).Delete(&entity.StorageEntry{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
