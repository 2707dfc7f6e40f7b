package db

import (
	"errors"

	"github.com/terraincognita07/kardia/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CacheRepository persists the per-user record mirror in the local SQLite
// database. It satisfies the gateway's LocalCache interface.
type CacheRepository struct {
	database *gorm.DB
}

func NewCacheRepository(database *gorm.DB) *CacheRepository {
	return &CacheRepository{database: database}
}

func (repo *CacheRepository) Get(key string) (string, bool, error) {
	entry := models.CacheEntry{}
	err := repo.database.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (repo *CacheRepository) Set(key string, value string) error {
	entry := models.CacheEntry{Key: key, Value: value}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (repo *CacheRepository) Remove(key string) error {
	return repo.database.Where("key = ?", key).Delete(&models.CacheEntry{}).Error
}
