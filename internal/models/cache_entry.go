package models

import "time"

// CacheEntry is one row of the local mirror: a per-user key holding the
// serialized record list of the last successful remote read or write.
type CacheEntry struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (CacheEntry) TableName() string {
	return "cache_entries"
}
