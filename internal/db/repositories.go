package db

import "gorm.io/gorm"

type Repositories struct {
	Cache *CacheRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Cache: NewCacheRepository(database),
	}
}
