package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/kardia/internal/db"
	"github.com/terraincognita07/kardia/internal/services"
)

// RunFlushCacheCommand removes a user's cached record mirror. It is the
// recovery path for a corrupt or stale cache entry; the next successful
// remote read rebuilds it.
func RunFlushCacheCommand(dbPath string, userName string) error {
	name := strings.TrimSpace(userName)
	if name == "" {
		return errors.New("user name is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	key := services.CacheKeyForUser(name)

	if _, found, err := repositories.Cache.Get(key); err != nil {
		return fmt.Errorf("read cache entry: %w", err)
	} else if !found {
		fmt.Printf("No cache entry for %s\n", name)
		return nil
	}

	if err := repositories.Cache.Remove(key); err != nil {
		return fmt.Errorf("remove cache entry: %w", err)
	}

	fmt.Printf("Cache entry removed for %s\n", name)
	return nil
}
