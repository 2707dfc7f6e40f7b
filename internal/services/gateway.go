package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/terraincognita07/kardia/internal/models"
	"github.com/terraincognita07/kardia/internal/store"
)

// createdAtLayout matches the millisecond-precision UTC timestamps the
// remote store already holds.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Gateway mediates between the in-memory record lists, the authoritative
// remote store and the local mirror. The remote store wins whenever it is
// reachable; every successful remote read or write is mirrored to the
// local cache before control returns to the caller. In-memory state is
// namespaced per user name, matching the cache key scheme.
type Gateway struct {
	mu      sync.Mutex
	remote  store.RemoteStore
	cache   LocalCache
	records map[string][]models.SymptomRecord
	status  ConnectionStatus

	probeTimeout time.Duration
	now          func() time.Time
}

func NewGateway(remote store.RemoteStore, cache LocalCache) *Gateway {
	return &Gateway{
		remote:       remote,
		cache:        cache,
		records:      make(map[string][]models.SymptomRecord),
		status:       StatusTesting,
		probeTimeout: DefaultProbeTimeout,
		now:          time.Now,
	}
}

// List refreshes the user's record list from the remote store and mirrors
// it to the local cache. On remote failure the returned list is the local
// fallback (the cached snapshot if one parses, otherwise whatever was in
// memory before) and the error reports the remote failure; the in-memory
// list is never replaced with a failed remote response.
func (gateway *Gateway) List(ctx context.Context, userName string) ([]models.SymptomRecord, error) {
	if userName == "" {
		return nil, operationError(OpLoad, ErrUserNameRequired)
	}

	fetched, err := gateway.remote.ListByUser(ctx, userName)
	if err != nil {
		log.Printf("remote list for %q failed, falling back to local cache: %v", userName, err)
		return gateway.listFromCache(userName), operationError(OpLoad, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err))
	}

	gateway.mu.Lock()
	gateway.records[userName] = fetched
	gateway.writeMirrorLocked(userName, fetched)
	result := copyRecords(fetched)
	gateway.mu.Unlock()
	return result, nil
}

// Save sanitizes the draft, stamps it with the user name and a fresh
// created_at, and inserts it into the remote store. Only after the store
// confirms the insert is the record prepended to the in-memory list and
// the mirror rewritten. A failed save leaves both layers untouched.
func (gateway *Gateway) Save(ctx context.Context, userName string, draft models.Draft) (models.SymptomRecord, error) {
	if userName == "" {
		return models.SymptomRecord{}, operationError(OpSave, ErrUserNameRequired)
	}
	if coerceString(draft["date"]) == "" {
		return models.SymptomRecord{}, operationError(OpSave, ErrDateRequired)
	}
	if coerceString(draft["time"]) == "" {
		return models.SymptomRecord{}, operationError(OpSave, ErrTimeRequired)
	}

	record, err := RecordFromDraft(draft)
	if err != nil {
		return models.SymptomRecord{}, operationError(OpSave, err)
	}
	record.ID = 0
	record.UserName = userName
	record.CreatedAt = gateway.now().UTC().Format(createdAtLayout)

	inserted, err := gateway.remote.Insert(ctx, record)
	if err != nil {
		return models.SymptomRecord{}, operationError(OpSave, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err))
	}

	gateway.mu.Lock()
	updated := make([]models.SymptomRecord, 0, len(gateway.records[userName])+1)
	updated = append(updated, inserted)
	updated = append(updated, gateway.records[userName]...)
	gateway.records[userName] = updated
	gateway.writeMirrorLocked(userName, updated)
	gateway.mu.Unlock()

	return inserted, nil
}

// Delete removes the record from the remote store first; only on success
// does it drop the record from the in-memory list and rewrite the mirror.
func (gateway *Gateway) Delete(ctx context.Context, userName string, id int64) error {
	if userName == "" {
		return operationError(OpDelete, ErrUserNameRequired)
	}

	if err := gateway.remote.Delete(ctx, id); err != nil {
		return operationError(OpDelete, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err))
	}

	gateway.mu.Lock()
	current := gateway.records[userName]
	filtered := make([]models.SymptomRecord, 0, len(current))
	for _, record := range current {
		if record.ID != id {
			filtered = append(filtered, record)
		}
	}
	gateway.records[userName] = filtered
	gateway.writeMirrorLocked(userName, filtered)
	gateway.mu.Unlock()
	return nil
}

// Records returns a copy of the user's current in-memory list without
// touching the remote store.
func (gateway *Gateway) Records(userName string) []models.SymptomRecord {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	return copyRecords(gateway.records[userName])
}

// listFromCache adopts the user's cached snapshot as the in-memory list.
// An absent, unreadable or corrupt entry leaves the previous list in place.
func (gateway *Gateway) listFromCache(userName string) []models.SymptomRecord {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	raw, found, err := gateway.cache.Get(CacheKeyForUser(userName))
	if err != nil {
		log.Printf("local cache read for %q failed: %v", userName, err)
		return copyRecords(gateway.records[userName])
	}
	if !found {
		return copyRecords(gateway.records[userName])
	}

	cached := make([]models.SymptomRecord, 0)
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		log.Printf("local cache entry for %q is corrupt, ignoring: %v", userName, err)
		return copyRecords(gateway.records[userName])
	}

	gateway.records[userName] = cached
	return copyRecords(cached)
}

// writeMirrorLocked overwrites the user's cache entry with the full list.
// Cache failures never fail the surrounding operation.
func (gateway *Gateway) writeMirrorLocked(userName string, records []models.SymptomRecord) {
	serialized, err := json.Marshal(records)
	if err != nil {
		log.Printf("serialize mirror for %q failed: %v", userName, err)
		return
	}
	if err := gateway.cache.Set(CacheKeyForUser(userName), string(serialized)); err != nil {
		log.Printf("local cache write for %q failed: %v", userName, err)
	}
}

func copyRecords(records []models.SymptomRecord) []models.SymptomRecord {
	result := make([]models.SymptomRecord, len(records))
	copy(result, records)
	return result
}
