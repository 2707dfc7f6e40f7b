package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/kardia/internal/i18n"
	"github.com/terraincognita07/kardia/internal/models"
	"github.com/terraincognita07/kardia/internal/services"
)

type fakeRemoteStore struct {
	records   []models.SymptomRecord
	listErr   error
	insertErr error
	deleteErr error
	probeErr  error
	nextID    int64
	inserted  []models.SymptomRecord
	deleted   []int64
}

func (fake *fakeRemoteStore) ListByUser(ctx context.Context, userName string) ([]models.SymptomRecord, error) {
	if fake.listErr != nil {
		return nil, fake.listErr
	}
	result := make([]models.SymptomRecord, 0, len(fake.records))
	for _, record := range fake.records {
		if record.UserName == userName {
			result = append(result, record)
		}
	}
	return result, nil
}

func (fake *fakeRemoteStore) Insert(ctx context.Context, record models.SymptomRecord) (models.SymptomRecord, error) {
	if fake.insertErr != nil {
		return models.SymptomRecord{}, fake.insertErr
	}
	fake.nextID++
	record.ID = fake.nextID
	fake.inserted = append(fake.inserted, record)
	fake.records = append(fake.records, record)
	return record, nil
}

func (fake *fakeRemoteStore) Delete(ctx context.Context, id int64) error {
	if fake.deleteErr != nil {
		return fake.deleteErr
	}
	fake.deleted = append(fake.deleted, id)
	return nil
}

func (fake *fakeRemoteStore) Probe(ctx context.Context) error {
	return fake.probeErr
}

type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (cache *fakeCache) Get(key string) (string, bool, error) {
	value, found := cache.entries[key]
	return value, found, nil
}

func (cache *fakeCache) Set(key string, value string) error {
	cache.entries[key] = value
	return nil
}

func (cache *fakeCache) Remove(key string) error {
	delete(cache.entries, key)
	return nil
}

type testEnv struct {
	app     *fiber.App
	handler *Handler
	gateway *services.Gateway
	remote  *fakeRemoteStore
	cache   *fakeCache
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	remote := &fakeRemoteStore{}
	cache := newFakeCache()
	gateway := services.NewGateway(remote, cache)

	i18nManager, err := i18n.NewManager(i18n.LangKO)
	if err != nil {
		t.Fatalf("build i18n manager: %v", err)
	}

	handler, err := NewHandler(gateway, "test-secret", time.UTC, i18nManager, false)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)

	return &testEnv{app: app, handler: handler, gateway: gateway, remote: remote, cache: cache}
}

func (env *testEnv) userCookie(t *testing.T, userName string) *http.Cookie {
	t.Helper()

	token, err := env.handler.buildToken(userName, time.Hour)
	if err != nil {
		t.Fatalf("build user token: %v", err)
	}
	return &http.Cookie{Name: userCookieName, Value: token}
}

func responseCookie(response *http.Response, name string) *http.Cookie {
	for _, cookie := range response.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
