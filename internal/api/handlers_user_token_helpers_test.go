package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExpiredTokenIsRejected(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	token, err := env.handler.buildToken("dad", -time.Minute)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	request.AddCookie(&http.Cookie{Name: userCookieName, Value: token})

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for an expired token, got %d", response.StatusCode)
	}
}

func TestTamperedTokenIsRejected(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	token, err := env.handler.buildToken("dad", time.Hour)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	request.AddCookie(&http.Cookie{Name: userCookieName, Value: token + "x"})

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a tampered token, got %d", response.StatusCode)
	}
}

func TestSigningKeyIsDerivedNotRaw(t *testing.T) {
	t.Parallel()

	key, err := deriveSigningKey("test-secret")
	if err != nil {
		t.Fatalf("derive key: %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("expected a 32-byte key, got %d", len(key))
	}
	if string(key) == "test-secret" {
		t.Fatalf("expected the signing key to differ from the raw secret")
	}

	other, err := deriveSigningKey("other-secret")
	if err != nil {
		t.Fatalf("derive key: %v", err)
	}
	if string(other) == string(key) {
		t.Fatalf("expected different secrets to derive different keys")
	}

	again, err := deriveSigningKey("test-secret")
	if err != nil {
		t.Fatalf("derive key: %v", err)
	}
	if string(again) != string(key) {
		t.Fatalf("expected derivation to be deterministic")
	}
}
