package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStartSessionSetsUserCookie(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	request := httptest.NewRequest(http.MethodPost, "/welcome", strings.NewReader("user_name=dad"))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/" {
		t.Fatalf("expected redirect to /, got %q", location)
	}

	cookie := responseCookie(response, userCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("expected %s cookie to be set", userCookieName)
	}

	// The issued cookie must authenticate a follow-up page request.
	pageRequest := httptest.NewRequest(http.MethodGet, "/", nil)
	pageRequest.AddCookie(&http.Cookie{Name: userCookieName, Value: cookie.Value})
	pageResponse, err := env.app.Test(pageRequest, -1)
	if err != nil {
		t.Fatalf("page request failed: %v", err)
	}
	if pageResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with fresh cookie, got %d", pageResponse.StatusCode)
	}
	body, err := io.ReadAll(pageResponse.Body)
	if err != nil {
		t.Fatalf("read page body: %v", err)
	}
	if !strings.Contains(string(body), "(dad)") {
		t.Fatalf("expected records page to show the bound user name")
	}
}

func TestStartSessionRejectsBlankUserName(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	request := httptest.NewRequest(http.MethodPost, "/welcome", strings.NewReader("user_name=++"))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 back to /welcome, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/welcome" {
		t.Fatalf("expected redirect to /welcome, got %q", location)
	}
	if cookie := responseCookie(response, userCookieName); cookie != nil && cookie.Value != "" {
		t.Fatalf("expected no user cookie, got %q", cookie.Value)
	}
	if cookie := responseCookie(response, flashCookieName); cookie == nil || cookie.Value == "" {
		t.Fatalf("expected flash cookie with the validation message")
	}
}

func TestStartSessionRejectsBlankUserNameAsJSON(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	request := httptest.NewRequest(http.MethodPost, "/welcome", strings.NewReader(`{"user_name":""}`))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}

func TestChangeUserClearsCookie(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	request := httptest.NewRequest(http.MethodPost, "/user/change", nil)
	request.AddCookie(env.userCookie(t, "dad"))

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/welcome" {
		t.Fatalf("expected redirect to /welcome, got %q", location)
	}

	cookie := responseCookie(response, userCookieName)
	if cookie == nil || cookie.Value != "" {
		t.Fatalf("expected cleared user cookie, got %v", cookie)
	}
}
