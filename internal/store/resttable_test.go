package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/terraincognita07/kardia/internal/models"
)

func TestRestTableClientListByUser(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/rest/v1/symptoms" {
			t.Errorf("expected path /rest/v1/symptoms, got %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("select") != "*" {
			t.Errorf("expected select=*, got %q", query.Get("select"))
		}
		if query.Get("user_name") != "eq.dad" {
			t.Errorf("expected user_name=eq.dad, got %q", query.Get("user_name"))
		}
		if query.Get("order") != "created_at.desc,id.desc" {
			t.Errorf("expected order=created_at.desc,id.desc, got %q", query.Get("order"))
		}
		if r.Header.Get("apikey") != "service-key" {
			t.Errorf("expected apikey header, got %q", r.Header.Get("apikey"))
		}
		if r.Header.Get("Authorization") != "Bearer service-key" {
			t.Errorf("expected bearer header, got %q", r.Header.Get("Authorization"))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode([]models.SymptomRecord{{ID: 7, UserName: "dad"}}); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewRestTableClient(server.URL, "service-key", server.Client())
	records, err := client.ListByUser(context.Background(), "dad")
	if err != nil {
		t.Fatalf("expected records, got %v", err)
	}
	if len(records) != 1 || records[0].ID != 7 {
		t.Fatalf("expected record 7, got %v", records)
	}
}

func TestRestTableClientInsertReturnsAssignedID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Prefer") != "return=representation" {
			t.Errorf("expected Prefer return=representation, got %q", r.Header.Get("Prefer"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON content type, got %q", r.Header.Get("Content-Type"))
		}

		sent := models.SymptomRecord{}
		if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if sent.UserName != "dad" {
			t.Errorf("expected user_name dad in payload, got %q", sent.UserName)
		}

		sent.ID = 42
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode([]models.SymptomRecord{sent}); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewRestTableClient(server.URL, "service-key", server.Client())
	inserted, err := client.Insert(context.Background(), models.SymptomRecord{UserName: "dad", Date: "2026-09-01", Time: "14:30"})
	if err != nil {
		t.Fatalf("expected insert to succeed, got %v", err)
	}
	if inserted.ID != 42 {
		t.Fatalf("expected assigned id 42, got %d", inserted.ID)
	}
}

func TestRestTableClientDelete(t *testing.T) {
	t.Parallel()

	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		gotQuery = r.URL.Query().Get("id")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewRestTableClient(server.URL, "service-key", server.Client())
	if err := client.Delete(context.Background(), 9); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if gotQuery != "eq.9" {
		t.Fatalf("expected id=eq.9, got %q", gotQuery)
	}
}

func TestRestTableClientProbe(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("select") != "id" || query.Get("limit") != "1" {
			t.Errorf("expected select=id&limit=1, got %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte("[]")); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewRestTableClient(server.URL, "service-key", server.Client())
	if err := client.Probe(context.Background()); err != nil {
		t.Fatalf("expected probe to succeed, got %v", err)
	}
}

func TestRestTableClientNon2xxIsAnError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewRestTableClient(server.URL, "wrong-key", server.Client())
	if _, err := client.ListByUser(context.Background(), "dad"); err == nil {
		t.Fatalf("expected error on 401 response")
	}
	if err := client.Probe(context.Background()); err == nil {
		t.Fatalf("expected probe error on 401 response")
	}
}

func TestRestTableClientTrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/symptoms" {
			t.Errorf("expected clean path, got %s", r.URL.Path)
		}
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewRestTableClient(server.URL+"/", "service-key", server.Client())
	if _, err := client.ListByUser(context.Background(), "dad"); err != nil {
		t.Fatalf("expected list to succeed, got %v", err)
	}
}
