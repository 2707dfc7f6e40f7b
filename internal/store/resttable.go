package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/terraincognita07/kardia/internal/models"
)

const symptomsTable = "symptoms"

// RestTableClient talks to a Supabase/PostgREST-compatible table endpoint.
// It is a thin wire adapter: no retries, no caching, one request per call.
type RestTableClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewRestTableClient(baseURL string, apiKey string, httpClient *http.Client) *RestTableClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RestTableClient{
		endpoint:   strings.TrimRight(baseURL, "/") + "/rest/v1/" + symptomsTable,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (client *RestTableClient) ListByUser(ctx context.Context, userName string) ([]models.SymptomRecord, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("user_name", "eq."+userName)
	query.Set("order", "created_at.desc,id.desc")

	body, err := client.do(ctx, http.MethodGet, query, nil, "")
	if err != nil {
		return nil, err
	}

	records := make([]models.SymptomRecord, 0)
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode symptoms list: %w", err)
	}
	return records, nil
}

func (client *RestTableClient) Insert(ctx context.Context, record models.SymptomRecord) (models.SymptomRecord, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return models.SymptomRecord{}, fmt.Errorf("encode symptom record: %w", err)
	}

	body, err := client.do(ctx, http.MethodPost, nil, payload, "return=representation")
	if err != nil {
		return models.SymptomRecord{}, err
	}

	inserted := make([]models.SymptomRecord, 0, 1)
	if err := json.Unmarshal(body, &inserted); err != nil {
		return models.SymptomRecord{}, fmt.Errorf("decode insert response: %w", err)
	}
	if len(inserted) == 0 {
		return models.SymptomRecord{}, fmt.Errorf("insert response contained no record")
	}
	return inserted[0], nil
}

func (client *RestTableClient) Delete(ctx context.Context, id int64) error {
	query := url.Values{}
	query.Set("id", "eq."+strconv.FormatInt(id, 10))

	_, err := client.do(ctx, http.MethodDelete, query, nil, "")
	return err
}

func (client *RestTableClient) Probe(ctx context.Context) error {
	query := url.Values{}
	query.Set("select", "id")
	query.Set("limit", "1")

	_, err := client.do(ctx, http.MethodGet, query, nil, "")
	return err
}

func (client *RestTableClient) do(ctx context.Context, method string, query url.Values, payload []byte, prefer string) ([]byte, error) {
	requestURL := client.endpoint
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var requestBody io.Reader
	if payload != nil {
		requestBody = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, requestBody)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	request.Header.Set("apikey", client.apiKey)
	request.Header.Set("Authorization", "Bearer "+client.apiKey)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		request.Header.Set("Prefer", prefer)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("remote store request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("read remote store response: %w", err)
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("remote store responded %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
