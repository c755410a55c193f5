package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Government of India current-daily-prices resource.
const defaultResourceURL = "https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070"

// DataGov fetches the commodity price feed from api.data.gov.in.
type DataGov struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	Limit   int
}

func NewDataGov(baseURL, apiKey string, limit int) *DataGov {
	if baseURL == "" {
		baseURL = defaultResourceURL
	}
	if limit <= 0 {
		limit = 5000
	}
	return &DataGov{
		Client:  &http.Client{Timeout: 60 * time.Second},
		BaseURL: baseURL,
		APIKey:  apiKey,
		Limit:   limit,
	}
}

func (f *DataGov) Name() string { return "Government of India API" }

// Fetch pulls up to Limit records. When query names a commodity the API
// filter narrows the pull server-side; keyword filtering over all fields
// still happens in the service layer.
func (f *DataGov) Fetch(ctx context.Context, query string) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("api-key", f.APIKey)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(f.Limit))
	if query != "" {
		q.Set("filters[commodity]", query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	var out struct {
		Records []map[string]any `json:"records"`
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.Records, nil
}
