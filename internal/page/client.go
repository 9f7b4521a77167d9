package page

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Service is one bookable service as served by the catalog endpoint.
type Service struct {
	ID            int64  `json:"id"`
	Key           string `json:"key,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	StartingPrice string `json:"starting_price"`
}

// CatalogResponse is the catalog endpoint's payload.
type CatalogResponse struct {
	OK       bool      `json:"ok"`
	Services []Service `json:"services"`
	Error    string    `json:"error,omitempty"`
}

// CatalogClient fetches the service catalog from the backend.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

// CatalogClientOption is a functional option for configuring the client.
type CatalogClientOption func(*CatalogClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) CatalogClientOption {
	return func(c *CatalogClient) {
		c.httpClient = client
	}
}

// NewCatalogClient creates a catalog client for the given backend base URL.
func NewCatalogClient(baseURL string, opts ...CatalogClientOption) *CatalogClient {
	c := &CatalogClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues one GET to the catalog endpoint and decodes the payload.
// A transport error, a non-200 status or malformed JSON is returned as an
// error; an ok:false payload is returned as-is for the caller to handle.
func (c *CatalogClient) Fetch(ctx context.Context) (*CatalogResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/services", nil)
	if err != nil {
		return nil, fmt.Errorf("page: create catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("page: catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page: catalog returned status %d", resp.StatusCode)
	}

	var payload CatalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("page: decode catalog response: %w", err)
	}
	return &payload, nil
}
