// Package codetop is a minimal client for the CodeTop questions API.
package codetop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/huangsam/freqseed/internal/contract"
	"github.com/huangsam/freqseed/schema"
)

// Request headers sent with every fetch. The API rejects anonymous UAs.
const (
	acceptHeader    = "application/json"
	userAgentHeader = "Mozilla/5.0 (compatible; CodeTopDataFetcher/1.0)"
	refererHeader   = "https://codetop.cc/home"
)

// Client fetches problem payloads over HTTP with a fixed timeout.
type Client struct {
	url        string
	httpClient *http.Client
}

var _ contract.ProblemSource = &Client{} // Compile-time check

// NewClient returns a Client for the given endpoint. A single request is
// issued per run; there is no retry or backoff.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchAll issues one GET request and decodes the payload envelope.
// Any network, status or decode failure aborts the whole run; there are no
// partial fetches.
func (c *Client) FetchAll(ctx context.Context) (*schema.RawPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", c.url, err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgentHeader)
	req.Header.Set("Referer", refererHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("request to %s returned status %s", c.url, resp.Status)
	}

	var payload schema.RawPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode payload from %s: %w", c.url, err)
	}

	return &payload, nil
}
