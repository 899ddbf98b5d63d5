// Package wordsapi looks up word information from WordsAPI (served through
// RapidAPI). Only the syllable count is used.
package wordsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnexpectedStatus is returned for responses other than 2xx or 404.
var ErrUnexpectedStatus = errors.New("unexpected status from word service")

// apiKeyHeader carries the RapidAPI key.
const apiKeyHeader = "X-Mashape-Key"

// Client queries the word-information service.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a client for the service rooted at baseURL.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type wordInfo struct {
	Syllables *struct {
		Count int `json:"count"`
	} `json:"syllables"`
}

// Syllables returns the service's syllable count for word. ok is false when
// the service has no syllable information, including unknown words.
func (c *Client) Syllables(ctx context.Context, word string) (count int, ok bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+url.PathEscape(word), nil)
	if err != nil {
		return 0, false, fmt.Errorf("invalid word request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, false, fmt.Errorf("word service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, false, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var info wordInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return 0, false, fmt.Errorf("failed to decode word info: %w", err)
	}
	if info.Syllables == nil || info.Syllables.Count < 1 {
		return 0, false, nil
	}
	return info.Syllables.Count, true, nil
}
