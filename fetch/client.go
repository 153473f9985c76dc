// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: fetch/client.go
// Summary: HTTP document fetcher with optional body cache.

package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// StatusError reports a non-success HTTP response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Code)
}

// Client fetches document bodies. The zero value works with default
// timeouts and no cache.
type Client struct {
	// HTTP overrides the transport, mainly for tests. Nil selects a
	// client with DefaultTimeout.
	HTTP *http.Client

	// Cache, when non-nil, stores fetched bodies keyed by URL and is
	// consulted before the network.
	Cache *Cache
}

// DefaultTimeout bounds a document fetch when the caller does not bring
// its own http.Client.
const DefaultTimeout = 30 * time.Second

// NewClient returns a Client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{HTTP: &http.Client{Timeout: timeout}}
}

// FetchText retrieves the body at url. Cache hits skip the network
// entirely; cache write failures are logged and otherwise ignored, the
// fetched body is still returned.
func (c *Client) FetchText(ctx context.Context, url string) (string, error) {
	if c.Cache != nil {
		if body, ok := c.Cache.Get(url); ok {
			debugLog.Printf("cache hit for %s", url)
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: url, Code: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", url, err)
	}

	if c.Cache != nil {
		if err := c.Cache.Put(url, string(body)); err != nil {
			debugLog.Printf("cache write for %s failed: %v", url, err)
		}
	}
	return string(body), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: DefaultTimeout}
}
