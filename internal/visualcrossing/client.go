// Package visualcrossing fetches and converts Visual Crossing timeline
// weather payloads, from the live API or from bundled sample files.
package visualcrossing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/sony/gobreaker"

	"weathercompare.app/internal/apperrors"
)

const defaultBaseURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services"

// Client fetches timeline payloads from the Visual Crossing API and
// sample payloads from a local data directory
type Client struct {
	baseURL    string
	apiKey     string
	sampleDir  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewClient creates a client. An empty baseURL falls back to the public
// Visual Crossing endpoint.
func NewClient(baseURL, apiKey, sampleDir string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		sampleDir: sampleDir,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "visual-crossing",
			MaxRequests: 3,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
		}),
	}
}

// FetchTimeline retrieves the hourly timeline payload for a location.
// Requests run through a circuit breaker; repeated upstream failures
// trip it and fail fast until the cooldown expires.
func (c *Client) FetchTimeline(ctx context.Context, location string) ([]byte, error) {
	params := url.Values{}
	params.Add("unitGroup", "us")
	params.Add("include", "hours")
	params.Add("contentType", "json")
	if c.apiKey != "" {
		params.Add("key", c.apiKey)
	}

	requestURL := fmt.Sprintf("%s/timeline/%s?%s", c.baseURL, url.PathEscape(location), params.Encode())

	body, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch timeline: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			msg, _ := io.ReadAll(resp.Body)
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(msg))
		}

		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return nil, apperrors.NewFetchError(fmt.Sprintf("fetching timeline for %s", location), err)
	}

	return body.([]byte), nil
}

// FetchSample retrieves a bundled sample payload by resource path
func (c *Client) FetchSample(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(c.sampleDir, path))
	if err != nil {
		return nil, apperrors.NewFetchError(fmt.Sprintf("reading sample %s", path), err)
	}

	return data, nil
}
