// Package routing is the client for the external OSRM routing service.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://router.project-osrm.org"

	requestTimeout = 15 * time.Second

	// Connection pool settings
	maxIdleConns    = 10
	maxConnsPerHost = 5
	idleConnTimeout = 90 * time.Second
)

// Client fetches driving-route geometry between two coordinates.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an OSRM client. baseURL falls back to the public
// OSRM demo server.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:    maxIdleConns,
				MaxConnsPerHost: maxConnsPerHost,
				IdleConnTimeout: idleConnTimeout,
			},
		},
	}
}

type osrmRoute struct {
	Geometry string  `json:"geometry"`
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

// Route requests the driving route between two points and returns the
// first route's encoded polyline geometry. Any failure, including an
// empty routes array, is returned as an error for the caller to isolate.
func (c *Client) Route(ctx context.Context, fromLat, fromLon, toLat, toLon float64) (string, error) {
	// OSRM takes lon,lat pairs.
	reqURL := fmt.Sprintf(
		"%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=polyline",
		c.baseURL, fromLon, fromLat, toLon, toLat,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("routing service returned status %d", resp.StatusCode)
	}

	var parsed osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to parse routing response: %w", err)
	}

	if len(parsed.Routes) == 0 {
		return "", fmt.Errorf("routing service returned no routes (code %q)", parsed.Code)
	}

	return parsed.Routes[0].Geometry, nil
}
