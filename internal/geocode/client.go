package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://geocode.maps.co"
	requestTimeout = 10 * time.Second
	userAgent      = "eldview-backend/1.0 (trip-log-viewer)"
)

// Place is a reverse-geocoded result. Lat/Lon are the queried
// coordinates, not decoded from the response (the service returns them
// as strings).
type Place struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"-"`
	Lon         float64 `json:"-"`
	Address     Address `json:"address"`
}

// Address holds the components used for place-name preference.
type Address struct {
	City          string `json:"city,omitempty"`
	Village       string `json:"village,omitempty"`
	Town          string `json:"town,omitempty"`
	Hamlet        string `json:"hamlet,omitempty"`
	Suburb        string `json:"suburb,omitempty"`
	Neighbourhood string `json:"neighbourhood,omitempty"`
	County        string `json:"county,omitempty"`
	State         string `json:"state,omitempty"`
	Country       string `json:"country,omitempty"`
}

// BestName picks the most useful short name from a result: the feature
// name, then city-level address components from most to least specific.
// Empty when the response carried nothing usable.
func (p *Place) BestName() string {
	if p.Name != "" {
		return p.Name
	}
	for _, candidate := range []string{
		p.Address.City, p.Address.Village, p.Address.Town, p.Address.Hamlet,
		p.Address.Suburb, p.Address.Neighbourhood, p.Address.County,
	} {
		if candidate != "" {
			return candidate
		}
	}
	return p.DisplayName
}

// Client performs reverse-geocode lookups against a maps.co-compatible
// endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a reverse-geocoding client. baseURL falls back to
// the public geocode.maps.co endpoint.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Reverse looks up the place at (lat, lon).
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*Place, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lon))
	query.Set("format", "json")
	if c.apiKey != "" {
		query.Set("api_key", c.apiKey)
	}

	reqURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reverse geocode returned status %d", resp.StatusCode)
	}

	var place Place
	if err := json.NewDecoder(resp.Body).Decode(&place); err != nil {
		return nil, fmt.Errorf("failed to parse reverse geocode response: %w", err)
	}
	place.Lat = lat
	place.Lon = lon

	return &place, nil
}
