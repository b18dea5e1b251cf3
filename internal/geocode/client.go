// Package geocode resolves free-text place names to coordinates and a time
// zone using the Open-Meteo geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"sunchart-api/internal/models"
)

const (
	defaultBaseURL = "https://geocoding-api.open-meteo.com/v1"
	defaultTimeout = 5 * time.Second
)

// Resolver turns a place name into a Location.
type Resolver interface {
	Resolve(ctx context.Context, name string) (models.Location, error)
}

// Client is a Resolver backed by the Open-Meteo geocoding API. A lookup is a
// single attempt bounded by the client timeout; there is no retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a geocoding client. An empty baseURL selects the public
// Open-Meteo endpoint; a zero timeout selects the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type searchResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}

// Resolve looks up a place name and returns the best match. An empty or
// unmatched name yields ErrNotFound; transport and server failures yield
// ErrServiceUnavailable.
func (c *Client) Resolve(ctx context.Context, name string) (models.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Location{}, fmt.Errorf("empty place name: %w", ErrNotFound)
	}

	query := url.Values{}
	query.Set("name", name)
	query.Set("count", "1")
	query.Set("language", "en")
	query.Set("format", "json")
	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Location{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Location{}, fmt.Errorf("geocode request failed: %v: %w", err, ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		log.Warn().Int("status", resp.StatusCode).Str("body", string(body)).
			Msg("geocoder returned non-OK status")
		return models.Location{}, fmt.Errorf("geocode status %d: %w", resp.StatusCode, ErrServiceUnavailable)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.Location{}, fmt.Errorf("decode geocode response: %v: %w", err, ErrServiceUnavailable)
	}

	if len(payload.Results) == 0 {
		return models.Location{}, fmt.Errorf("no match for %q: %w", name, ErrNotFound)
	}

	r := payload.Results[0]
	return models.Location{
		Name:      r.Name,
		Country:   r.Country,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Timezone:  r.Timezone,
		UTCOffset: offsetHours(r.Timezone),
	}, nil
}

// offsetHours returns the zone's current UTC offset in hours, or 0 when the
// zone name is empty or unknown to the host's tz database.
func offsetHours(zone string) float64 {
	if zone == "" {
		return 0
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		log.Warn().Str("timezone", zone).Err(err).Msg("unknown zone from geocoder")
		return 0
	}
	_, secs := time.Now().In(loc).Zone()
	return float64(secs) / 3600
}
