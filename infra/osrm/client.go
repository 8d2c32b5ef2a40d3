// Package osrm implements routing.Router against the OSRM HTTP route service.
package osrm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kilianp07/ecoroute/core/routing"
	"github.com/kilianp07/ecoroute/infra/logger"
)

// DefaultBaseURL is the public OSRM demo server driving profile.
const DefaultBaseURL = "https://router.project-osrm.org/route/v1/driving/"

// Config holds the client settings.
type Config struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// Client queries OSRM for driving routes.
type Client struct {
	base   string
	client *http.Client
	log    logger.Logger
}

// NewClient creates a client. Empty settings fall back to the public server
// and a 10 second timeout.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base:   base,
		client: &http.Client{Timeout: timeout},
		log:    logger.New("osrm-client"),
	}
}

type response struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Routes  []routing.Route `json:"routes"`
}

// Alternatives implements routing.Router.
func (c *Client) Alternatives(ctx context.Context, from, to routing.Point) ([]routing.Route, error) {
	q := url.Values{}
	q.Set("alternatives", "true")
	q.Set("geometries", "geojson")
	q.Set("overview", "full")
	q.Set("annotations", "distance,duration")
	return c.fetch(ctx, []routing.Point{from, to}, q)
}

// Via implements routing.Router.
func (c *Client) Via(ctx context.Context, points ...routing.Point) (routing.Route, error) {
	if len(points) < 2 {
		return routing.Route{}, fmt.Errorf("via needs at least 2 points, got %d", len(points))
	}
	q := url.Values{}
	q.Set("geometries", "geojson")
	q.Set("overview", "full")
	routes, err := c.fetch(ctx, points, q)
	if err != nil {
		return routing.Route{}, err
	}
	return routes[0], nil
}

func (c *Client) fetch(ctx context.Context, points []routing.Point, q url.Values) ([]routing.Route, error) {
	u := c.base + coordinates(points) + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	c.log.Debugf("osrm %d routes request took %s (status %d)", len(points), time.Since(start), resp.StatusCode)

	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
		}
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if r.Code == "NoRoute" || (resp.StatusCode == http.StatusOK && len(r.Routes) == 0) {
		return nil, routing.ErrNoRoute
	}
	if resp.StatusCode != http.StatusOK || (r.Code != "" && r.Code != "Ok") {
		return nil, fmt.Errorf("osrm error %s (status %d): %s", r.Code, resp.StatusCode, r.Message)
	}
	return r.Routes, nil
}

// coordinates renders points as OSRM "lng,lat;lng,lat".
func coordinates(points []routing.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = strconv.FormatFloat(p.Lng, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lat, 'f', -1, 64)
	}
	return strings.Join(parts, ";")
}

var _ routing.Router = (*Client)(nil)

// IsNoRoute reports whether err means the points are not connected.
func IsNoRoute(err error) bool { return errors.Is(err, routing.ErrNoRoute) }
