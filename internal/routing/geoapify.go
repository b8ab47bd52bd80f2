package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Ushehu/My-Ride-App/internal/types"
)

const (
	// geoapifyURL is the Geoapify routing endpoint.
	geoapifyURL = "https://api.geoapify.com/v1/routing"

	// geoapifyTimeout is the maximum duration for one routing call.
	geoapifyTimeout = 5 * time.Second

	// httpMaxIdleConns is the number of idle keep-alive connections kept in
	// the transport pool.
	httpMaxIdleConns = 10

	// httpIdleConnTimeout is how long an idle connection stays pooled before
	// being closed.
	httpIdleConnTimeout = 30 * time.Second
)

// GeoapifyRouter implements Router using the Geoapify routing API.
type GeoapifyRouter struct {
	apiKey     string
	httpClient *http.Client
	// apiURL is the routing endpoint. Overrideable in tests.
	apiURL string
}

// NewGeoapifyRouter creates a Router backed by the Geoapify routing API.
func NewGeoapifyRouter(apiKey string) *GeoapifyRouter {
	transport := &http.Transport{
		MaxIdleConns:        httpMaxIdleConns,
		MaxIdleConnsPerHost: httpMaxIdleConns,
		IdleConnTimeout:     httpIdleConnTimeout,
	}
	return &GeoapifyRouter{
		apiKey: apiKey,
		apiURL: geoapifyURL,
		httpClient: &http.Client{
			Timeout:   geoapifyTimeout,
			Transport: transport,
		},
	}
}

// RouteSeconds calls the Geoapify routing API and returns the travel time of
// the first returned feature, in seconds.
//
// A 200 response carrying zero features yields ErrNoRoute; any transport,
// status, or decode problem yields a plain error. The engine maps the two
// onto different degradation paths, so the distinction matters.
func (g *GeoapifyRouter) RouteSeconds(ctx context.Context, from, to types.Point) (float64, error) {
	reqCtx, cancel := context.WithTimeout(ctx, geoapifyTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("waypoints", fmt.Sprintf("%f,%f|%f,%f", from.Lat, from.Lng, to.Lat, to.Lng))
	q.Set("mode", "drive")
	q.Set("apiKey", g.apiKey)

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodGet, g.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("routing: geoapify: create request: %w", err)
	}

	httpResp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("routing: geoapify: http: %w", err)
	}
	defer httpResp.Body.Close()

	respBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, fmt.Errorf("routing: geoapify: read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("routing: geoapify: status %d: %s", httpResp.StatusCode, string(respBytes))
	}

	var apiResp geoapifyResponse
	if err := json.Unmarshal(respBytes, &apiResp); err != nil {
		return 0, fmt.Errorf("routing: geoapify: unmarshal response: %w", err)
	}

	if len(apiResp.Features) == 0 {
		return 0, ErrNoRoute
	}

	seconds := apiResp.Features[0].Properties.Time
	if seconds < 0 {
		return 0, fmt.Errorf("routing: geoapify: negative travel time %f", seconds)
	}
	return seconds, nil
}

// --- JSON types for the Geoapify routing API (GeoJSON FeatureCollection) ---

type geoapifyResponse struct {
	Features []geoapifyFeature `json:"features"`
}

type geoapifyFeature struct {
	Properties geoapifyProperties `json:"properties"`
}

type geoapifyProperties struct {
	// Time is the travel time in seconds.
	Time float64 `json:"time"`
	// Distance is the route length in meters.
	Distance float64 `json:"distance"`
}
