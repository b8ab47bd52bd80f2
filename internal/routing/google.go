package routing

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/Ushehu/My-Ride-App/internal/types"
)

// GoogleRouter implements Router using the Google Maps Directions API.
// Selected with RIDE_ROUTING_PROVIDER=google.
type GoogleRouter struct {
	client *maps.Client
}

// NewGoogleRouter creates a Router backed by the Google Maps Directions API.
func NewGoogleRouter(apiKey string) (*GoogleRouter, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("routing: google: create maps client: %w", err)
	}
	return &GoogleRouter{client: client}, nil
}

// RouteSeconds returns the driving duration of the primary route in seconds.
// Zero routes or zero legs map to ErrNoRoute so the engine applies its
// per-leg fallback instead of treating the response as a zero-length trip.
func (g *GoogleRouter) RouteSeconds(ctx context.Context, from, to types.Point) (float64, error) {
	r := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", from.Lat, from.Lng),
		Destination: fmt.Sprintf("%f,%f", to.Lat, to.Lng),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := g.client.Directions(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("routing: google: directions: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, ErrNoRoute
	}

	return routes[0].Legs[0].Duration.Seconds(), nil
}
