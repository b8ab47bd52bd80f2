// README: Routing-provider abstraction used by the estimation engine.
package routing

import (
	"context"
	"errors"

	"github.com/Ushehu/My-Ride-App/internal/types"
)

// ErrNoRoute is returned when the provider answered successfully but produced
// no usable route (for example an empty feature list). Callers should use
// errors.Is to tell this apart from transport or decode failures, which the
// engine degrades differently.
var ErrNoRoute = errors.New("routing: no route found")

// Router returns the driving travel time in seconds between two points.
type Router interface {
	RouteSeconds(ctx context.Context, from, to types.Point) (float64, error)
}
