// README: Fare/ETA estimation engine: per-driver resolver plus fleet fan-out.
package estimate

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Ushehu/My-Ride-App/internal/geo"
	"github.com/Ushehu/My-Ride-App/internal/modules/drivers"
	"github.com/Ushehu/My-Ride-App/internal/routing"
	"github.com/Ushehu/My-Ride-App/internal/types"
)

// defaultMaxInFlight caps concurrent routing resolutions. Candidate sets are
// small (tens, not thousands), the cap only guards against pathological
// inputs.
const defaultMaxInFlight = 16

// Pricer converts travel times and distances into fares.
// *pricing.Service satisfies it.
type Pricer interface {
	PriceFromMinutes(minutes float64) string
	SecondsFromKm(distanceKm float64) float64
	FallbackEstimate(distanceKm float64) (minutes float64, price string)
}

// Service annotates driver markers with a travel time and a fare. It is
// stateless: everything it needs arrives as arguments, and the only side
// effect is logging.
type Service struct {
	router      routing.Router
	pricer      Pricer
	log         *zap.Logger
	maxInFlight int
}

// Option configures a Service.
type Option func(*Service)

// WithMaxInFlight overrides the concurrent-resolution cap.
func WithMaxInFlight(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxInFlight = n
		}
	}
}

// NewService creates the estimation engine. A nil router means no routing
// credential is configured; EstimateFleet then reports "not computable"
// instead of estimating.
func NewService(router routing.Router, pricer Pricer, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		router:      router,
		pricer:      pricer,
		log:         log,
		maxInFlight: defaultMaxInFlight,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// EstimateFleet resolves a travel time and fare for every marker.
//
// When the rider or destination is unknown, or no routing client is
// configured, it returns (nil, false): estimation was not performed and the
// caller keeps its markers unannotated. Otherwise ok is true and the result
// has the same length and driver identities as the input, in input order,
// with TimeMinutes and Price set on every entry.
func (s *Service) EstimateFleet(ctx context.Context, markers []drivers.Marker, rider, destination *types.Point) (out []drivers.Marker, ok bool) {
	if rider == nil || destination == nil || s.router == nil {
		return nil, false
	}

	// If assembling the batch itself blows up, every driver still gets the
	// trip-level fallback price. The UI must never show a card without one.
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("fleet estimation failed, degrading to straight-line pricing",
				zap.Any("panic", r))
			out = s.fallbackFleet(markers, *rider, *destination)
			ok = true
		}
	}()

	out = make([]drivers.Marker, len(markers))
	sem := make(chan struct{}, s.maxInFlight)
	var wg sync.WaitGroup

	for i, m := range markers {
		wg.Add(1)
		go func(i int, m drivers.Marker) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			minutes, price := s.resolveDriver(ctx, m, *rider, *destination)
			m.TimeMinutes = &minutes
			m.Price = &price
			// Each goroutine owns exactly its input slot, so no lock is
			// needed and output order matches input order.
			out[i] = m
		}(i, m)
	}

	wg.Wait()
	return out, true
}

// resolveDriver produces (minutes, price) for one driver. It never fails:
// any escape hatch lands on the trip-level fallback, which ignores the
// driver's position and prices the rider→destination distance alone.
func (s *Service) resolveDriver(ctx context.Context, m drivers.Marker, rider, destination types.Point) (minutes float64, price string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("driver resolution panicked, using trip-level fallback",
				zap.String("driver_id", string(m.ID)),
				zap.Any("panic", r))
			minutes, price = s.pricer.FallbackEstimate(geo.HaversineKm(rider, destination))
		}
	}()

	legA, err := s.legSeconds(ctx, m.Position, rider)
	if err == nil {
		var legB float64
		legB, err = s.legSeconds(ctx, rider, destination)
		if err == nil {
			minutes = (legA + legB) / 60
			return minutes, s.pricer.PriceFromMinutes(minutes)
		}
	}

	// Transport or decode failure on either leg: discard partial results and
	// recompute from the trip distance only. Deliberately coarser than the
	// per-leg substitution above.
	s.log.Warn("routing failed for driver, using trip-level fallback",
		zap.String("driver_id", string(m.ID)),
		zap.Error(err))
	return s.pricer.FallbackEstimate(geo.HaversineKm(rider, destination))
}

// legSeconds fetches one routed leg. A provider answer with no usable route
// substitutes the straight-line estimate for that leg; transport and decode
// errors propagate so the caller can degrade the whole driver.
func (s *Service) legSeconds(ctx context.Context, from, to types.Point) (float64, error) {
	seconds, err := s.router.RouteSeconds(ctx, from, to)
	if err == nil {
		return seconds, nil
	}
	if errors.Is(err, routing.ErrNoRoute) {
		return s.pricer.SecondsFromKm(geo.HaversineKm(from, to)), nil
	}
	return 0, err
}

// fallbackFleet prices every marker from the rider→destination distance.
func (s *Service) fallbackFleet(markers []drivers.Marker, rider, destination types.Point) []drivers.Marker {
	minutes, price := s.pricer.FallbackEstimate(geo.HaversineKm(rider, destination))
	out := make([]drivers.Marker, len(markers))
	for i, m := range markers {
		t, p := minutes, price
		m.TimeMinutes = &t
		m.Price = &p
		out[i] = m
	}
	return out
}
