// README: Driver service builds per-session marker lists.
package drivers

import (
	"context"
	"math/rand"

	"go.uber.org/zap"

	"github.com/Ushehu/My-Ride-App/internal/types"
)

// jitterDegrees bounds the synthetic offset applied to drivers with no live
// position: ±0.005° is roughly ±500 m at mid latitudes.
const jitterDegrees = 0.005

// Catalog is the storage surface the service needs. *Store satisfies it.
type Catalog interface {
	ListDrivers(ctx context.Context) ([]Driver, error)
	LivePositions(ctx context.Context, center types.Point, radiusKm float64) (map[types.ID]types.Point, error)
	UpsertPosition(ctx context.Context, id types.ID, pos types.Point) error
	RemovePosition(ctx context.Context, id types.ID) error
}

type Service struct {
	catalog Catalog
	log     *zap.Logger
}

func NewService(catalog Catalog, log *zap.Logger) *Service {
	return &Service{catalog: catalog, log: log}
}

// Markers returns one marker per catalog driver for a fresh search session.
// A driver with a live position inside the radius is placed there; everyone
// else gets a randomized-but-stable offset around the rider, drawn from the
// injected rng so sessions are reproducible under a fixed seed.
func (s *Service) Markers(ctx context.Context, rider types.Point, radiusKm float64, rng *rand.Rand) ([]Marker, error) {
	catalog, err := s.catalog.ListDrivers(ctx)
	if err != nil {
		return nil, err
	}

	live, err := s.catalog.LivePositions(ctx, rider, radiusKm)
	if err != nil {
		s.log.Warn("live driver positions unavailable, using synthetic offsets", zap.Error(err))
		live = nil
	}

	markers := make([]Marker, 0, len(catalog))
	for _, d := range catalog {
		pos, ok := live[d.ID]
		if !ok {
			pos = JitterAround(rider, rng)
		}
		markers = append(markers, Marker{Driver: d, Position: pos})
	}
	return markers, nil
}

// UpdatePosition records a driver's live position.
func (s *Service) UpdatePosition(ctx context.Context, id types.ID, pos types.Point) error {
	return s.catalog.UpsertPosition(ctx, id, pos)
}

// ClearPosition removes a driver's live position, e.g. when going offline.
func (s *Service) ClearPosition(ctx context.Context, id types.ID) error {
	return s.catalog.RemovePosition(ctx, id)
}

// JitterAround places a point at a pseudo-random offset of up to
// ±jitterDegrees per axis around the center.
func JitterAround(center types.Point, rng *rand.Rand) types.Point {
	return types.Point{
		Lat: center.Lat + (rng.Float64()-0.5)*2*jitterDegrees,
		Lng: center.Lng + (rng.Float64()-0.5)*2*jitterDegrees,
	}
}
