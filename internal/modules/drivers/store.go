// README: Driver store backed by PostgreSQL (catalog) and Redis GEO (live positions).
package drivers

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Ushehu/My-Ride-App/internal/types"
)

const driverGeoKey = "drivers:positions"

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, redis *redis.Client) *Store {
	return &Store{db: db, redis: redis}
}

// ListDrivers returns the full driver catalog.
func (s *Store) ListDrivers(ctx context.Context) ([]Driver, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, rating, seats, image_url
		FROM drivers
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Driver
	for rows.Next() {
		var d Driver
		var id string
		if err := rows.Scan(&id, &d.Name, &d.Rating, &d.Seats, &d.ImageURL); err != nil {
			return nil, err
		}
		d.ID = types.ID(id)
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpsertPosition records a driver's live position in the GEO set.
func (s *Store) UpsertPosition(ctx context.Context, id types.ID, pos types.Point) error {
	return s.redis.GeoAdd(ctx, driverGeoKey, &redis.GeoLocation{
		Name:      string(id),
		Longitude: pos.Lng,
		Latitude:  pos.Lat,
	}).Err()
}

// RemovePosition drops a driver from the GEO set.
func (s *Store) RemovePosition(ctx context.Context, id types.ID) error {
	return s.redis.ZRem(ctx, driverGeoKey, string(id)).Err()
}

// LivePositions returns the known positions of drivers within radiusKm of
// the center, keyed by driver id.
func (s *Store) LivePositions(ctx context.Context, center types.Point, radiusKm float64) (map[types.ID]types.Point, error) {
	results, err := s.redis.GeoSearchLocation(ctx, driverGeoKey, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  center.Lng,
			Latitude:   center.Lat,
			Radius:     radiusKm,
			RadiusUnit: "km",
			Sort:       "ASC",
		},
		WithCoord: true,
	}).Result()
	if err != nil {
		return nil, err
	}

	positions := make(map[types.ID]types.Point, len(results))
	for _, r := range results {
		positions[types.ID(r.Name)] = types.Point{Lat: r.Latitude, Lng: r.Longitude}
	}
	return positions, nil
}
