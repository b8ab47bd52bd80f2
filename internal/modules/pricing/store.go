// README: Pricing store backed by PostgreSQL.
package pricing

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// GetRate loads the rate row for a ride type. Callers fall back to
// DefaultRate on any error, so a missing table never disables pricing.
func (s *Store) GetRate(ctx context.Context, rideType string) (Rate, error) {
	row := s.db.QueryRow(ctx, `
		SELECT ride_type, per_minute_cents, avg_speed_kmh, currency
		FROM rates
		WHERE ride_type = $1`, rideType,
	)

	var r Rate
	if err := row.Scan(&r.RideType, &r.PerMinuteCents, &r.AvgSpeedKmh, &r.Currency); err != nil {
		return Rate{}, err
	}
	return r, nil
}
