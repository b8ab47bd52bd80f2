// README: Pricing rate definition for fare estimation.
package pricing

// Rate holds the tunables of the fare formula.
type Rate struct {
	RideType string
	// PerMinuteCents is the fare charged per minute of travel, in cents.
	PerMinuteCents int64
	// AvgSpeedKmh is the assumed average speed used when deriving travel
	// time from straight-line distance.
	AvgSpeedKmh float64
	Currency    string
}

// DefaultRate is used when no rate row is configured or the store is
// unreachable. $0.50 per minute at an assumed 40 km/h.
var DefaultRate = Rate{
	RideType:       "standard",
	PerMinuteCents: 50,
	AvgSpeedKmh:    40,
	Currency:       "USD",
}
