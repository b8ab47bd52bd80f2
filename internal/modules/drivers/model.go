// README: Driver catalog entries and map markers.
package drivers

import "github.com/Ushehu/My-Ride-App/internal/types"

// Driver is a catalog entry. Display fields are opaque to the estimation
// engine.
type Driver struct {
	ID       types.ID
	Name     string
	Rating   float64
	Seats    int
	ImageURL string
}

// Marker is a driver placed on the map for one search session.
//
// TimeMinutes and Price are computed by the estimation engine and are nil
// until one estimation attempt (routed or fallback) succeeds. They are always
// set together: a marker with a price always has a time and vice versa.
type Marker struct {
	Driver
	Position    types.Point
	TimeMinutes *float64
	Price       *string
}
