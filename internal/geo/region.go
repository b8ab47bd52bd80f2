package geo

import "github.com/Ushehu/My-Ride-App/internal/types"

// Region is a map viewport: a center point plus latitude/longitude deltas.
// Deltas are always positive, the region is never degenerate.
type Region struct {
	Center   types.Point
	LatDelta float64
	LngDelta float64
}

const (
	// defaultDelta is the viewport span used when only one point (or none)
	// is known.
	defaultDelta = 0.01

	// spanPadding widens the rider/destination bounding box by 30% so both
	// markers stay visible inside the viewport.
	spanPadding = 1.3
)

// DefaultRegion is returned when the rider's position is unknown.
var DefaultRegion = Region{
	Center:   types.Point{Lat: 37.78825, Lng: -122.4324},
	LatDelta: defaultDelta,
	LngDelta: defaultDelta,
}

// ComputeRegion returns the viewport covering the rider and destination.
// Three cases, in order: no rider yields DefaultRegion; no destination yields
// a default-sized viewport centered on the rider; otherwise the viewport is
// centered on the midpoint and padded so both points fit.
func ComputeRegion(rider, destination *types.Point) Region {
	if rider == nil {
		return DefaultRegion
	}
	if destination == nil {
		return Region{
			Center:   *rider,
			LatDelta: defaultDelta,
			LngDelta: defaultDelta,
		}
	}

	minLat, maxLat := minMax(rider.Lat, destination.Lat)
	minLng, maxLng := minMax(rider.Lng, destination.Lng)

	return Region{
		Center: types.Point{
			Lat: (minLat + maxLat) / 2,
			Lng: (minLng + maxLng) / 2,
		},
		LatDelta: nonDegenerate((maxLat - minLat) * spanPadding),
		LngDelta: nonDegenerate((maxLng - minLng) * spanPadding),
	}
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

func nonDegenerate(delta float64) float64 {
	if delta < defaultDelta {
		return defaultDelta
	}
	return delta
}
