package geo

import (
	"math"
	"testing"

	"github.com/Ushehu/My-Ride-App/internal/types"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      types.Point
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.Point{Lat: 37.7749, Lng: -122.4194},
			b:         types.Point{Lat: 37.7749, Lng: -122.4194},
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name:      "San Francisco to San Jose (~68km)",
			a:         types.Point{Lat: 37.7749, Lng: -122.4194},
			b:         types.Point{Lat: 37.3382, Lng: -121.8863},
			wantKm:    68,
			tolerance: 3,
		},
		{
			name:      "New York to Los Angeles (~3944km)",
			a:         types.Point{Lat: 40.7128, Lng: -74.0060},
			b:         types.Point{Lat: 34.0522, Lng: -118.2437},
			wantKm:    3944,
			tolerance: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("HaversineKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	a := types.Point{Lat: 25.0, Lng: 121.0}
	b := types.Point{Lat: 26.0, Lng: 122.0}
	d1 := HaversineKm(a, b)
	d2 := HaversineKm(b, a)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("haversine is not symmetric: %f vs %f", d1, d2)
	}
}

func TestComputeRegion_NoRider(t *testing.T) {
	got := ComputeRegion(nil, nil)
	if got != DefaultRegion {
		t.Errorf("ComputeRegion(nil, nil) = %+v, want default region", got)
	}
	// Destination alone does not change the outcome.
	dest := types.Point{Lat: 37.3382, Lng: -121.8863}
	if got := ComputeRegion(nil, &dest); got != DefaultRegion {
		t.Errorf("ComputeRegion(nil, dest) = %+v, want default region", got)
	}
}

func TestComputeRegion_RiderOnly(t *testing.T) {
	rider := types.Point{Lat: 37.7749, Lng: -122.4194}
	got := ComputeRegion(&rider, nil)
	if got.Center != rider {
		t.Errorf("center = %+v, want rider position %+v", got.Center, rider)
	}
	if got.LatDelta != 0.01 || got.LngDelta != 0.01 {
		t.Errorf("deltas = (%f, %f), want (0.01, 0.01)", got.LatDelta, got.LngDelta)
	}
}

func TestComputeRegion_BothPoints_ContainsBoth(t *testing.T) {
	rider := types.Point{Lat: 37.7749, Lng: -122.4194}
	dest := types.Point{Lat: 37.3382, Lng: -121.8863}
	got := ComputeRegion(&rider, &dest)

	// A delta is the full span of the viewport, so a point is strictly inside
	// when its distance from the center is below half the delta.
	for _, p := range []types.Point{rider, dest} {
		if math.Abs(p.Lat-got.Center.Lat) >= got.LatDelta/2 {
			t.Errorf("point %+v latitude outside region %+v", p, got)
		}
		if math.Abs(p.Lng-got.Center.Lng) >= got.LngDelta/2 {
			t.Errorf("point %+v longitude outside region %+v", p, got)
		}
	}

	// 30% padding: the span strictly exceeds the raw bounding box.
	rawLat := math.Abs(rider.Lat - dest.Lat)
	if got.LatDelta <= rawLat {
		t.Errorf("lat delta %f should exceed raw span %f", got.LatDelta, rawLat)
	}
}

func TestComputeRegion_SamePoint_NonDegenerate(t *testing.T) {
	p := types.Point{Lat: 37.7749, Lng: -122.4194}
	got := ComputeRegion(&p, &p)
	if got.LatDelta <= 0 || got.LngDelta <= 0 {
		t.Errorf("region degenerate: %+v", got)
	}
}
