package drivers

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ushehu/My-Ride-App/internal/types"
)

var riderPos = types.Point{Lat: 37.7749, Lng: -122.4194}

type fakeCatalog struct {
	drivers []Driver
	live    map[types.ID]types.Point
	listErr error
	liveErr error
}

func (f *fakeCatalog) ListDrivers(_ context.Context) ([]Driver, error) {
	return f.drivers, f.listErr
}

func (f *fakeCatalog) LivePositions(_ context.Context, _ types.Point, _ float64) (map[types.ID]types.Point, error) {
	return f.live, f.liveErr
}

func (f *fakeCatalog) UpsertPosition(_ context.Context, id types.ID, pos types.Point) error {
	if f.live == nil {
		f.live = make(map[types.ID]types.Point)
	}
	f.live[id] = pos
	return nil
}

func (f *fakeCatalog) RemovePosition(_ context.Context, id types.ID) error {
	delete(f.live, id)
	return nil
}

func testDrivers(n int) []Driver {
	out := make([]Driver, n)
	for i := range out {
		out[i] = Driver{ID: types.ID(rune('a' + i)), Name: "Driver", Rating: 4.5, Seats: 4}
	}
	return out
}

func TestMarkers_JitterWithinBounds(t *testing.T) {
	svc := NewService(&fakeCatalog{drivers: testDrivers(10)}, zap.NewNop())

	markers, err := svc.Markers(context.Background(), riderPos, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, markers, 10)

	for _, m := range markers {
		assert.LessOrEqual(t, math.Abs(m.Position.Lat-riderPos.Lat), jitterDegrees)
		assert.LessOrEqual(t, math.Abs(m.Position.Lng-riderPos.Lng), jitterDegrees)
		assert.Nil(t, m.TimeMinutes, "markers start unannotated")
		assert.Nil(t, m.Price)
	}
}

func TestMarkers_DeterministicUnderFixedSeed(t *testing.T) {
	catalog := &fakeCatalog{drivers: testDrivers(5)}
	svc := NewService(catalog, zap.NewNop())

	a, err := svc.Markers(context.Background(), riderPos, 3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := svc.Markers(context.Background(), riderPos, 3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Position, b[i].Position)
	}
}

func TestMarkers_PrefersLivePositions(t *testing.T) {
	oakland := types.Point{Lat: 37.8044, Lng: -122.2712}
	catalog := &fakeCatalog{
		drivers: testDrivers(3),
		live:    map[types.ID]types.Point{"b": oakland},
	}
	svc := NewService(catalog, zap.NewNop())

	markers, err := svc.Markers(context.Background(), riderPos, 50, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Len(t, markers, 3)

	assert.Equal(t, oakland, markers[1].Position)
	assert.NotEqual(t, oakland, markers[0].Position)
}

func TestMarkers_LivePositionErrorDegradesToJitter(t *testing.T) {
	catalog := &fakeCatalog{
		drivers: testDrivers(2),
		liveErr: errors.New("redis down"),
	}
	svc := NewService(catalog, zap.NewNop())

	markers, err := svc.Markers(context.Background(), riderPos, 3, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Len(t, markers, 2)
}

func TestMarkers_CatalogErrorPropagates(t *testing.T) {
	catalog := &fakeCatalog{listErr: errors.New("db down")}
	svc := NewService(catalog, zap.NewNop())

	_, err := svc.Markers(context.Background(), riderPos, 3, rand.New(rand.NewSource(7)))
	require.Error(t, err)
}
