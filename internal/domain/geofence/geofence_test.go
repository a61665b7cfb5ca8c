package geofence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// northOf returns the point `meters` due north of p along its meridian.
func northOf(p Point, meters float64) Point {
	return Point{Lat: p.Lat + (meters/EarthRadiusMeters)*180/math.Pi, Lon: p.Lon}
}

func TestDistance(t *testing.T) {
	t.Run("same point", func(t *testing.T) {
		p := Point{Lat: 19.0760, Lon: 72.8777}
		assert.InDelta(t, 0, Distance(p, p), 1e-9)
	})

	t.Run("equator reference", func(t *testing.T) {
		d := Distance(Point{Lat: 0, Lon: 0}, Point{Lat: 0, Lon: 0.0001})
		assert.InDelta(t, 11.1195, d, 1)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := Point{Lat: 12.9716, Lon: 77.5946}
		b := Point{Lat: 12.9720, Lon: 77.5950}
		assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
	})

	t.Run("meridian offset", func(t *testing.T) {
		center := Point{Lat: 22.5726, Lon: 88.3639}
		assert.InDelta(t, 14.9, Distance(center, northOf(center, 14.9)), 1e-6)
	})
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, WithinRadius(15.0, 15))
	assert.False(t, WithinRadius(15.01, 15))
	assert.True(t, WithinRadius(0, 15))
}

func TestFence_Evaluate(t *testing.T) {
	center := Point{Lat: 22.5726, Lon: 88.3639}
	fence := Fence{Center: center, RadiusMeters: 15}

	t.Run("inside", func(t *testing.T) {
		res := fence.Evaluate(northOf(center, 14.9))
		assert.True(t, res.WithinRange)
		assert.InDelta(t, 14.9, res.DistanceMeters, 1e-6)
	})

	t.Run("just outside", func(t *testing.T) {
		res := fence.Evaluate(northOf(center, 15.01))
		assert.False(t, res.WithinRange)
		assert.InDelta(t, 15.01, res.DistanceMeters, 1e-6)
	})

	t.Run("far away", func(t *testing.T) {
		res := fence.Evaluate(Point{Lat: 19.0760, Lon: 72.8777})
		assert.False(t, res.WithinRange)
		assert.Greater(t, res.DistanceMeters, 1_000_000.0)
	})
}

func TestPoint_Valid(t *testing.T) {
	assert.True(t, Point{Lat: 0, Lon: 0}.Valid())
	assert.True(t, Point{Lat: -90, Lon: 180}.Valid())
	assert.False(t, Point{Lat: 91, Lon: 0}.Valid())
	assert.False(t, Point{Lat: 0, Lon: -181}.Valid())
	assert.False(t, Point{Lat: math.NaN(), Lon: 0}.Valid())
}
