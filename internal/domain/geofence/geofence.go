// Package geofence decides whether a reported device location lies inside the
// showroom's check-in radius.
package geofence

import "math"

// EarthRadiusMeters is the mean Earth radius used by Distance.
const EarthRadiusMeters = 6371000.0

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Valid reports whether p is a real coordinate.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Distance returns the great-circle (haversine) distance between a and b in
// meters.
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMeters * c
}

// WithinRadius is inclusive: a distance equal to the radius is inside.
func WithinRadius(distanceMeters, radiusMeters float64) bool {
	return distanceMeters <= radiusMeters
}

// Fence is a circular geofence.
type Fence struct {
	Center       Point
	RadiusMeters float64
}

// Result is the outcome of evaluating a location against a Fence.
type Result struct {
	DistanceMeters float64
	WithinRange    bool
}

func (f Fence) Evaluate(p Point) Result {
	dist := Distance(f.Center, p)
	return Result{
		DistanceMeters: dist,
		WithinRange:    WithinRadius(dist, f.RadiusMeters),
	}
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
