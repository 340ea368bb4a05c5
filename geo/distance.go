// Package geo provides great-circle distance helpers.
package geo

import "math"

// EarthRadiusKM is the mean earth radius used by default
const EarthRadiusKM = 6371.0

// Coordinate is a position in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HaversineKM returns the great-circle distance between a and b in kilometers
// on a sphere of the given radius. Degrees outside the valid ranges are not
// rejected.
func HaversineKM(a, b Coordinate, radiusKM float64) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180
	la1 := a.Latitude * math.Pi / 180
	la2 := b.Latitude * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push h a hair outside [0,1] for antipodal points
	h = math.Min(1, math.Max(0, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return radiusKM * c
}
