// Package geo implements the pure geometry and scheduling rules used for zone matching.
package geo

import (
	"math"

	"proximity/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the mean Earth radius used by all distance computations.
const EarthRadiusMeters = 6371000.0

// Distance returns the great-circle distance in meters between two coordinates.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	// Rounding can push a slightly above 1 for antipodal points.
	a = math.Min(1, math.Max(0, a))

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(a))
}

// DistanceBetween returns the distance in meters between two positions.
func DistanceBetween(a, b entity.Position) float64 {
	return Distance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// DistanceToZone returns the distance in meters from p to the zone center.
func DistanceToZone(p entity.Position, zone *entity.ProximityZone) float64 {
	return Distance(p.Latitude, p.Longitude, zone.Latitude, zone.Longitude)
}

// RoundMeters rounds a distance to the meter for display.
func RoundMeters(d float64) float64 {
	return math.Round(d)
}

// SearchBound returns a lat/lon bounding box covering every point within
// radiusMeters of p. It is used as an index-friendly prefilter only.
func SearchBound(p entity.Position, radiusMeters float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(orb.Point{p.Longitude, p.Latitude}, radiusMeters)
}
