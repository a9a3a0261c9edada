package domain

import "math"

// EarthRadiusMeters is the mean Earth radius used by Distance.
const EarthRadiusMeters = 6_371_000.0

// GeoPoint represents a geographic position in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// Valid reports whether the point lies within the latitude/longitude ranges.
// NaN coordinates are never valid.
func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Distance returns the straight-line distance in meters between a and b using
// the equirectangular approximation: the longitude delta is scaled by the
// cosine of the mean latitude. Accurate enough for city-scale delivery radii,
// degrades over long distances.
func Distance(a, b GeoPoint) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)

	dLat := lat2 - lat1
	dLon := toRadians(b.Lon-a.Lon) * math.Cos((lat1+lat2)/2)

	return math.Sqrt(dLat*dLat+dLon*dLon) * EarthRadiusMeters
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
