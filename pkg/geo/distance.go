// Package geo provides great-circle distances and point-in-polygon tests
// over latitude/longitude coordinates.
package geo

import "math"

const (
	// EarthRadiusMiles is the mean radius of Earth in miles.
	EarthRadiusMiles = 3958.8
	// EarthRadiusKm is the mean radius of Earth in kilometers.
	EarthRadiusKm = 6371.0
)

// Coordinates represents a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IsValid returns true if the coordinates are within valid ranges.
// Latitude must be between -90 and 90, longitude between -180 and 180.
func (c Coordinates) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// IsZero returns true if both coordinates are zero (likely unset).
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lon == 0
}

// DistanceBetween returns the great-circle distance in miles between two points.
// Inputs are not range checked.
func DistanceBetween(from, to Coordinates) float64 {
	return Haversine(from.Lat, from.Lon, to.Lat, to.Lon)
}

// Haversine calculates the great-circle distance in miles between two points
// given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineWithRadius(lat1, lon1, lat2, lon2, EarthRadiusMiles)
}

// HaversineKm calculates the great-circle distance in kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineWithRadius(lat1, lon1, lat2, lon2, EarthRadiusKm)
}

// HaversineWithRadius calculates the great-circle distance on a sphere of the given radius.
func HaversineWithRadius(lat1, lon1, lat2, lon2, radius float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lon2 - lon1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return radius * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
