// Package execution — geo_utils contains pure geographic computation helpers.
package execution

import "math"

const earthRadiusKm = 6371.0

// Average urban walking speed used for rough ETAs.
const walkingKmPerHour = 4.5

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// walkingETAMin converts a distance to rounded-up walking minutes.
func walkingETAMin(distanceKm float64) int {
	if distanceKm <= 0 {
		return 0
	}
	return int(math.Ceil(distanceKm / walkingKmPerHour * 60))
}
