package services

import (
	"math"

	"gotrip/internal/models/domain_models"
)

const earthRadiusKM = 6371

// HaversineKM is the great-circle distance between two coordinates in
// kilometers. Used as a fast proxy for travel distance everywhere in the
// engine; real road networks are out of scope.
func HaversineKM(a, b domain_models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(h))

	return earthRadiusKM * c
}

// TravelCost estimates the cost of covering a road distance.
func TravelCost(roadKM, costPerKM float64) float64 {
	return roadKM * costPerKM
}

// TravelHours estimates the time to cover a road distance at an average
// speed that accounts for stops and traffic.
func TravelHours(roadKM, avgSpeedKMH float64) float64 {
	if avgSpeedKMH <= 0 {
		return 0
	}
	return roadKM / avgSpeedKMH
}
