package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/wakacab/wakacab/internal/pkg/models"
)

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string back to a lat/lng pair
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// HaversineKm computes the great-circle distance between two points in kilometers
func HaversineKm(from, to models.Location) float64 {
	const earthRadiusKm = 6371.0

	lat1 := from.Latitude * math.Pi / 180.0
	lon1 := from.Longitude * math.Pi / 180.0
	lat2 := to.Latitude * math.Pi / 180.0
	lon2 := to.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
