package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/internal/utils"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name     string
		from     models.Location
		to       models.Location
		expected float64
		delta    float64
	}{
		{
			name:     "same point",
			from:     models.Location{Latitude: 4.0511, Longitude: 9.7679},
			to:       models.Location{Latitude: 4.0511, Longitude: 9.7679},
			expected: 0,
			delta:    0.001,
		},
		{
			name:     "one degree of longitude at the equator",
			from:     models.Location{Latitude: 0, Longitude: 0},
			to:       models.Location{Latitude: 0, Longitude: 1},
			expected: 111.19,
			delta:    0.5,
		},
		{
			name:     "douala to yaounde",
			from:     models.Location{Latitude: 4.0511, Longitude: 9.7679},
			to:       models.Location{Latitude: 3.8480, Longitude: 11.5021},
			expected: 194,
			delta:    3,
		},
		{
			name:     "short city hop",
			from:     models.Location{Latitude: 4.0511, Longitude: 9.7679},
			to:       models.Location{Latitude: 4.0611, Longitude: 9.7679},
			expected: 1.11,
			delta:    0.05,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.HaversineKm(tt.from, tt.to)
			assert.InDelta(t, tt.expected, got, tt.delta)
		})
	}
}

func TestEncodeLocation_Roundtrip(t *testing.T) {
	loc := models.Location{Latitude: 4.0511, Longitude: 9.7679}

	hash := utils.EncodeLocation(loc, 7)
	assert.Len(t, hash, 7)

	lat, lng := utils.DecodeGeohash(hash)
	assert.InDelta(t, loc.Latitude, lat, 0.01)
	assert.InDelta(t, loc.Longitude, lng, 0.01)
}
