package utils

import (
	"math"
	"testing"

	"github.com/parking-availability/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	surat := domain.Point{Lat: 21.1702, Lon: 72.8311}

	assert.Zero(t, DistanceKm(surat, surat))

	// один градус широты ~ 111.19 км
	north := domain.Point{Lat: surat.Lat + 1, Lon: surat.Lon}
	assert.InDelta(t, 111.19, DistanceKm(surat, north), 0.01)
	assert.InDelta(t, DistanceKm(surat, north), DistanceKm(north, surat), 1e-9)
}

func TestValidPoint(t *testing.T) {
	tests := []struct {
		name string
		p    domain.Point
		want bool
	}{
		{"surat", domain.Point{Lat: 21.17, Lon: 72.83}, true},
		{"edges", domain.Point{Lat: -90, Lon: 180}, true},
		{"lat out of range", domain.Point{Lat: 91, Lon: 0}, false},
		{"lon out of range", domain.Point{Lat: 0, Lon: -180.5}, false},
		{"nan", domain.Point{Lat: math.NaN(), Lon: 0}, false},
		{"inf", domain.Point{Lat: 0, Lon: math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPoint(tt.p))
		})
	}
}

func TestValidRadius(t *testing.T) {
	assert.True(t, ValidRadius(3))
	assert.True(t, ValidRadius(MinRadiusKm))
	assert.False(t, ValidRadius(0))
	assert.False(t, ValidRadius(100.1))
}
