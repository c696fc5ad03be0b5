package utils

import (
	"math"

	"github.com/parking-availability/internal/domain"
)

const (
	earthRadiusKm = 6371.0

	MinRadiusKm = 0.1
	MaxRadiusKm = 100.0
)

// DistanceKm - расстояние по большому кругу (haversine)
func DistanceKm(a, b domain.Point) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ValidPoint - конечные координаты в диапазонах WGS84
func ValidPoint(p domain.Point) bool {
	return IsFinite(p.Lat) && IsFinite(p.Lon) &&
		p.Lat >= -90 && p.Lat <= 90 &&
		p.Lon >= -180 && p.Lon <= 180
}

// ValidRadius проверяет радиус поиска
func ValidRadius(radiusKm float64) bool {
	return radiusKm >= MinRadiusKm && radiusKm <= MaxRadiusKm
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
