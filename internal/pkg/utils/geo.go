package utils

import "math"

const (
	earthRadiusMeters      = 6371000.0
	walkingMetersPerMinute = 50.0
)

// HaversineDistance вычисляет расстояние между двумя точками в метрах
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLng := (lng2 - lng1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// WalkingDuration оценивает время пешком в минутах для расстояния в метрах
func WalkingDuration(distanceMeters float64) int {
	return int(math.Round(distanceMeters / walkingMetersPerMinute))
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ClampRadius приводит радиус поиска к допустимому диапазону 500 - 10000 м
func ClampRadius(radiusMeters float64) float64 {
	if radiusMeters < 500 {
		return 500
	}
	if radiusMeters > 10000 {
		return 10000
	}
	return radiusMeters
}
