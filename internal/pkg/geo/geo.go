package geo

import "math"

// Status is the geofence classification of a punch coordinate pair.
type Status string

const (
	StatusInOffice Status = "IN_OFFICE"
	StatusRemote   Status = "REMOTE"
)

// DefaultRadiusMeters is used when an employee has no assigned office location.
const DefaultRadiusMeters = 100.0

// HaversineDistance menghitung jarak antara dua titik koordinat dalam Meter.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000 // Jari-jari bumi dalam Meter

	// Konversi ke Radian
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	// Rumus Haversine
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// CoordinatesPresent reports whether a latitude/longitude pair carries real
// data. Devices that fail to acquire a fix report 0/0, so exact zero is
// treated as an unset sentinel rather than the equator.
func CoordinatesPresent(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat != 0 && lon != 0
}

// Classify decides whether a punch happened inside the office geofence.
// Missing punch or office coordinates always classify as REMOTE; the
// classifier never errors. The radius boundary is inclusive.
func Classify(lat, lon, officeLat, officeLon, radiusMeters float64) Status {
	if !CoordinatesPresent(lat, lon) || !CoordinatesPresent(officeLat, officeLon) {
		return StatusRemote
	}
	if HaversineDistance(lat, lon, officeLat, officeLon) <= radiusMeters {
		return StatusInOffice
	}
	return StatusRemote
}
