package location

// Location is immutable office reference data; the radius defines the
// geofence boundary around it.
type Location struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// FallbackRadiusMeters is applied when a location row is created without an
// explicit radius.
const FallbackRadiusMeters = 1000.0
