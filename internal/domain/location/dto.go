package location

import "github.com/iajwork/smart-attendance-platform/internal/pkg/validator"

// CreateLocationRequest registers a new office geofence.
type CreateLocationRequest struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}

func (r CreateLocationRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}
	if r.RadiusMeters < 0 {
		errs = append(errs, validator.ValidationError{Field: "radius_meters", Message: "radius must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LocationResponse is the JSON shape for location reference data.
type LocationResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}
