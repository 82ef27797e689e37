package location

import "context"

// LocationService manages office reference data.
type LocationService interface {
	// Create registers a new location; a zero radius falls back to
	// FallbackRadiusMeters
	Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error)

	// List returns all registered locations
	List(ctx context.Context) ([]LocationResponse, error)
}
