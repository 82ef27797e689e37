package location

import "context"

// LocationRepository defines data access for office reference data.
type LocationRepository interface {
	// Create inserts a new location row
	Create(ctx context.Context, loc Location) (Location, error)

	// GetDefault returns the first registered location, used as the office
	// assignment for employees created lazily during ingestion. Returns
	// (nil, nil) when no location exists yet.
	GetDefault(ctx context.Context) (*Location, error)

	// GetByID retrieves a location by ID
	GetByID(ctx context.Context, id string) (Location, error)

	// List returns all registered locations
	List(ctx context.Context) ([]Location, error)
}
