package location

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/iajwork/smart-attendance-platform/internal/domain/location"
)

type LocationServiceImpl struct {
	location.LocationRepository
}

func NewLocationService(locationRepo location.LocationRepository) location.LocationService {
	return &LocationServiceImpl{LocationRepository: locationRepo}
}

// Create implements location.LocationService.
func (s *LocationServiceImpl) Create(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	radius := req.RadiusMeters
	if radius == 0 {
		radius = location.FallbackRadiusMeters
	}

	created, err := s.LocationRepository.Create(ctx, location.Location{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: radius,
	})
	if err != nil {
		return location.LocationResponse{}, fmt.Errorf("failed to create location: %w", err)
	}

	return toResponse(created), nil
}

// List implements location.LocationService.
func (s *LocationServiceImpl) List(ctx context.Context) ([]location.LocationResponse, error) {
	locations, err := s.LocationRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	responses := make([]location.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		responses = append(responses, toResponse(loc))
	}
	return responses, nil
}

func toResponse(loc location.Location) location.LocationResponse {
	return location.LocationResponse{
		ID:           loc.ID,
		Name:         loc.Name,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		RadiusMeters: loc.RadiusMeters,
	}
}
