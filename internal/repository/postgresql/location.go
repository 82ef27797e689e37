package postgresql

import (
	"context"
	"fmt"

	"github.com/iajwork/smart-attendance-platform/internal/domain/location"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type locationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepository{db: db}
}

// Create implements location.LocationRepository.
func (l *locationRepository) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO locations (id, name, latitude, longitude, radius_meters)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		loc.ID, loc.Name, loc.Latitude, loc.Longitude, loc.RadiusMeters,
	).Scan(&loc.ID)
	if err != nil {
		return location.Location{}, fmt.Errorf("failed to create location: %w", err)
	}

	return loc, nil
}

// GetDefault implements location.LocationRepository.
func (l *locationRepository) GetDefault(ctx context.Context) (*location.Location, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, latitude, longitude, radius_meters
		FROM locations
		ORDER BY created_at ASC
		LIMIT 1
	`

	var loc location.Location
	err := q.QueryRow(ctx, query).Scan(
		&loc.ID, &loc.Name, &loc.Latitude, &loc.Longitude, &loc.RadiusMeters,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no reference data registered yet
		}
		return nil, fmt.Errorf("failed to get default location: %w", err)
	}

	return &loc, nil
}

// GetByID implements location.LocationRepository.
func (l *locationRepository) GetByID(ctx context.Context, id string) (location.Location, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, latitude, longitude, radius_meters
		FROM locations
		WHERE id = $1
	`

	var loc location.Location
	err := q.QueryRow(ctx, query, id).Scan(
		&loc.ID, &loc.Name, &loc.Latitude, &loc.Longitude, &loc.RadiusMeters,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to get location by ID: %w", err)
	}

	return loc, nil
}

// List implements location.LocationRepository.
func (l *locationRepository) List(ctx context.Context) ([]location.Location, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, latitude, longitude, radius_meters
		FROM locations
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []location.Location
	for rows.Next() {
		var loc location.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Latitude, &loc.Longitude, &loc.RadiusMeters); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read locations: %w", err)
	}

	return locations, nil
}
