package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/iajwork/smart-attendance-platform/internal/domain/punch"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/database"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/geo"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

// Insert implements punch.PunchRepository.
func (p *punchRepository) Insert(ctx context.Context, row punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO punches (
			id, employee_id, ts, latitude, longitude,
			direction, device_id, address, location_status, valid
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		row.ID,
		row.EmployeeID,
		row.Timestamp,
		row.Latitude,
		row.Longitude,
		string(row.Direction),
		row.DeviceID,
		row.Address,
		string(row.LocationStatus),
		row.Valid,
	).Scan(&row.ID, &row.CreatedAt)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to insert punch: %w", err)
	}

	return row, nil
}

// ListByTimeRange implements punch.PunchRepository.
func (p *punchRepository) ListByTimeRange(ctx context.Context, from, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, ts, latitude, longitude,
			   direction, device_id, address, location_status, valid, created_at
		FROM punches
		WHERE ts >= $1
		  AND ts < $2
		ORDER BY employee_id ASC, ts ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var row punch.Punch
		var direction, status string
		err := rows.Scan(
			&row.ID, &row.EmployeeID, &row.Timestamp, &row.Latitude, &row.Longitude,
			&direction, &row.DeviceID, &row.Address, &status, &row.Valid, &row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		row.Direction = punch.Direction(direction)
		row.LocationStatus = geo.Status(status)
		punches = append(punches, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punches: %w", err)
	}

	return punches, nil
}
