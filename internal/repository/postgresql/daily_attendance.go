package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/iajwork/smart-attendance-platform/internal/domain/attendance"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/database"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/geo"
	"github.com/jackc/pgx/v5"
)

type dailyAttendanceRepository struct {
	db *database.DB
}

func NewDailyAttendanceRepository(db *database.DB) attendance.DailyAttendanceRepository {
	return &dailyAttendanceRepository{db: db}
}

// Upsert implements attendance.DailyAttendanceRepository. The unique
// constraint on (employee_id, date) makes concurrent recompute of the same
// key converge on one row instead of duplicating it.
func (d *dailyAttendanceRepository) Upsert(ctx context.Context, record attendance.DailyAttendance) (attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO daily_attendance (
			id, employee_id, date, login_time, logout_time,
			total_hours, valid, location_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			login_time      = EXCLUDED.login_time,
			logout_time     = EXCLUDED.logout_time,
			total_hours     = EXCLUDED.total_hours,
			valid           = EXCLUDED.valid,
			location_status = EXCLUDED.location_status,
			updated_at      = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.LoginTime,
		record.LogoutTime,
		record.TotalHours,
		record.Valid,
		string(record.LocationStatus),
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return attendance.DailyAttendance{}, fmt.Errorf("failed to upsert daily attendance: %w", err)
	}

	return record, nil
}

// GetByEmployeeAndDate implements attendance.DailyAttendanceRepository.
func (d *dailyAttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, employee_id, date, login_time, logout_time,
			   total_hours, valid, location_status, created_at, updated_at
		FROM daily_attendance
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var record attendance.DailyAttendance
	var status string
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.LoginTime, &record.LogoutTime,
		&record.TotalHours, &record.Valid, &status, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record for this employee-day
		}
		return nil, fmt.Errorf("failed to get daily attendance: %w", err)
	}
	record.LocationStatus = geo.Status(status)

	return &record, nil
}

// ListByDate implements attendance.DailyAttendanceRepository.
func (d *dailyAttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.login_time, a.logout_time,
			   a.total_hours, a.valid, a.location_status, a.created_at, a.updated_at,
			   e.code AS employee_code,
			   e.name AS employee_name
		FROM daily_attendance a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY e.code ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily attendance: %w", err)
	}
	defer rows.Close()

	return scanDailyRows(rows)
}

// ListByMonth implements attendance.DailyAttendanceRepository.
func (d *dailyAttendanceRepository) ListByMonth(ctx context.Context, month, year int) ([]attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, d.db)

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT a.id, a.employee_id, a.date, a.login_time, a.logout_time,
			   a.total_hours, a.valid, a.location_status, a.created_at, a.updated_at,
			   e.code AS employee_code,
			   e.name AS employee_name
		FROM daily_attendance a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date >= $1
		  AND a.date < $2
		ORDER BY e.code ASC, a.date ASC
	`

	rows, err := q.Query(ctx, query, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily attendance for month: %w", err)
	}
	defer rows.Close()

	return scanDailyRows(rows)
}

func scanDailyRows(rows pgx.Rows) ([]attendance.DailyAttendance, error) {
	var records []attendance.DailyAttendance
	for rows.Next() {
		var record attendance.DailyAttendance
		var status string
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &record.LoginTime, &record.LogoutTime,
			&record.TotalHours, &record.Valid, &status, &record.CreatedAt, &record.UpdatedAt,
			&record.EmployeeCode, &record.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily attendance: %w", err)
		}
		record.LocationStatus = geo.Status(status)
		records = append(records, record)
	}
	// Next returns false on both exhaustion and failure; only Err tells a
	// truncated result apart from a complete one.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily attendance rows: %w", err)
	}
	return records, nil
}
