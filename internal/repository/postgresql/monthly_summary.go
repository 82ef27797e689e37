package postgresql

import (
	"context"
	"fmt"

	"github.com/iajwork/smart-attendance-platform/internal/domain/attendance"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type monthlySummaryRepository struct {
	db *database.DB
}

func NewMonthlySummaryRepository(db *database.DB) attendance.MonthlySummaryRepository {
	return &monthlySummaryRepository{db: db}
}

// Upsert implements attendance.MonthlySummaryRepository with the same
// overwrite-in-place discipline as the daily repository, keyed on
// (employee_id, month, year).
func (m *monthlySummaryRepository) Upsert(ctx context.Context, summary attendance.MonthlySummary) (attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		INSERT INTO monthly_summaries (
			id, employee_id, month, year,
			office_days, remote_days, total_days_present
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			office_days        = EXCLUDED.office_days,
			remote_days        = EXCLUDED.remote_days,
			total_days_present = EXCLUDED.total_days_present,
			updated_at         = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		summary.ID,
		summary.EmployeeID,
		summary.Month,
		summary.Year,
		summary.OfficeDays,
		summary.RemoteDays,
		summary.TotalDaysPresent,
	).Scan(&summary.ID, &summary.CreatedAt, &summary.UpdatedAt)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to upsert monthly summary: %w", err)
	}

	return summary, nil
}

// GetByEmployeeAndMonth implements attendance.MonthlySummaryRepository.
func (m *monthlySummaryRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) (*attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		SELECT id, employee_id, month, year,
			   office_days, remote_days, total_days_present, created_at, updated_at
		FROM monthly_summaries
		WHERE employee_id = $1
		  AND month = $2
		  AND year = $3
		LIMIT 1
	`

	var summary attendance.MonthlySummary
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&summary.ID, &summary.EmployeeID, &summary.Month, &summary.Year,
		&summary.OfficeDays, &summary.RemoteDays, &summary.TotalDaysPresent,
		&summary.CreatedAt, &summary.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return &summary, nil
}

// ListByMonth implements attendance.MonthlySummaryRepository.
func (m *monthlySummaryRepository) ListByMonth(ctx context.Context, month, year int) ([]attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		SELECT s.id, s.employee_id, s.month, s.year,
			   s.office_days, s.remote_days, s.total_days_present, s.created_at, s.updated_at,
			   e.code AS employee_code,
			   e.name AS employee_name
		FROM monthly_summaries s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.month = $1
		  AND s.year = $2
		ORDER BY e.code ASC
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly summaries: %w", err)
	}
	defer rows.Close()

	var summaries []attendance.MonthlySummary
	for rows.Next() {
		var summary attendance.MonthlySummary
		err := rows.Scan(
			&summary.ID, &summary.EmployeeID, &summary.Month, &summary.Year,
			&summary.OfficeDays, &summary.RemoteDays, &summary.TotalDaysPresent,
			&summary.CreatedAt, &summary.UpdatedAt,
			&summary.EmployeeCode, &summary.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read monthly summaries: %w", err)
	}

	return summaries, nil
}
