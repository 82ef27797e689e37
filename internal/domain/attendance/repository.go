package attendance

import (
	"context"
	"time"
)

// DailyAttendanceRepository defines data access for derived daily records.
// The aggregation service owns these rows exclusively.
type DailyAttendanceRepository interface {
	// Upsert inserts or overwrites the row keyed on (employee_id, date).
	// The unique constraint plus ON CONFLICT makes concurrent recompute
	// of the same key converge on a single row.
	Upsert(ctx context.Context, record DailyAttendance) (DailyAttendance, error)

	// GetByEmployeeAndDate returns (nil, nil) when no record exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DailyAttendance, error)

	// ListByDate returns all records for one date with employee code/name joined
	ListByDate(ctx context.Context, date time.Time) ([]DailyAttendance, error)

	// ListByMonth returns all records whose date falls in the given month
	ListByMonth(ctx context.Context, month, year int) ([]DailyAttendance, error)
}

// MonthlySummaryRepository defines data access for monthly rollups.
type MonthlySummaryRepository interface {
	// Upsert inserts or overwrites the row keyed on (employee_id, month, year)
	Upsert(ctx context.Context, summary MonthlySummary) (MonthlySummary, error)

	// GetByEmployeeAndMonth returns (nil, nil) when no summary exists
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) (*MonthlySummary, error)

	// ListByMonth returns all summaries for a month with employee code/name joined
	ListByMonth(ctx context.Context, month, year int) ([]MonthlySummary, error)
}
