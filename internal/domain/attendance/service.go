package attendance

import "context"

// AttendanceService defines the aggregation engine. All operations are
// idempotent: re-running with unchanged punch data yields identical rows.
type AttendanceService interface {
	// ComputeDaily aggregates every employee's punches for one calendar day
	// into DailyAttendance rows. Employees with zero punches are skipped.
	ComputeDaily(ctx context.Context, req ComputeDailyRequest) (ComputeDailyResponse, error)

	// ComputeMonth runs ComputeDaily for every day of the month
	ComputeMonth(ctx context.Context, req ComputeMonthRequest) (ComputeMonthResponse, error)

	// Rollup aggregates the month's daily records into per-employee
	// MonthlySummary rows
	Rollup(ctx context.Context, req ComputeMonthRequest) (RollupResponse, error)
}
