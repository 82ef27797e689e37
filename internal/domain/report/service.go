package report

import (
	"context"
	"time"
)

// ReportService renders attendance data as downloadable delimited text.
type ReportService interface {
	// BuildDailyReport serializes all attendance rows for one date as CSV
	BuildDailyReport(ctx context.Context, date time.Time) (string, error)

	// BuildMonthlyReport re-runs the monthly rollup, then serializes the
	// fresh per-employee summaries as CSV
	BuildMonthlyReport(ctx context.Context, month, year int) (string, error)
}
