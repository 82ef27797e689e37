package attendance

import (
	"time"

	"github.com/iajwork/smart-attendance-platform/internal/pkg/validator"
)

// ComputeDailyRequest identifies the day to aggregate.
type ComputeDailyRequest struct {
	Date time.Time
}

// ComputeDailyResponse reports how many employee-day rows were written.
type ComputeDailyResponse struct {
	Date           string `json:"date"`
	RecordsUpdated int    `json:"records_updated"`
}

// ComputeMonthRequest identifies the month to aggregate day by day.
type ComputeMonthRequest struct {
	Month int
	Year  int
}

func (r ComputeMonthRequest) Validate() error {
	if !validator.IsValidMonth(r.Month) {
		return ErrInvalidMonth
	}
	if !validator.IsValidYear(r.Year) {
		return ErrInvalidYear
	}
	return nil
}

// ComputeMonthResponse sums the per-day aggregation results. DaysProcessed
// counts only days that produced at least one record.
type ComputeMonthResponse struct {
	Month             int `json:"month"`
	Year              int `json:"year"`
	DaysProcessed     int `json:"days_processed"`
	TotalDailyRecords int `json:"total_daily_records"`
}

// RollupResponse reports how many per-employee summaries were written.
type RollupResponse struct {
	Month            int `json:"month"`
	Year             int `json:"year"`
	SummariesWritten int `json:"summaries_written"`
}
