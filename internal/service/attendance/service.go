package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/iajwork/smart-attendance-platform/internal/domain/attendance"
	"github.com/iajwork/smart-attendance-platform/internal/domain/punch"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/geo"
)

type AttendanceServiceImpl struct {
	punch.PunchRepository
	daily   attendance.DailyAttendanceRepository
	monthly attendance.MonthlySummaryRepository
	policy  DayPolicy
}

func NewAttendanceService(
	punchRepo punch.PunchRepository,
	dailyRepo attendance.DailyAttendanceRepository,
	monthlyRepo attendance.MonthlySummaryRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		PunchRepository: punchRepo,
		daily:           dailyRepo,
		monthly:         monthlyRepo,
		policy:          FirstPunchPolicy{},
	}
}

// ComputeDaily implements attendance.AttendanceService. One row per
// employee with punches in [date 00:00, date+1 00:00); employees with zero
// punches are skipped without touching any prior record.
func (a *AttendanceServiceImpl) ComputeDaily(ctx context.Context, req attendance.ComputeDailyRequest) (attendance.ComputeDailyResponse, error) {
	day := truncateToDay(req.Date)
	punches, err := a.PunchRepository.ListByTimeRange(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return attendance.ComputeDailyResponse{}, fmt.Errorf("failed to load punch log: %w", err)
	}

	byEmployee := make(map[string][]punch.Punch)
	for _, p := range punches {
		byEmployee[p.EmployeeID] = append(byEmployee[p.EmployeeID], p)
	}

	updated := 0
	for employeeID, group := range byEmployee {
		record := a.aggregateEmployeeDay(employeeID, day, group)
		if _, err := a.daily.Upsert(ctx, record); err != nil {
			// One employee's bad data must not abort the rest of the run.
			slog.Error("daily aggregation failed for employee",
				"employee_id", employeeID, "date", day.Format("2006-01-02"), "error", err)
			continue
		}
		updated++
	}

	return attendance.ComputeDailyResponse{
		Date:           day.Format("2006-01-02"),
		RecordsUpdated: updated,
	}, nil
}

func (a *AttendanceServiceImpl) aggregateEmployeeDay(employeeID string, day time.Time, group []punch.Punch) attendance.DailyAttendance {
	sort.Slice(group, func(i, j int) bool { return group[i].Timestamp.Before(group[j].Timestamp) })

	login := group[0].Timestamp
	logout := group[len(group)-1].Timestamp

	// Single-punch days have zero duration and therefore never reach the
	// credited-day threshold.
	hours := 0.0
	if len(group) > 1 {
		hours = roundHours(logout.Sub(login).Hours())
	}

	status, baseValid := a.policy.Summarize(group)

	return attendance.DailyAttendance{
		ID:             uuid.NewString(),
		EmployeeID:     employeeID,
		Date:           day,
		LoginTime:      login,
		LogoutTime:     logout,
		TotalHours:     hours,
		Valid:          baseValid && hours > attendance.MinCreditedHours,
		LocationStatus: status,
	}
}

// ComputeMonth implements attendance.AttendanceService, running the daily
// aggregation for every calendar day of the month. DaysProcessed counts only
// days that produced at least one record.
func (a *AttendanceServiceImpl) ComputeMonth(ctx context.Context, req attendance.ComputeMonthRequest) (attendance.ComputeMonthResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ComputeMonthResponse{}, err
	}

	resp := attendance.ComputeMonthResponse{Month: req.Month, Year: req.Year}
	for day := 1; day <= daysInMonth(req.Month, req.Year); day++ {
		date := time.Date(req.Year, time.Month(req.Month), day, 0, 0, 0, 0, time.UTC)
		dayResp, err := a.ComputeDaily(ctx, attendance.ComputeDailyRequest{Date: date})
		if err != nil {
			return attendance.ComputeMonthResponse{}, fmt.Errorf("failed to aggregate %s: %w", date.Format("2006-01-02"), err)
		}
		if dayResp.RecordsUpdated > 0 {
			resp.DaysProcessed++
			resp.TotalDailyRecords += dayResp.RecordsUpdated
		}
	}

	return resp, nil
}

// Rollup implements attendance.AttendanceService. Re-running with unchanged
// daily data produces identical summary values.
func (a *AttendanceServiceImpl) Rollup(ctx context.Context, req attendance.ComputeMonthRequest) (attendance.RollupResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RollupResponse{}, err
	}

	records, err := a.daily.ListByMonth(ctx, req.Month, req.Year)
	if err != nil {
		return attendance.RollupResponse{}, fmt.Errorf("failed to load daily records: %w", err)
	}

	totals := make(map[string]*attendance.MonthlySummary)
	for _, record := range records {
		summary, ok := totals[record.EmployeeID]
		if !ok {
			summary = &attendance.MonthlySummary{
				ID:         uuid.NewString(),
				EmployeeID: record.EmployeeID,
				Month:      req.Month,
				Year:       req.Year,
			}
			totals[record.EmployeeID] = summary
		}

		// Days with a withheld classification still count toward the total
		// but toward neither bucket.
		switch record.LocationStatus {
		case geo.StatusInOffice:
			summary.OfficeDays++
		case geo.StatusRemote:
			summary.RemoteDays++
		}
		summary.TotalDaysPresent++
	}

	written := 0
	for _, summary := range totals {
		if _, err := a.monthly.Upsert(ctx, *summary); err != nil {
			return attendance.RollupResponse{}, fmt.Errorf("failed to upsert monthly summary: %w", err)
		}
		written++
	}

	return attendance.RollupResponse{Month: req.Month, Year: req.Year, SummariesWritten: written}, nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysInMonth(month, year int) int {
	// Day zero of the next month is this month's last day.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
