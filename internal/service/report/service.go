package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iajwork/smart-attendance-platform/internal/domain/attendance"
	"github.com/iajwork/smart-attendance-platform/internal/domain/report"
)

type ReportServiceImpl struct {
	daily             attendance.DailyAttendanceRepository
	monthly           attendance.MonthlySummaryRepository
	attendanceService attendance.AttendanceService
}

func NewReportService(
	dailyRepo attendance.DailyAttendanceRepository,
	monthlyRepo attendance.MonthlySummaryRepository,
	attendanceService attendance.AttendanceService,
) report.ReportService {
	return &ReportServiceImpl{
		daily:             dailyRepo,
		monthly:           monthlyRepo,
		attendanceService: attendanceService,
	}
}

// BuildDailyReport implements report.ReportService.
func (s *ReportServiceImpl) BuildDailyReport(ctx context.Context, date time.Time) (string, error) {
	records, err := s.daily.ListByDate(ctx, date)
	if err != nil {
		return "", fmt.Errorf("failed to load daily attendance: %w", err)
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	// csv.Writer defers write errors; w.Error after Flush reports them.
	w.Write([]string{"Employee Code", "Employee Name", "In Time", "Out Time", "Hours", "Status"})
	for _, record := range records {
		w.Write([]string{
			stringOrDash(record.EmployeeCode),
			stringOrDash(record.EmployeeName),
			clockOrDash(record.LoginTime),
			clockOrDash(record.LogoutTime),
			hoursOrDash(record.TotalHours),
			string(record.LocationStatus),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to render daily report: %w", err)
	}
	return sb.String(), nil
}

// BuildMonthlyReport implements report.ReportService. The rollup runs first
// so the report always reflects freshly computed summaries.
func (s *ReportServiceImpl) BuildMonthlyReport(ctx context.Context, month, year int) (string, error) {
	req := attendance.ComputeMonthRequest{Month: month, Year: year}
	if _, err := s.attendanceService.Rollup(ctx, req); err != nil {
		return "", err
	}

	summaries, err := s.monthly.ListByMonth(ctx, month, year)
	if err != nil {
		return "", fmt.Errorf("failed to load monthly summaries: %w", err)
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	// csv.Writer defers write errors; w.Error after Flush reports them.
	w.Write([]string{"Employee Code", "Employee Name", "Office Days", "Remote Days", "Total Days"})
	for _, summary := range summaries {
		w.Write([]string{
			stringOrDash(summary.EmployeeCode),
			stringOrDash(summary.EmployeeName),
			strconv.Itoa(summary.OfficeDays),
			strconv.Itoa(summary.RemoteDays),
			strconv.Itoa(summary.TotalDaysPresent),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to render monthly report: %w", err)
	}
	return sb.String(), nil
}

func stringOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func clockOrDash(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("15:04")
}

func hoursOrDash(h float64) string {
	if h == 0 {
		return "-"
	}
	return strconv.FormatFloat(h, 'f', 2, 64) + " hrs"
}
