package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/iajwork/smart-attendance-platform/internal/domain/attendance"
	"github.com/iajwork/smart-attendance-platform/internal/domain/report"
	"github.com/iajwork/smart-attendance-platform/internal/handler/http/response"
)

type ReportHandler interface {
	DailyReport(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// DailyReport implements ReportHandler.
// GET /reports/daily?date=YYYY-MM-DD
func (h *reportHandlerImpl) DailyReport(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.HandleError(w, attendance.ErrInvalidDate)
		return
	}

	csvData, err := h.reportService.BuildDailyReport(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.CSVAttachment(w, fmt.Sprintf("Daily_Attendance_%s.csv", dateStr), csvData)
}

// MonthlyReport implements ReportHandler.
// GET /reports/monthly?month=M&year=YYYY
func (h *reportHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	month, year, err := monthYearParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	csvData, err := h.reportService.BuildMonthlyReport(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.CSVAttachment(w, fmt.Sprintf("Monthly_Summary_%d_%d.csv", month, year), csvData)
}
