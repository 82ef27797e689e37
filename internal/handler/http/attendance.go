package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/iajwork/smart-attendance-platform/internal/domain/attendance"
	"github.com/iajwork/smart-attendance-platform/internal/handler/http/response"
)

type AttendanceHandler interface {
	ComputeDaily(w http.ResponseWriter, r *http.Request)
	ComputeMonth(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ComputeDaily implements AttendanceHandler.
// POST /attendance/daily?date=YYYY-MM-DD
func (h *attendanceHandlerImpl) ComputeDaily(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, attendance.ErrInvalidDate)
		return
	}

	result, err := h.attendanceService.ComputeDaily(r.Context(), attendance.ComputeDailyRequest{Date: date})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance processed for "+result.Date, result)
}

// ComputeMonth implements AttendanceHandler.
// POST /attendance/monthly?month=M&year=YYYY
func (h *attendanceHandlerImpl) ComputeMonth(w http.ResponseWriter, r *http.Request) {
	month, year, err := monthYearParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ComputeMonth(r.Context(), attendance.ComputeMonthRequest{Month: month, Year: year})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func monthYearParams(r *http.Request) (int, int, error) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, attendance.ErrInvalidMonth
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, attendance.ErrInvalidYear
	}
	return month, year, nil
}
