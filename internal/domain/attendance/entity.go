package attendance

import (
	"time"

	"github.com/iajwork/smart-attendance-platform/internal/pkg/geo"
)

// MinCreditedHours is the duration threshold separating a credited day from
// an incomplete one. A day is valid only when its first punch was valid and
// the login/logout span exceeds this many hours.
const MinCreditedHours = 4.0

// DailyAttendance is the derived record for one employee on one date.
// Unique per (EmployeeID, Date); recomputation overwrites it in place.
type DailyAttendance struct {
	ID             string
	EmployeeID     string
	Date           time.Time // midnight UTC
	LoginTime      time.Time
	LogoutTime     time.Time
	TotalHours     float64
	Valid          bool
	LocationStatus geo.Status
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined for reports
	EmployeeCode *string
	EmployeeName *string
}

// MonthlySummary is the per-employee rollup of daily records.
// Unique per (EmployeeID, Month, Year). OfficeDays + RemoteDays equals
// TotalDaysPresent whenever every day carries one of the two statuses.
type MonthlySummary struct {
	ID               string
	EmployeeID       string
	Month            int // 1-12
	Year             int
	OfficeDays       int
	RemoteDays       int
	TotalDaysPresent int
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined for reports
	EmployeeCode *string
	EmployeeName *string
}
