package ingest

import (
	"time"

	"github.com/iajwork/smart-attendance-platform/internal/domain/punch"
)

// PunchCandidate is one validated upload row, normalized to the canonical
// punch schema but not yet resolved to an employee ID.
type PunchCandidate struct {
	EmployeeCode string // trimmed, upper-cased join key
	EmployeeName string
	Timestamp    time.Time // UTC
	Latitude     float64   // 0 when missing or non-numeric
	Longitude    float64
	Direction    punch.Direction
	DeviceID     *string
	Address      *string
}

// ResolvedEmployee is one entry of the lookup table built by directory sync:
// the employee ID plus its effective office geofence. Nil coordinates mean
// no assigned location; the classifier fail-safes those to REMOTE.
type ResolvedEmployee struct {
	EmployeeID   string
	OfficeLat    *float64
	OfficeLon    *float64
	RadiusMeters float64
}
