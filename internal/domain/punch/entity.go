package punch

import (
	"strings"
	"time"

	"github.com/iajwork/smart-attendance-platform/internal/pkg/geo"
)

// Direction is the device-reported punch direction.
type Direction string

const (
	DirectionIn      Direction = "IN"
	DirectionOut     Direction = "OUT"
	DirectionUnknown Direction = ""
)

// Punch is one physical clock event. Rows are immutable once written;
// EmployeeID and Timestamp are always present (rows failing that are dropped
// during normalization and never reach the log).
type Punch struct {
	ID             string
	EmployeeID     string
	Timestamp      time.Time // stored UTC
	Latitude       float64   // 0 means unset, see geo.CoordinatesPresent
	Longitude      float64
	Direction      Direction
	DeviceID       *string
	Address        *string
	LocationStatus geo.Status
	Valid          bool
	CreatedAt      time.Time
}

// ParseDirection normalizes device direction labels; anything unrecognized
// maps to DirectionUnknown rather than failing the row.
func ParseDirection(s string) Direction {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "")) {
	case "IN", "CHECKIN", "CHECK-IN", "CLOCKIN":
		return DirectionIn
	case "OUT", "CHECKOUT", "CHECK-OUT", "CLOCKOUT":
		return DirectionOut
	default:
		return DirectionUnknown
	}
}
