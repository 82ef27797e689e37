package attendance

import (
	"github.com/iajwork/smart-attendance-platform/internal/domain/punch"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/geo"
)

// DayPolicy decides a day's location status and base validity from that
// day's punches, sorted ascending by timestamp. It is a swap point: the
// aggregation loop itself never inspects individual punches.
type DayPolicy interface {
	Summarize(punches []punch.Punch) (geo.Status, bool)
}

// FirstPunchPolicy takes status and validity from the earliest punch of the
// day. Deliberately not a quorum across punches.
type FirstPunchPolicy struct{}

func (FirstPunchPolicy) Summarize(punches []punch.Punch) (geo.Status, bool) {
	if len(punches) == 0 {
		return geo.StatusRemote, false
	}
	first := punches[0]
	return first.LocationStatus, first.Valid
}
