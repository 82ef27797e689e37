package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/iajwork/smart-attendance-platform/internal/domain/ingest"
	"github.com/iajwork/smart-attendance-platform/internal/domain/punch"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/tabular"
)

// headerMarker identifies the real header row inside a messy export. Rows
// above it are report metadata and contribute nothing.
const headerMarker = "employee number"

// Timestamp layouts seen across device exports. Parsed values are treated
// as UTC.
var punchTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"02-01-2006 15:04:05",
	"02-01-2006 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
}

// normalizeRows coerces raw data rows into punch candidates. Rows that lack
// a parseable timestamp or an employee code after coercion are dropped, not
// errored; the returned dropped count is only logged.
func normalizeRows(rows [][]string, cols tabular.ColumnMap) (candidates []ingest.PunchCandidate, dropped int) {
	for _, row := range rows {
		code := strings.ToUpper(tabular.Cell(row, cols.Code))
		ts, ok := parsePunchTime(tabular.Cell(row, cols.Timestamp))
		if code == "" || !ok {
			dropped++
			continue
		}

		candidates = append(candidates, ingest.PunchCandidate{
			EmployeeCode: code,
			EmployeeName: tabular.Cell(row, cols.Name),
			Timestamp:    ts,
			Latitude:     parseCoordinate(tabular.Cell(row, cols.Latitude)),
			Longitude:    parseCoordinate(tabular.Cell(row, cols.Longitude)),
			Direction:    punch.ParseDirection(tabular.Cell(row, cols.Direction)),
			DeviceID:     optionalCell(row, cols.DeviceID),
			Address:      optionalCell(row, cols.Address),
		})
	}
	return candidates, dropped
}

func parsePunchTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range punchTimeLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

// parseCoordinate maps non-numeric input to 0, the unset sentinel the
// classifier fail-safes on.
func parseCoordinate(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func optionalCell(row []string, idx int) *string {
	v := tabular.Cell(row, idx)
	if v == "" {
		return nil
	}
	return &v
}
