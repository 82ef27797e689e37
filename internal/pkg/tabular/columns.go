package tabular

import "strings"

// ColumnMap resolves a header row to fixed column indexes. -1 means the
// column was not present in the upload; unmapped extra columns are ignored.
type ColumnMap struct {
	Code      int
	Name      int
	Timestamp int
	Direction int
	DeviceID  int
	Latitude  int
	Longitude int
	Address   int
}

// Known header label variants, case/whitespace-insensitive. The canonical
// export labels come first.
var labelVariants = map[string]string{
	"employee number":   "code",
	"employee code":     "code",
	"emp no":            "code",
	"employee name":     "name",
	"name":              "name",
	"time stamp":        "timestamp",
	"timestamp":         "timestamp",
	"punch time":        "timestamp",
	"punch status":      "direction",
	"direction":         "direction",
	"in/out":            "direction",
	"device identifier": "device",
	"device id":         "device",
	"latitude":          "latitude",
	"lat":               "latitude",
	"longitude":         "longitude",
	"lon":               "longitude",
	"lng":               "longitude",
	"address":           "address",
}

// MapColumns maps a located header row onto the canonical punch schema.
func MapColumns(header []string) ColumnMap {
	m := ColumnMap{
		Code: -1, Name: -1, Timestamp: -1, Direction: -1,
		DeviceID: -1, Latitude: -1, Longitude: -1, Address: -1,
	}

	for i, label := range header {
		canonical, ok := labelVariants[normalizeLabel(label)]
		if !ok {
			continue
		}
		switch canonical {
		case "code":
			if m.Code == -1 {
				m.Code = i
			}
		case "name":
			if m.Name == -1 {
				m.Name = i
			}
		case "timestamp":
			if m.Timestamp == -1 {
				m.Timestamp = i
			}
		case "direction":
			if m.Direction == -1 {
				m.Direction = i
			}
		case "device":
			if m.DeviceID == -1 {
				m.DeviceID = i
			}
		case "latitude":
			if m.Latitude == -1 {
				m.Latitude = i
			}
		case "longitude":
			if m.Longitude == -1 {
				m.Longitude = i
			}
		case "address":
			if m.Address == -1 {
				m.Address = i
			}
		}
	}

	return m
}

func normalizeLabel(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Cell safely reads column idx from a row that may be shorter than the
// header (trailing empty cells are trimmed by both CSV and XLSX decoders).
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
