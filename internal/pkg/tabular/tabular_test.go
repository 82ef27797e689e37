package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDecode_CSV(t *testing.T) {
	input := "Report generated,2026-02-26\n\nEmployee Number,Time Stamp\nE1,2026-02-25 09:00:00\n"

	rows, err := Decode("punches.csv", strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Employee Number", "Time Stamp"}, rows[2])
}

func TestDecode_XLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Employee Number", "Time Stamp"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"E1", "2026-02-25 09:00:00"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := Decode("punches.xlsx", buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Employee Number", rows[0][0])
}

func TestDecode_RejectsUnknownExtension(t *testing.T) {
	_, err := Decode("punches.pdf", strings.NewReader("data"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecode_MalformedWorkbook(t *testing.T) {
	// A renamed text file is not a zip archive, so the workbook reader must
	// reject it with the malformed-file sentinel, not an opaque error.
	_, err := Decode("punches.xlsx", strings.NewReader("definitely not a spreadsheet"))
	assert.ErrorIs(t, err, ErrMalformedFile)
}

func TestDecode_MalformedLegacyExcel(t *testing.T) {
	_, err := Decode("punches.xls", strings.NewReader("\xd0\xcf\x11\xe0 legacy bytes"))
	assert.ErrorIs(t, err, ErrMalformedFile)
}

func TestFindHeaderRow_SkipsMetadataRows(t *testing.T) {
	rows := [][]string{
		{"Acme Corp"},
		{"Punch Report"},
		{"Period:", "Feb 2026"},
		{"Sr", "Employee Number", "Time Stamp"},
		{"1", "E1", "2026-02-25 09:00:00"},
	}

	idx, found := FindHeaderRow(rows, "employee number")
	require.True(t, found)
	assert.Equal(t, 3, idx)
}

func TestFindHeaderRow_MarkerInsideOtherText(t *testing.T) {
	rows := [][]string{
		{"meta"},
		{"The Employee Number Column", "Time"},
	}

	idx, found := FindHeaderRow(rows, "employee number")
	require.True(t, found)
	assert.Equal(t, 1, idx)
}

func TestFindHeaderRow_NotFoundWithinWindow(t *testing.T) {
	rows := make([][]string, 0, HeaderScanWindow+2)
	for i := 0; i < HeaderScanWindow; i++ {
		rows = append(rows, []string{"metadata"})
	}
	// Header beyond the scan window must not be picked up.
	rows = append(rows, []string{"Employee Number"})

	_, found := FindHeaderRow(rows, "employee number")
	assert.False(t, found)
}

func TestMapColumns_CanonicalLabels(t *testing.T) {
	m := MapColumns([]string{
		"Employee Number", "Employee Name", "Time Stamp", "Punch Status",
		"Device Identifier", "Latitude", "Longitude", "Address",
	})

	assert.Equal(t, 0, m.Code)
	assert.Equal(t, 1, m.Name)
	assert.Equal(t, 2, m.Timestamp)
	assert.Equal(t, 3, m.Direction)
	assert.Equal(t, 4, m.DeviceID)
	assert.Equal(t, 5, m.Latitude)
	assert.Equal(t, 6, m.Longitude)
	assert.Equal(t, 7, m.Address)
}

func TestMapColumns_VariantsAndUnknownColumns(t *testing.T) {
	m := MapColumns([]string{"Sr No", "  EMP NO ", "timestamp", "lat", "LNG", "Random"})

	assert.Equal(t, 1, m.Code)
	assert.Equal(t, 2, m.Timestamp)
	assert.Equal(t, 3, m.Latitude)
	assert.Equal(t, 4, m.Longitude)
	assert.Equal(t, -1, m.Name)
	assert.Equal(t, -1, m.Address)
}

func TestCell_OutOfRange(t *testing.T) {
	row := []string{"a", " b "}

	assert.Equal(t, "b", Cell(row, 1))
	assert.Equal(t, "", Cell(row, 5))
	assert.Equal(t, "", Cell(row, -1))
}
