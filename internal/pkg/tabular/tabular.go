package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("only CSV or Excel files are allowed")
	ErrMalformedFile     = errors.New("file could not be read as tabular data")
	ErrEmptyFile         = errors.New("file contains no rows")
)

// Decode reads an uploaded CSV/XLSX file into raw string rows. No header is
// assumed; callers locate it with FindHeaderRow.
func Decode(filename string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return decodeCSV(r)
	case ".xlsx", ".xls":
		return decodeXLSX(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func decodeCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // metadata rows above the header are ragged
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return rows, nil
}

func decodeXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrEmptyFile
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return rows, nil
}

// HeaderScanWindow caps how many leading rows are searched for the header.
// Exports commonly carry a block of report metadata above the real header.
const HeaderScanWindow = 15

// FindHeaderRow scans the first HeaderScanWindow rows for the one whose
// joined, case-folded cells contain marker. Returns the row index.
func FindHeaderRow(rows [][]string, marker string) (int, bool) {
	marker = strings.ToLower(marker)
	for i := 0; i < len(rows) && i < HeaderScanWindow; i++ {
		joined := strings.ToLower(strings.Join(rows[i], " "))
		if strings.Contains(joined, marker) {
			return i, true
		}
	}
	return 0, false
}
