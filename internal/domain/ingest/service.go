package ingest

import (
	"context"
	"io"
)

// IngestService turns a raw punch export into committed punch log rows.
type IngestService interface {
	// ProcessUpload normalizes the file, syncs the employee directory,
	// classifies each punch against its employee's office geofence and
	// inserts the rows. The whole upload commits atomically or not at all.
	ProcessUpload(ctx context.Context, filename string, file io.Reader) (UploadResponse, error)
}
