package ingest

// UploadResponse reports the committed upload. RecordsProcessed counts only
// rows that survived normalization and were inserted into the punch log.
type UploadResponse struct {
	Status           string `json:"status"`
	RecordsProcessed int    `json:"records_processed"`
}
