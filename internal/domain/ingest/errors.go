package ingest

import "errors"

// Format-level errors reject the whole upload; row-level problems are
// absorbed by dropping the row instead.
var (
	ErrHeaderNotFound = errors.New("could not find the employee number column in the first rows")
	ErrNoFile         = errors.New("upload file is required")
)
