package attendance

import "errors"

var (
	ErrInvalidDate  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year must be a four digit number")
)
