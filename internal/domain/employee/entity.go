package employee

import "time"

// Employee is created lazily the first time its code appears in an upload.
// Employees are never deleted, only deactivated.
type Employee struct {
	ID         string
	Code       string // unique, stored upper-cased
	Name       string
	LocationID *string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
