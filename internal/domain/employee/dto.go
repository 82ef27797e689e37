package employee

// EmployeeResponse is the JSON shape for directory listings.
type EmployeeResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	LocationID *string `json:"location_id,omitempty"`
	Active     bool    `json:"active"`
}
