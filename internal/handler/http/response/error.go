package response

import (
	"errors"
	"net/http"

	"github.com/iajwork/smart-attendance-platform/internal/domain/attendance"
	"github.com/iajwork/smart-attendance-platform/internal/domain/employee"
	"github.com/iajwork/smart-attendance-platform/internal/domain/ingest"
	"github.com/iajwork/smart-attendance-platform/internal/domain/location"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/tabular"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Ingestion errors: the whole upload is rejected
	case errors.Is(err, ingest.ErrHeaderNotFound):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, ingest.ErrNoFile):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, tabular.ErrUnsupportedFormat):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, tabular.ErrMalformedFile):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, tabular.ErrEmptyFile):
		BadRequest(w, err.Error(), nil)

	// Aggregation request errors
	case errors.Is(err, attendance.ErrInvalidDate),
		errors.Is(err, attendance.ErrInvalidMonth),
		errors.Is(err, attendance.ErrInvalidYear):
		BadRequest(w, err.Error(), nil)

	// Reference data errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
