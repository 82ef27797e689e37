package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/iajwork/smart-attendance-platform/internal/domain/employee"
	"github.com/iajwork/smart-attendance-platform/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Deactivate implements EmployeeHandler.
// POST /employees/{id}/deactivate
func (h *employeeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.employeeService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deactivated", nil)
}
