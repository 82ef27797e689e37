package employee

import (
	"context"
	"fmt"

	"github.com/iajwork/smart-attendance-platform/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.EmployeeResponse{
			ID:         emp.ID,
			Code:       emp.Code,
			Name:       emp.Name,
			LocationID: emp.LocationID,
			Active:     emp.Active,
		})
	}
	return responses, nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.EmployeeRepository.Deactivate(ctx, id)
}
