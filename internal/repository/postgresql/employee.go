package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/iajwork/smart-attendance-platform/internal/domain/employee"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, code, name, location_id, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.Code, emp.Name, emp.LocationID, emp.Active,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, code, name, location_id, active, created_at, updated_at
		FROM employees
		WHERE code = $1
		LIMIT 1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, code).Scan(
		&emp.ID, &emp.Code, &emp.Name, &emp.LocationID, &emp.Active,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // unknown code, caller decides whether to create
		}
		return nil, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return &emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, code, name, location_id, active, created_at, updated_at
		FROM employees
		ORDER BY code ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Code, &emp.Name, &emp.LocationID, &emp.Active,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}

// Deactivate implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET active = false, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	return nil
}
