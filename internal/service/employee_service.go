package service

import (
	"context"
	"errors"

	"wfh-backend/internal/model"
	"wfh-backend/internal/repository"
	"wfh-backend/pkg/apperr"

	"gorm.io/gorm"
)

// EmployeeService defines the interface for the staff directory lookups
type EmployeeService interface {
	List(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, staffID int64) (*model.Employee, error)
	ReportingManager(ctx context.Context, staffID int64) (*int64, error)
	Role(ctx context.Context, staffID int64) (int64, error)
	ListByRole(ctx context.Context, role int64) ([]model.Employee, error)
	ListByDept(ctx context.Context, dept string) ([]model.Employee, error)
	Team(ctx context.Context, managerID int64) ([]model.Employee, error)
}

type employeeService struct {
	repo repository.EmployeeRepository
}

// NewEmployeeService returns a new instance of EmployeeService
func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) List(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if len(employees) == 0 {
		return nil, apperr.NotFound("There are no employees")
	}
	return employees, nil
}

func (s *employeeService) GetByID(ctx context.Context, staffID int64) (*model.Employee, error) {
	employee, err := s.repo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("There is no employee with this Staff ID")
		}
		return nil, apperr.Unexpected(err)
	}
	return employee, nil
}

func (s *employeeService) ReportingManager(ctx context.Context, staffID int64) (*int64, error) {
	employee, err := s.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return employee.ReportingManager, nil
}

func (s *employeeService) Role(ctx context.Context, staffID int64) (int64, error) {
	employee, err := s.GetByID(ctx, staffID)
	if err != nil {
		return 0, err
	}
	return employee.Role, nil
}

func (s *employeeService) ListByRole(ctx context.Context, role int64) ([]model.Employee, error) {
	employees, err := s.repo.ListByRole(ctx, role)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if len(employees) == 0 {
		return nil, apperr.NotFound("There are no employees with this role")
	}
	return employees, nil
}

func (s *employeeService) ListByDept(ctx context.Context, dept string) ([]model.Employee, error) {
	employees, err := s.repo.ListByDept(ctx, dept)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if len(employees) == 0 {
		return nil, apperr.NotFound("There are no employees in this department")
	}
	return employees, nil
}

func (s *employeeService) Team(ctx context.Context, managerID int64) ([]model.Employee, error) {
	employees, err := s.repo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if len(employees) == 0 {
		return nil, apperr.NotFound("No team members found")
	}
	return employees, nil
}
