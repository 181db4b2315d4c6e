package repository

import (
	"context"

	"wfh-backend/internal/model"

	"gorm.io/gorm"
)

// EmployeeRepository defines the interface for data access of Employee entities
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, staffID int64) (*model.Employee, error)
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	ListByRole(ctx context.Context, role int64) ([]model.Employee, error)
	ListByDept(ctx context.Context, dept string) ([]model.Employee, error)
	ListByManager(ctx context.Context, managerID int64) ([]model.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository returns a new instance of EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return GetDB(ctx, r.db).Create(employee).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, staffID int64) (*model.Employee, error) {
	var employee model.Employee
	if err := GetDB(ctx, r.db).First(&employee, "staff_id = ?", staffID).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	if err := GetDB(ctx, r.db).First(&employee, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := GetDB(ctx, r.db).Order("staff_id").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) ListByRole(ctx context.Context, role int64) ([]model.Employee, error) {
	var employees []model.Employee
	if err := GetDB(ctx, r.db).Where("role = ?", role).Order("staff_id").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) ListByDept(ctx context.Context, dept string) ([]model.Employee, error) {
	var employees []model.Employee
	if err := GetDB(ctx, r.db).Where("dept = ?", dept).Order("staff_id").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) ListByManager(ctx context.Context, managerID int64) ([]model.Employee, error) {
	var employees []model.Employee
	if err := GetDB(ctx, r.db).Where("reporting_manager = ?", managerID).Order("staff_id").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}
