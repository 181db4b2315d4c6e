package service

import (
	"context"
	"errors"
	"os"

	"wfh-backend/internal/model"
	"wfh-backend/internal/repository"
	"wfh-backend/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DTOs for request validation
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token   string `json:"token"`
	StaffID int64  `json:"staff_id"`
	Role    int64  `json:"role"`
}

// UserService defines the interface for account lookups and login
type UserService interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	List(ctx context.Context) ([]model.User, error)
	GetByStaffID(ctx context.Context, staffID int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type userService struct {
	repo      repository.UserRepository
	employees repository.EmployeeRepository
}

// NewUserService returns a new instance of UserService
func NewUserService(repo repository.UserRepository, employees repository.EmployeeRepository) UserService {
	return &userService{repo: repo, employees: employees}
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Validation("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Validation("Invalid email or password")
	}

	employee, err := s.employees.GetByID(ctx, user.StaffID)
	if err != nil {
		return nil, apperr.NotFound("There is no employee with this Staff ID")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  employee.StaffID,
		"role": employee.Role,
	})

	// Use same fallback strategy as middleware for simplicity here or get from env centrally
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_super_secret_key"
	}

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	return &TokenResponse{Token: tokenString, StaffID: employee.StaffID, Role: employee.Role}, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if len(users) == 0 {
		return nil, apperr.NotFound("There are no users")
	}
	return users, nil
}

func (s *userService) GetByStaffID(ctx context.Context, staffID int64) (*model.User, error) {
	user, err := s.repo.GetByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("There is no user with this Staff ID")
		}
		return nil, apperr.Unexpected(err)
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("There is no user with this email")
		}
		return nil, apperr.Unexpected(err)
	}
	return user, nil
}
