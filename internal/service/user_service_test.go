package service

import (
	"context"
	"testing"

	"wfh-backend/internal/model"
	"wfh-backend/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*model.User // keyed by email
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByStaffID(_ context.Context, staffID int64) (*model.User, error) {
	for _, user := range f.users {
		if user.StaffID == staffID {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	f.users[user.Email] = user
	return nil
}

func newUserFixture(t *testing.T) UserService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[string]*model.User{
		"an@wfh.example.com": {StaffID: 10, Email: "an@wfh.example.com", Password: string(hash)},
	}}
	managerID := int64(2)
	employees := newFakeEmployeeRepo(
		&model.Employee{StaffID: 10, StaffFName: "An", StaffLName: "Le", Email: "an@wfh.example.com", ReportingManager: &managerID, Role: 2},
	)
	return NewUserService(users, employees)
}

func TestLoginIssuesTokenWithStaffClaims(t *testing.T) {
	svc := newUserFixture(t)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "an@wfh.example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.StaffID)
	assert.Equal(t, int64(2), result.Role)

	token, err := jwt.Parse(result.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("default_super_secret_key"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(10), claims["sub"])
	assert.Equal(t, float64(2), claims["role"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newUserFixture(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "an@wfh.example.com",
		Password: "nope",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc := newUserFixture(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@wfh.example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
