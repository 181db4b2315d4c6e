package main

import (
	"log"

	"wfh-backend/internal/config"
	"wfh-backend/internal/database"
	"wfh-backend/internal/model"
	"wfh-backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedPassword is shared by every seeded account; this data is for local
// development only.
const seedPassword = "password123"

type seedEmployee struct {
	staffID   int64
	fname     string
	lname     string
	dept      string
	position  string
	country   string
	managerID *int64
	role      int64
}

func ptr(id int64) *int64 { return &id }

func email(fname, lname string) string {
	return fname + "." + lname + "@wfh.example.com"
}

// The manager chain is a tree rooted at the director; no employee reports,
// directly or transitively, to themselves.
func employees() []seedEmployee {
	return []seedEmployee{
		{staffID: 1, fname: "Mai", lname: "Tran", dept: "Management", position: "Director", country: "Singapore", managerID: nil, role: 1},
		{staffID: 2, fname: "Duc", lname: "Nguyen", dept: "Sales", position: "Sales Manager", country: "Singapore", managerID: ptr(1), role: 3},
		{staffID: 3, fname: "Linh", lname: "Pham", dept: "Engineering", position: "Engineering Manager", country: "Vietnam", managerID: ptr(1), role: 3},
		{staffID: 10, fname: "An", lname: "Le", dept: "Sales", position: "Account Executive", country: "Singapore", managerID: ptr(2), role: 2},
		{staffID: 11, fname: "Binh", lname: "Hoang", dept: "Sales", position: "Account Executive", country: "Vietnam", managerID: ptr(2), role: 2},
		{staffID: 12, fname: "Chi", lname: "Vo", dept: "Engineering", position: "Software Engineer", country: "Vietnam", managerID: ptr(3), role: 2},
		{staffID: 13, fname: "Dung", lname: "Bui", dept: "Engineering", position: "Software Engineer", country: "Singapore", managerID: ptr(3), role: 2},
	}
}

func seedRoles(db *gorm.DB) error {
	roles := []model.Role{
		{Role: 1, RoleName: "HR", RoleDescription: "Human resources and admin access"},
		{Role: 2, RoleName: "Staff", RoleDescription: "Regular employee"},
		{Role: 3, RoleName: "Manager", RoleDescription: "Approves WFH requests for direct reports"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error
}

func seedEmployees(db *gorm.DB) error {
	for _, e := range employees() {
		row := model.Employee{
			StaffID:          e.staffID,
			StaffFName:       e.fname,
			StaffLName:       e.lname,
			Dept:             e.dept,
			Position:         e.position,
			Country:          e.country,
			Email:            email(e.fname, e.lname),
			ReportingManager: e.managerID,
			Role:             e.role,
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	for _, e := range employees() {
		row := model.User{
			StaffID:  e.staffID,
			Email:    email(e.fname, e.lname),
			Password: string(hash),
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cfg := config.Load("")

	zlog, err := logger.New("seed")
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer zlog.Sync()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		zlog.Fatal("Database connection failed", zap.Error(err))
	}

	if err := seedRoles(db); err != nil {
		zlog.Fatal("Seeding roles failed", zap.Error(err))
	}
	if err := seedEmployees(db); err != nil {
		zlog.Fatal("Seeding employees failed", zap.Error(err))
	}
	if err := seedUsers(db); err != nil {
		zlog.Fatal("Seeding users failed", zap.Error(err))
	}

	zlog.Info("Seed data in place",
		zap.Int("employees", len(employees())),
		zap.String("password", seedPassword))
}
