package database

import (
	"log"

	"wfh-backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// activeRequestIndex guards the one-active-request-per-day rule at the store
// level so two concurrent submissions for the same slot cannot both commit.
const activeRequestIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_work_request_active_slot
ON work_request (staff_id, request_date)
WHERE status IN ('Pending', 'Approved')`

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.Role{},
		&model.Employee{},
		&model.User{},
		&model.WorkRequest{},
		&model.Schedule{},
		&model.Notification{},
		&model.AuditLog{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	if err := db.Exec(activeRequestIndex).Error; err != nil {
		log.Println("WARNING: Failed to create active request index:", err)
	}

	return db, nil
}
