package model

import "time"

// AuditLog is the append-only trail of manager decisions on work requests.
type AuditLog struct {
	LogID       int64     `gorm:"primaryKey;autoIncrement" json:"log_id"`
	RequestID   int64     `gorm:"not null;index" json:"request_id"`
	ManagerID   int64     `gorm:"not null;index" json:"manager_id"`
	ActionTaken string    `gorm:"type:varchar(20);not null" json:"action_taken"`
	Timestamp   time.Time `gorm:"autoCreateTime" json:"timestamp"`
	Comments    string    `gorm:"type:text" json:"comments"`

	Request *WorkRequest `gorm:"foreignKey:RequestID;references:RequestID" json:"-"`
	Manager *Employee    `gorm:"foreignKey:ManagerID;references:StaffID" json:"-"`
}

func (AuditLog) TableName() string { return "audit" }
