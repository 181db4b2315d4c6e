package model

import "time"

// Schedule is the calendar entry derived from a WorkRequest. RequestID is
// unique: a work request maps to at most one schedule row, and a schedule
// is never created before its work request exists.
type Schedule struct {
	ScheduleID  int64     `gorm:"primaryKey;autoIncrement" json:"schedule_id"`
	StaffID     int64     `gorm:"not null;index" json:"staff_id"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	RequestID   int64     `gorm:"uniqueIndex;not null" json:"request_id"`
	ApprovedBy  *int64    `gorm:"index" json:"approved_by"`
	RequestType string    `gorm:"type:varchar(20);not null" json:"request_type"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedDate time.Time `gorm:"autoCreateTime" json:"created_date"`

	Staff       *Employee    `gorm:"foreignKey:StaffID;references:StaffID" json:"-"`
	WorkRequest *WorkRequest `gorm:"foreignKey:RequestID;references:RequestID" json:"-"`
}

func (Schedule) TableName() string { return "schedule" }
