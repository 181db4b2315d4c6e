package model

import "time"

// WFH request types
const (
	RequestTypeFullDay = "Full Day"
	RequestTypeAM      = "AM"
	RequestTypePM      = "PM"
)

// WFH request / schedule statuses. Pending and Approved are the "active"
// statuses that count towards the one-request-per-day rule; the rest are
// terminal.
const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
	StatusWithdrawn = "Withdrawn"
	StatusRevoked   = "Revoked"
)

// ValidStatus reports whether s is one of the six recognized statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusWithdrawn, StatusRevoked:
		return true
	}
	return false
}

// WorkRequest is a work-from-home request submitted by an employee and
// decided on by their reporting manager.
type WorkRequest struct {
	RequestID         int64      `gorm:"primaryKey;autoIncrement" json:"request_id"`
	StaffID           int64      `gorm:"not null;index" json:"staff_id"`
	RequestType       string     `gorm:"type:varchar(20);not null" json:"request_type"`
	RequestDate       time.Time  `gorm:"type:date;not null" json:"request_date"`
	Reason            string     `gorm:"type:text" json:"reason"`
	Status            string     `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	ApprovalManagerID *int64     `gorm:"index" json:"approval_manager_id"`
	DecisionDate      *time.Time `json:"decision_date"`
	Comments          string     `gorm:"type:text" json:"comments"`
	CreatedDate       time.Time  `gorm:"autoCreateTime" json:"created_date"`

	Staff           *Employee `gorm:"foreignKey:StaffID;references:StaffID" json:"-"`
	ApprovalManager *Employee `gorm:"foreignKey:ApprovalManagerID;references:StaffID" json:"-"`
}

func (WorkRequest) TableName() string { return "work_request" }

// Active reports whether the request still occupies its (staff, date) slot.
func (w *WorkRequest) Active() bool {
	return w.Status == StatusPending || w.Status == StatusApproved
}
