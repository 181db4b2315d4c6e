package model

import "time"

// Notification is a user-facing message generated as a side effect of a
// work-request status change. Its lifecycle is independent of the request:
// it can be read or deleted without touching the request itself.
type Notification struct {
	NotificationID   int64     `gorm:"primaryKey;autoIncrement" json:"notification_id"`
	SenderID         int64     `gorm:"not null;index" json:"sender_id"`
	ReceiverID       int64     `gorm:"not null;index" json:"receiver_id"`
	RequestID        int64     `gorm:"not null;index" json:"request_id"`
	Message          string    `gorm:"type:text;not null" json:"message"`
	NotificationDate time.Time `gorm:"autoCreateTime" json:"notification_date"`
	IsRead           bool      `gorm:"not null;default:false" json:"is_read"`

	Sender   *Employee `gorm:"foreignKey:SenderID;references:StaffID" json:"-"`
	Receiver *Employee `gorm:"foreignKey:ReceiverID;references:StaffID" json:"-"`
}

func (Notification) TableName() string { return "notification" }
