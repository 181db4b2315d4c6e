package model

// User is the login account for an employee, 1:1 via StaffID.
type User struct {
	StaffID  int64  `gorm:"primaryKey" json:"staff_id"`
	Email    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash, never serialized

	Employee *Employee `gorm:"foreignKey:StaffID;references:StaffID" json:"-"`
}

func (User) TableName() string { return "user" }
