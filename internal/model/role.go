package model

// Role is a lookup table for employee access levels (staff, manager, HR...)
type Role struct {
	Role            int64  `gorm:"primaryKey;autoIncrement" json:"role"`
	RoleName        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	RoleDescription string `gorm:"type:text" json:"role_description"`
}

func (Role) TableName() string { return "role" }
