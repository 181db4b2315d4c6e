package model

// Employee is the staff directory entry. ReportingManager is a nullable
// self-reference; the approval chain for WFH requests is derived from it.
type Employee struct {
	StaffID          int64  `gorm:"primaryKey;autoIncrement" json:"staff_id"`
	StaffFName       string `gorm:"type:varchar(50);not null" json:"staff_fname"`
	StaffLName       string `gorm:"type:varchar(50);not null" json:"staff_lname"`
	Dept             string `gorm:"type:varchar(50);not null" json:"dept"`
	Position         string `gorm:"type:varchar(50);not null" json:"position"`
	Country          string `gorm:"type:varchar(50);not null" json:"country"`
	Email            string `gorm:"type:varchar(50);uniqueIndex;not null" json:"email"`
	ReportingManager *int64 `gorm:"index" json:"reporting_manager"`
	Role             int64  `gorm:"not null" json:"role"`

	Manager *Employee `gorm:"foreignKey:ReportingManager;references:StaffID" json:"-"`
	RoleRef *Role     `gorm:"foreignKey:Role;references:Role" json:"-"`
}

func (Employee) TableName() string { return "employee" }

// DisplayName is the name used in notification message templates.
func (e *Employee) DisplayName() string {
	return e.StaffFName + " " + e.StaffLName
}
