package model

import "time"

type Employee struct {
	EmployeeID int32  `gorm:"primaryKey;column:employee_id" json:"id"`
	Code       string `gorm:"column:code;type:varchar(20);not null" json:"code"`
	FirstName  string `gorm:"column:first_name;type:varchar(100)" json:"firstName"`
	Surname    string `gorm:"column:surname;type:varchar(100)" json:"surname"`
	Active     bool   `gorm:"column:active;not null;default:true" json:"active"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}
