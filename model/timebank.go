package model

import "time"

// TimeBank holds the cumulative signed minute balance per employee. It is
// only ever written by a full resync over daily_balances, never adjusted
// incrementally.
type TimeBank struct {
	EmployeeID     int32     `gorm:"primaryKey;column:employee_id" json:"employeeId"`
	BalanceMinutes int32     `gorm:"column:balance_minutes;not null" json:"balanceMinutes"`
	RecalculatedAt time.Time `gorm:"column:recalculated_at;type:datetime;not null" json:"recalculatedAt"`
}

func (TimeBank) TableName() string {
	return "time_banks"
}
