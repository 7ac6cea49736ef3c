package model

import "time"

// Daily balance statuses, re-derived from scratch on every recompute.
const (
	StatusOK             = "OK"
	StatusDebit          = "DEBIT"
	StatusIncomplete     = "INCOMPLETE"
	StatusAbsent         = "ABSENT"
	StatusDayOff         = "DAY_OFF"
	StatusOvertimeDayOff = "OVERTIME_DAY_OFF"
	StatusPending        = "PENDING"
)

// DailyBalance is the persisted result of one classification pass for one
// employee on one calendar date. Only the recompute orchestrator writes it.
type DailyBalance struct {
	ID         int32     `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID int32     `gorm:"column:employee_id;not null;uniqueIndex:idx_daily_balances_employee_date" json:"employeeId"`
	Date       time.Time `gorm:"column:date;type:date;not null;uniqueIndex:idx_daily_balances_employee_date" json:"date"`

	ExpectedMinutes        int32  `gorm:"column:expected_minutes;not null" json:"expectedMinutes"`
	WorkedMinutes          int32  `gorm:"column:worked_minutes;not null" json:"workedMinutes"`
	BalanceMinutes         int32  `gorm:"column:balance_minutes;not null" json:"balanceMinutes"`
	OvertimeMinutes        int32  `gorm:"column:overtime_minutes;not null" json:"overtimeMinutes"`
	OvertimePremiumMinutes int32  `gorm:"column:overtime_premium_minutes;not null" json:"overtimePremiumMinutes"`
	Status                 string `gorm:"column:status;type:varchar(20);not null" json:"status"`

	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"-"`
}

func (DailyBalance) TableName() string {
	return "daily_balances"
}
