package model

import "time"

// ScheduleRow is the stored shape of an employee work schedule, owned by the
// employee management screens. The engine never reads this row directly; the
// schedule store validates it into an engine.Schedule at the boundary.
type ScheduleRow struct {
	ID         int32 `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID int32 `gorm:"column:employee_id;not null;uniqueIndex" json:"employeeId"`

	// Comma separated weekday numbers, Sunday = 0. e.g. "1,2,3,4,5"
	Weekdays string `gorm:"column:weekdays;type:varchar(20);not null" json:"weekdays"`

	// First shift is the one the engine resolves; additional shifts are
	// stored but ignored (single-shift limitation).
	Shift1Start string `gorm:"column:shift1_start;type:varchar(5);not null" json:"shift1Start"`
	Shift1End   string `gorm:"column:shift1_end;type:varchar(5);not null" json:"shift1End"`
	Shift2Start string `gorm:"column:shift2_start;type:varchar(5)" json:"shift2Start"`
	Shift2End   string `gorm:"column:shift2_end;type:varchar(5)" json:"shift2End"`

	ToleranceMinutes int32 `gorm:"column:tolerance_minutes;not null;default:10" json:"toleranceMinutes"`

	// "fixed" deducts LunchMinutes inside a fixed window, "variable" deducts
	// the same duration wherever the break is taken. Both deduct LunchMinutes.
	LunchPolicy  string `gorm:"column:lunch_policy;type:varchar(10);not null;default:'variable'" json:"lunchPolicy"`
	LunchMinutes int32  `gorm:"column:lunch_minutes;not null;default:60" json:"lunchMinutes"`

	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"-"`
}

func (ScheduleRow) TableName() string {
	return "work_schedules"
}
