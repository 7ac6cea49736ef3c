package model

import "time"

// Clock event kinds as recorded by the punch capture devices.
const (
	KindSessionStart = "SESSION_START"
	KindBreakStart   = "BREAK_START"
	KindBreakEnd     = "BREAK_END"
	KindSessionEnd   = "SESSION_END"
)

// ClockEvent is a single punch. Rows are immutable once recorded; the only
// field this service ever updates is Annotation.
type ClockEvent struct {
	ID         string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	EmployeeID int32     `gorm:"column:employee_id;not null;index:idx_clock_events_employee_ts" json:"employeeId"`
	Timestamp  time.Time `gorm:"column:timestamp;type:datetime;index:idx_clock_events_employee_ts" json:"timestamp"`
	Kind       string    `gorm:"column:kind;type:varchar(20);not null" json:"kind"`

	DeviceID       string   `gorm:"column:device_id;type:varchar(50)" json:"deviceId"`
	Latitude       *float64 `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude      *float64 `gorm:"column:longitude" json:"longitude,omitempty"`
	MockedLocation bool     `gorm:"column:mocked_location;not null;default:false" json:"mockedLocation"`

	Annotation string `gorm:"column:annotation;type:varchar(255)" json:"annotation"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"-"`
}

func (ClockEvent) TableName() string {
	return "clock_events"
}

// IsStartKind reports whether the event opens a working segment.
func (e ClockEvent) IsStartKind() bool {
	return e.Kind == KindSessionStart || e.Kind == KindBreakEnd
}

// IsEndKind reports whether the event closes a working segment.
func (e ClockEvent) IsEndKind() bool {
	return e.Kind == KindSessionEnd || e.Kind == KindBreakStart
}
