package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pontualhq.com/pontual/engine"
	"pontualhq.com/pontual/model"
)

func TestValidateSchedule(t *testing.T) {
	row := &model.ScheduleRow{
		ID:               7,
		EmployeeID:       1,
		Weekdays:         "1,2,3,4,5",
		Shift1Start:      "08:00",
		Shift1End:        "17:00",
		ToleranceMinutes: 10,
		LunchPolicy:      "variable",
		LunchMinutes:     60,
	}

	sched, err := validateSchedule(row)
	require.NoError(t, err)

	assert.True(t, sched.WorkingDays[time.Monday])
	assert.True(t, sched.WorkingDays[time.Friday])
	assert.False(t, sched.WorkingDays[time.Sunday])
	require.Len(t, sched.Shifts, 1)
	assert.Equal(t, engine.ClockTime(480), sched.Shifts[0].Start)
	assert.Equal(t, engine.ClockTime(1020), sched.Shifts[0].End)
	assert.Equal(t, 10, sched.ToleranceMinutes)
	assert.Equal(t, 60, sched.Lunch.Minutes)
	assert.False(t, sched.Lunch.Fixed)
}

func TestValidateScheduleSecondShiftKept(t *testing.T) {
	row := &model.ScheduleRow{
		Weekdays:    "1,2,3",
		Shift1Start: "06:00",
		Shift1End:   "12:00",
		Shift2Start: "18:00",
		Shift2End:   "22:00",
	}

	sched, err := validateSchedule(row)
	require.NoError(t, err)
	require.Len(t, sched.Shifts, 2)

	// the engine still only resolves the first one
	shift, ok := sched.ResolveShift(time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, engine.ClockTime(360), shift.Start)
}

func TestValidateScheduleOvernight(t *testing.T) {
	row := &model.ScheduleRow{
		Weekdays:    "1,2,3,4,5",
		Shift1Start: "22:00",
		Shift1End:   "06:00",
	}

	sched, err := validateSchedule(row)
	require.NoError(t, err)
	require.Len(t, sched.Shifts, 1)
	// end before start is an overnight shift, not an error
	assert.True(t, sched.Shifts[0].Overnight())
}

func TestValidateScheduleRejects(t *testing.T) {
	tests := []struct {
		name string
		row  model.ScheduleRow
	}{
		{
			name: "invalid weekday",
			row:  model.ScheduleRow{Weekdays: "1,9", Shift1Start: "08:00", Shift1End: "17:00"},
		},
		{
			name: "garbage weekday",
			row:  model.ScheduleRow{Weekdays: "mon", Shift1Start: "08:00", Shift1End: "17:00"},
		},
		{
			name: "bad shift time",
			row:  model.ScheduleRow{Weekdays: "1", Shift1Start: "8am", Shift1End: "17:00"},
		},
		{
			name: "no shift configured",
			row:  model.ScheduleRow{Weekdays: "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateSchedule(&tt.row)
			assert.Error(t, err)
		})
	}
}
