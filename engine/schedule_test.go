package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pontualhq.com/pontual/model"
)

func weekdaySchedule() *Schedule {
	s := &Schedule{
		Shifts:           []Shift{{Start: 8 * 60, End: 17 * 60}},
		ToleranceMinutes: 10,
		Lunch:            LunchPolicy{Minutes: 60},
	}
	for d := time.Monday; d <= time.Friday; d++ {
		s.WorkingDays[d] = true
	}
	return s
}

func nightSchedule() *Schedule {
	s := weekdaySchedule()
	s.Shifts = []Shift{{Start: 22 * 60, End: 6 * 60}}
	return s
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{in: "08:00", want: 480},
		{in: "22:30", want: 1350},
		{in: "00:00", want: 0},
		{in: "08:00:30", want: 480},
		{in: "25:00", wantErr: true},
		{in: "nope", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClockTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShiftSpanMinutes(t *testing.T) {
	assert.Equal(t, 540, Shift{Start: 8 * 60, End: 17 * 60}.SpanMinutes())
	// 22:00 -> 06:00 wraps midnight
	night := Shift{Start: 22 * 60, End: 6 * 60}
	assert.True(t, night.Overnight())
	assert.Equal(t, 480, night.SpanMinutes())
}

func TestResolveShift(t *testing.T) {
	sched := weekdaySchedule()

	monday := time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)
	shift, ok := sched.ResolveShift(monday)
	require.True(t, ok)
	assert.Equal(t, ClockTime(480), shift.Start)

	sunday := time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC)
	_, ok = sched.ResolveShift(sunday)
	assert.False(t, ok)

	// only the first shift is ever resolved
	sched.Shifts = append(sched.Shifts, Shift{Start: 18 * 60, End: 22 * 60})
	shift, ok = sched.ResolveShift(monday)
	require.True(t, ok)
	assert.Equal(t, ClockTime(480), shift.Start)
}

func TestBelongsToPreviousShift(t *testing.T) {
	night := nightSchedule()

	// Saturday 05:50 exit after a working Friday night shift
	saturdayExit := model.ClockEvent{
		Kind:      model.KindSessionEnd,
		Timestamp: time.Date(2025, 12, 27, 5, 50, 0, 0, time.UTC),
	}
	assert.True(t, night.BelongsToPreviousShift(saturdayExit))

	// same punch as a session start is genuine rest-day work
	saturdayStart := saturdayExit
	saturdayStart.Kind = model.KindSessionStart
	assert.False(t, night.BelongsToPreviousShift(saturdayStart))

	// an afternoon exit is not attributable to yesterday
	afternoon := saturdayExit
	afternoon.Timestamp = time.Date(2025, 12, 27, 14, 0, 0, 0, time.UTC)
	assert.False(t, night.BelongsToPreviousShift(afternoon))

	// previous day not a working day: Sunday 05:50 after Saturday
	sundayExit := saturdayExit
	sundayExit.Timestamp = time.Date(2025, 12, 28, 5, 50, 0, 0, time.UTC)
	assert.False(t, night.BelongsToPreviousShift(sundayExit))

	// previous day's shift does not wrap midnight
	day := weekdaySchedule()
	assert.False(t, day.BelongsToPreviousShift(saturdayExit))
}
