package engine

import (
	"fmt"
	"time"

	"pontualhq.com/pontual/model"
)

// ClockTime is a time of day in minutes since midnight.
type ClockTime int

const minutesPerDay = 24 * 60

// ParseClockTime parses "15:04" (optionally "15:04:05", seconds discarded).
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// MinuteOfDay returns t as a ClockTime in t's own location.
func MinuteOfDay(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

// Shift is a single scheduled work window. End numerically before Start
// signals an overnight shift and is interpreted with date rollover, never
// treated as invalid.
type Shift struct {
	Start ClockTime
	End   ClockTime
}

func (s Shift) Overnight() bool {
	return s.End < s.Start
}

// SpanMinutes is the shift length with overnight adjustment applied.
func (s Shift) SpanMinutes() int {
	end := int(s.End)
	if s.Overnight() {
		end += minutesPerDay
	}
	return end - int(s.Start)
}

// LunchPolicy describes how the lunch deduction is applied. Fixed means the
// break sits inside a fixed window; either way the same duration is deducted
// from the expected span.
type LunchPolicy struct {
	Fixed   bool
	Minutes int
}

// Schedule is the validated, explicit form of a stored work schedule. Built
// by the schedule store at the persistence boundary; the engine never parses
// the stored shape itself.
//
// Only the first shift is ever resolved. Additional shifts are accepted and
// ignored, matching the single-shift-per-day limitation of the classifier.
type Schedule struct {
	WorkingDays      [7]bool // indexed by time.Weekday
	Shifts           []Shift
	ToleranceMinutes int
	Lunch            LunchPolicy
}

// PrimaryShift returns the shift the engine resolves against.
func (s *Schedule) PrimaryShift() (Shift, bool) {
	if len(s.Shifts) == 0 {
		return Shift{}, false
	}
	return s.Shifts[0], true
}

func (s *Schedule) IsWorkingDay(date time.Time) bool {
	return s.WorkingDays[date.Weekday()]
}

// ResolveShift returns the applicable shift window for date, or false when
// the date is not a working day or the schedule carries no shift.
func (s *Schedule) ResolveShift(date time.Time) (Shift, bool) {
	if !s.IsWorkingDay(date) {
		return Shift{}, false
	}
	return s.PrimaryShift()
}

// BelongsToPreviousShift reports whether an end-of-session punch on a
// non-working day is really the tail of the previous day's overnight shift:
// the punch falls before noon and the previous calendar date is a working
// day whose shift wraps midnight. Suppresses rest-day false positives.
func (s *Schedule) BelongsToPreviousShift(ev model.ClockEvent) bool {
	if ev.Kind != model.KindSessionEnd {
		return false
	}
	if MinuteOfDay(ev.Timestamp) >= 12*60 {
		return false
	}
	prev := ev.Timestamp.AddDate(0, 0, -1)
	shift, ok := s.ResolveShift(prev)
	return ok && shift.Overnight()
}
