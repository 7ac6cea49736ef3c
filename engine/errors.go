package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingSchedule is returned by schedule sources when an employee has no
// configured schedule. The orchestrator treats it as "no schedule" and falls
// back to worked-minutes-only accounting; it never fails a day on it.
var ErrMissingSchedule = errors.New("employee has no configured schedule")

// DayFailure records a single date that could not be recomputed during a
// period run. The run continues past it.
type DayFailure struct {
	Date time.Time `json:"date"`
	Err  error     `json:"-"`
}

func (f DayFailure) Error() string {
	return fmt.Sprintf("recompute %s: %v", f.Date.Format("2006-01-02"), f.Err)
}

func (f DayFailure) Unwrap() error {
	return f.Err
}
