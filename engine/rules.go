package engine

import "time"

// Labour-compliance constants. Tolerance and lunch can be overridden per
// schedule; the leeway and rest day are fixed for the single jurisdiction
// this engine models.
const (
	DefaultToleranceMinutes = 10
	DefaultLunchMinutes     = 60
	EarlyLeaveLeewayMinutes = 5
)

// Rules carries the classification knobs that are not part of an individual
// schedule.
type Rules struct {
	ToleranceMinutes int
	LunchMinutes     int
	LeewayMinutes    int
	RestDay          time.Weekday
}

func DefaultRules() Rules {
	return Rules{
		ToleranceMinutes: DefaultToleranceMinutes,
		LunchMinutes:     DefaultLunchMinutes,
		LeewayMinutes:    EarlyLeaveLeewayMinutes,
		RestDay:          time.Sunday,
	}
}

// effectiveTolerance prefers the schedule's own tolerance when present.
func (r Rules) effectiveTolerance(sched *Schedule) int {
	if sched != nil && sched.ToleranceMinutes > 0 {
		return sched.ToleranceMinutes
	}
	return r.ToleranceMinutes
}

// effectiveLunch prefers the schedule's lunch policy when present.
func (r Rules) effectiveLunch(sched *Schedule) int {
	if sched != nil && sched.Lunch.Minutes > 0 {
		return sched.Lunch.Minutes
	}
	return r.LunchMinutes
}
