package engine

import (
	"time"

	"pontualhq.com/pontual/model"
)

// DayInput is everything a single classification pass needs. EvalAt is the
// evaluation instant, injected so the pass stays deterministic.
type DayInput struct {
	Shift            *Shift
	WorkedMinutes    int
	EventCount       int
	Date             time.Time
	ToleranceMinutes int
	LunchMinutes     int
	RestDay          time.Weekday
	EvalAt           time.Time
}

// DayResult is the outcome of one classification pass. Persisted as-is into
// a DailyBalance row.
type DayResult struct {
	ExpectedMinutes        int
	WorkedMinutes          int
	BalanceMinutes         int
	OvertimeMinutes        int
	OvertimePremiumMinutes int
	Status                 string
}

// ClassifyDay derives expected minutes, the signed balance, the overtime
// split and the day status from a resolved shift and the aggregated worked
// minutes. It is a pure function: identical inputs always yield identical
// results, which is what makes recomputes idempotent.
//
// The tolerance clamp is a compliance rule, not display rounding: a balance
// whose absolute value is within the tolerance is exactly zero, producing
// neither overtime nor debit.
func ClassifyDay(in DayInput) DayResult {
	res := DayResult{WorkedMinutes: in.WorkedMinutes}

	if in.Shift == nil {
		if in.WorkedMinutes == 0 {
			res.Status = model.StatusDayOff
			return finishIncomplete(res, in.EventCount)
		}
		// Any work on a scheduled rest day is premium rate, regardless of
		// weekday.
		res.BalanceMinutes = in.WorkedMinutes
		res.OvertimePremiumMinutes = in.WorkedMinutes
		res.Status = model.StatusOvertimeDayOff
		return finishIncomplete(res, in.EventCount)
	}

	expected := in.Shift.SpanMinutes() - in.LunchMinutes
	if expected < 0 {
		expected = 0
	}
	res.ExpectedMinutes = expected

	if in.EventCount == 0 && in.WorkedMinutes == 0 {
		if dateBefore(in.Date, in.EvalAt) {
			res.BalanceMinutes = -expected
			res.Status = model.StatusAbsent
		} else {
			res.Status = model.StatusPending
		}
		return res
	}

	balance := in.WorkedMinutes - expected
	if abs(balance) <= in.ToleranceMinutes {
		balance = 0
	}
	res.BalanceMinutes = balance

	switch {
	case balance > 0:
		if in.Date.Weekday() == in.RestDay {
			res.OvertimePremiumMinutes = balance
		} else {
			res.OvertimeMinutes = balance
		}
		res.Status = model.StatusOK
	case balance < 0:
		res.Status = model.StatusDebit
	default:
		res.Status = model.StatusOK
	}

	return finishIncomplete(res, in.EventCount)
}

// finishIncomplete forces INCOMPLETE on an odd punch count. The arithmetic
// results are kept; only the status is overridden, as a data-quality signal
// distinct from DEBIT.
func finishIncomplete(res DayResult, eventCount int) DayResult {
	if eventCount%2 == 1 {
		res.Status = model.StatusIncomplete
	}
	return res
}

func dateBefore(a, b time.Time) bool {
	ay, am, ad := a.Year(), a.Month(), a.Day()
	by, bm, bd := b.Year(), b.Month(), b.Day()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
