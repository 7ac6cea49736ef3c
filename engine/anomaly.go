package engine

import (
	"fmt"
	"time"

	"pontualhq.com/pontual/model"
)

type AnomalyLevel string

const (
	AnomalyWarning  AnomalyLevel = "WARNING"
	AnomalyCritical AnomalyLevel = "CRITICAL"
)

// Anomaly is a transient flag attached to a single clock event at analysis
// time. It is never persisted and has no lifecycle of its own.
type Anomaly struct {
	Level   AnomalyLevel `json:"level"`
	Message string       `json:"message"`
	Minutes int          `json:"minutes"`
}

// AnnotatedEvent pairs a clock event with at most one detected anomaly for
// the monitoring views.
type AnnotatedEvent struct {
	Event   model.ClockEvent `json:"event"`
	Anomaly *Anomaly         `json:"anomaly,omitempty"`
}

// DetectAnomaly inspects a single punch against the resolved shift and
// returns zero or one anomaly. It never consults persisted daily balances,
// so it is safe to run over a live, unpersisted event stream.
//
// A nil schedule skips every schedule-based check; only the mocked-location
// check still applies.
func DetectAnomaly(sched *Schedule, ev model.ClockEvent, rules Rules) *Anomaly {
	if ev.MockedLocation {
		return &Anomaly{
			Level:   AnomalyCritical,
			Message: "punch reported a mocked GPS location",
		}
	}
	if sched == nil || ev.Timestamp.IsZero() {
		return nil
	}

	shift, working := sched.ResolveShift(ev.Timestamp)
	if !working {
		if sched.BelongsToPreviousShift(ev) {
			// Tail of yesterday's overnight shift, not rest-day work.
			prevShift, ok := sched.ResolveShift(ev.Timestamp.AddDate(0, 0, -1))
			if !ok {
				return nil
			}
			return checkDeparture(prevShift, ev.Timestamp, rules)
		}
		return &Anomaly{
			Level:   AnomalyCritical,
			Message: "clocked in on a scheduled rest day",
		}
	}

	tolerance := rules.effectiveTolerance(sched)

	switch ev.Kind {
	case model.KindSessionStart:
		return checkArrival(shift, ev.Timestamp, tolerance)
	case model.KindSessionEnd:
		return checkDeparture(shift, ev.Timestamp, rules)
	}

	// Break punches are paired in duration math but carry no
	// schedule-adherence meaning of their own.
	return nil
}

func checkArrival(shift Shift, at time.Time, toleranceMinutes int) *Anomaly {
	actual := int(MinuteOfDay(at))
	if shift.Overnight() && actual < int(shift.End) {
		// Early-morning arrival on a midnight-wrapping shift sits in the
		// rolled-forward frame.
		actual += minutesPerDay
	}

	late := actual - int(shift.Start)
	if late > toleranceMinutes {
		return &Anomaly{
			Level:   AnomalyCritical,
			Message: fmt.Sprintf("arrived %d minutes after the %s shift start", late, shift.Start),
			Minutes: late,
		}
	}
	return nil
}

func checkDeparture(shift Shift, at time.Time, rules Rules) *Anomaly {
	actual := int(MinuteOfDay(at))
	end := int(shift.End)
	if shift.Overnight() {
		// Roll both sides of the comparison into the same frame.
		end += minutesPerDay
		if actual < int(shift.Start) {
			actual += minutesPerDay
		}
	}

	early := end - actual
	if early > rules.LeewayMinutes {
		return &Anomaly{
			Level:   AnomalyWarning,
			Message: fmt.Sprintf("left %d minutes before the %s shift end", early, shift.End),
			Minutes: early,
		}
	}
	return nil
}

// AnnotateAnomalies runs DetectAnomaly over a batch of events for the live
// dashboards. Read-only and side-effect free.
func AnnotateAnomalies(sched *Schedule, events []model.ClockEvent, rules Rules) []AnnotatedEvent {
	out := make([]AnnotatedEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, AnnotatedEvent{
			Event:   ev,
			Anomaly: DetectAnomaly(sched, ev, rules),
		})
	}
	return out
}
