package engine

import (
	"sort"
	"time"

	"pontualhq.com/pontual/model"
)

// WorkedMinutes reconstructs the total worked minutes for one employee on
// one date from its clock events.
//
// Events are sorted ascending by timestamp. A SESSION_START or BREAK_END
// opens (or re-opens) a working segment; a SESSION_END or BREAK_START closes
// it and adds its span to the total. A segment still open after the last
// event is counted up to evalAt, but only when its date is evalAt's date.
// A dangling punch from an earlier day contributes nothing and surfaces as
// INCOMPLETE in classification instead.
//
// Events without a usable timestamp are skipped.
func WorkedMinutes(events []model.ClockEvent, evalAt time.Time) int {
	sorted := make([]model.ClockEvent, 0, len(events))
	for _, ev := range events {
		if ev.Timestamp.IsZero() {
			continue
		}
		sorted = append(sorted, ev)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	total := 0
	var open *time.Time
	for i := range sorted {
		ev := sorted[i]
		switch {
		case ev.IsStartKind():
			t := ev.Timestamp
			open = &t
		case ev.IsEndKind():
			if open != nil {
				total += int(ev.Timestamp.Sub(*open).Minutes())
				open = nil
			}
		}
	}

	if open != nil && sameDate(*open, evalAt) && evalAt.After(*open) {
		total += int(evalAt.Sub(*open).Minutes())
	}

	return total
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Year(), a.Month(), a.Day()
	by, bm, bd := b.Year(), b.Month(), b.Day()
	return ay == by && am == bm && ad == bd
}
