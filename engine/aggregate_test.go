package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pontualhq.com/pontual/model"
)

func punch(kind string, hour, min int) model.ClockEvent {
	return model.ClockEvent{
		Kind:      kind,
		Timestamp: time.Date(2025, 12, 22, hour, min, 0, 0, time.UTC),
	}
}

func TestWorkedMinutes(t *testing.T) {
	endOfDay := time.Date(2025, 12, 22, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		events []model.ClockEvent
		evalAt time.Time
		want   int
	}{
		{
			name: "two sessions",
			events: []model.ClockEvent{
				punch(model.KindSessionStart, 8, 0),
				punch(model.KindSessionEnd, 12, 0),
				punch(model.KindSessionStart, 13, 0),
				punch(model.KindSessionEnd, 17, 0),
			},
			evalAt: endOfDay,
			want:   480,
		},
		{
			name: "break punches pair like sessions",
			events: []model.ClockEvent{
				punch(model.KindSessionStart, 8, 0),
				punch(model.KindBreakStart, 12, 0),
				punch(model.KindBreakEnd, 13, 0),
				punch(model.KindSessionEnd, 17, 0),
			},
			evalAt: endOfDay,
			want:   480,
		},
		{
			name: "unsorted input",
			events: []model.ClockEvent{
				punch(model.KindSessionEnd, 17, 0),
				punch(model.KindSessionStart, 8, 0),
				punch(model.KindSessionEnd, 12, 0),
				punch(model.KindSessionStart, 13, 0),
			},
			evalAt: endOfDay,
			want:   480,
		},
		{
			name: "open session counted up to evaluation instant",
			events: []model.ClockEvent{
				punch(model.KindSessionStart, 8, 0),
			},
			evalAt: time.Date(2025, 12, 22, 10, 30, 0, 0, time.UTC),
			want:   150,
		},
		{
			name: "stale dangling punch from another day contributes nothing",
			events: []model.ClockEvent{
				punch(model.KindSessionStart, 8, 0),
			},
			evalAt: time.Date(2025, 12, 23, 10, 0, 0, 0, time.UTC),
			want:   0,
		},
		{
			name: "closed pair plus stale dangling start",
			events: []model.ClockEvent{
				punch(model.KindSessionStart, 8, 0),
				punch(model.KindSessionEnd, 12, 0),
				punch(model.KindSessionStart, 13, 0),
			},
			evalAt: time.Date(2025, 12, 23, 10, 0, 0, 0, time.UTC),
			want:   240,
		},
		{
			name: "end without open segment is ignored",
			events: []model.ClockEvent{
				punch(model.KindSessionEnd, 7, 0),
				punch(model.KindSessionStart, 8, 0),
				punch(model.KindSessionEnd, 12, 0),
			},
			evalAt: endOfDay,
			want:   240,
		},
		{
			name: "malformed event without timestamp is skipped",
			events: []model.ClockEvent{
				{Kind: model.KindSessionStart},
				punch(model.KindSessionStart, 8, 0),
				punch(model.KindSessionEnd, 12, 0),
			},
			evalAt: endOfDay,
			want:   240,
		},
		{
			name:   "no events",
			events: nil,
			evalAt: endOfDay,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkedMinutes(tt.events, tt.evalAt))
		})
	}
}
