package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pontualhq.com/pontual/model"
)

func TestDetectAnomalyArrival(t *testing.T) {
	sched := weekdaySchedule() // 08:00-17:00, tolerance 10
	rules := DefaultRules()

	tests := []struct {
		name    string
		at      time.Time
		want    *AnomalyLevel
		minutes int
	}{
		{
			name: "on time",
			at:   time.Date(2025, 12, 22, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "late within tolerance",
			at:   time.Date(2025, 12, 22, 8, 10, 0, 0, time.UTC),
		},
		{
			name:    "late past tolerance",
			at:      time.Date(2025, 12, 22, 8, 11, 0, 0, time.UTC),
			want:    levelPtr(AnomalyCritical),
			minutes: 11,
		},
		{
			name: "early arrival is not flagged",
			at:   time.Date(2025, 12, 22, 7, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectAnomaly(sched, model.ClockEvent{
				Kind:      model.KindSessionStart,
				Timestamp: tt.at,
			}, rules)

			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, got.Level)
			assert.Equal(t, tt.minutes, got.Minutes)
		})
	}
}

func TestDetectAnomalyDeparture(t *testing.T) {
	sched := weekdaySchedule()
	rules := DefaultRules()

	// within the 5 minute leeway
	got := DetectAnomaly(sched, model.ClockEvent{
		Kind:      model.KindSessionEnd,
		Timestamp: time.Date(2025, 12, 22, 16, 55, 0, 0, time.UTC),
	}, rules)
	assert.Nil(t, got)

	// past the leeway
	got = DetectAnomaly(sched, model.ClockEvent{
		Kind:      model.KindSessionEnd,
		Timestamp: time.Date(2025, 12, 22, 16, 30, 0, 0, time.UTC),
	}, rules)
	require.NotNil(t, got)
	assert.Equal(t, AnomalyWarning, got.Level)
	assert.Equal(t, 30, got.Minutes)

	// leaving late is not flagged
	got = DetectAnomaly(sched, model.ClockEvent{
		Kind:      model.KindSessionEnd,
		Timestamp: time.Date(2025, 12, 22, 18, 0, 0, 0, time.UTC),
	}, rules)
	assert.Nil(t, got)
}

func TestDetectAnomalyOvernight(t *testing.T) {
	sched := nightSchedule() // 22:00-06:00, Mon-Fri
	rules := DefaultRules()

	// Friday night shift, exit Saturday 05:56: attributed to Friday, and
	// within leeway of the 06:00 end, so no rest-day critical and no warning
	got := DetectAnomaly(sched, model.ClockEvent{
		Kind:      model.KindSessionEnd,
		Timestamp: time.Date(2025, 12, 27, 5, 56, 0, 0, time.UTC),
	}, rules)
	assert.Nil(t, got)

	// exit Saturday 05:50 is still attributed to Friday but past the leeway
	got = DetectAnomaly(sched, model.ClockEvent{
		Kind:      model.KindSessionEnd,
		Timestamp: time.Date(2025, 12, 27, 5, 50, 0, 0, time.UTC),
	}, rules)
	require.NotNil(t, got)
	assert.Equal(t, AnomalyWarning, got.Level)
	assert.Equal(t, 10, got.Minutes)

	// exit Saturday 04:00 is an early departure off Friday's shift
	got = DetectAnomaly(sched, model.ClockEvent{
		Kind:      model.KindSessionEnd,
		Timestamp: time.Date(2025, 12, 27, 4, 0, 0, 0, time.UTC),
	}, rules)
	require.NotNil(t, got)
	assert.Equal(t, AnomalyWarning, got.Level)
	assert.Equal(t, 120, got.Minutes)

	// arriving after midnight on the shift's own working day is late
	got = DetectAnomaly(sched, model.ClockEvent{
		Kind:      model.KindSessionStart,
		Timestamp: time.Date(2025, 12, 23, 0, 30, 0, 0, time.UTC),
	}, rules)
	require.NotNil(t, got)
	assert.Equal(t, AnomalyCritical, got.Level)
	assert.Equal(t, 150, got.Minutes)

	// same-evening departure before the end, rolled frame
	got = DetectAnomaly(sched, model.ClockEvent{
		Kind:      model.KindSessionEnd,
		Timestamp: time.Date(2025, 12, 22, 23, 0, 0, 0, time.UTC),
	}, rules)
	require.NotNil(t, got)
	assert.Equal(t, AnomalyWarning, got.Level)
	assert.Equal(t, 420, got.Minutes)
}

func TestDetectAnomalyRestDay(t *testing.T) {
	sched := weekdaySchedule()
	rules := DefaultRules()

	got := DetectAnomaly(sched, model.ClockEvent{
		Kind:      model.KindSessionStart,
		Timestamp: time.Date(2025, 12, 21, 10, 0, 0, 0, time.UTC), // Sunday
	}, rules)
	require.NotNil(t, got)
	assert.Equal(t, AnomalyCritical, got.Level)
}

func TestDetectAnomalyMockedLocation(t *testing.T) {
	got := DetectAnomaly(nil, model.ClockEvent{
		Kind:           model.KindSessionStart,
		Timestamp:      time.Date(2025, 12, 22, 8, 0, 0, 0, time.UTC),
		MockedLocation: true,
	}, DefaultRules())
	require.NotNil(t, got)
	assert.Equal(t, AnomalyCritical, got.Level)
}

func TestDetectAnomalyNoSchedule(t *testing.T) {
	got := DetectAnomaly(nil, model.ClockEvent{
		Kind:      model.KindSessionStart,
		Timestamp: time.Date(2025, 12, 22, 12, 0, 0, 0, time.UTC),
	}, DefaultRules())
	assert.Nil(t, got)
}

func TestAnnotateAnomalies(t *testing.T) {
	sched := weekdaySchedule()
	events := []model.ClockEvent{
		{Kind: model.KindSessionStart, Timestamp: time.Date(2025, 12, 22, 8, 30, 0, 0, time.UTC)},
		{Kind: model.KindSessionEnd, Timestamp: time.Date(2025, 12, 22, 17, 0, 0, 0, time.UTC)},
	}

	annotated := AnnotateAnomalies(sched, events, DefaultRules())
	require.Len(t, annotated, 2)
	require.NotNil(t, annotated[0].Anomaly)
	assert.Equal(t, 30, annotated[0].Anomaly.Minutes)
	assert.Nil(t, annotated[1].Anomaly)
}

func levelPtr(l AnomalyLevel) *AnomalyLevel {
	return &l
}
