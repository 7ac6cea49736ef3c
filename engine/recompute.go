package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pontualhq.com/pontual/model"
)

// EventSource lists the recorded clock events for an employee, half-open on
// the upper bound: [from, to).
type EventSource interface {
	ListEvents(ctx context.Context, employeeID int32, from, to time.Time) ([]model.ClockEvent, error)
}

// ScheduleSource resolves the employee's validated schedule. Implementations
// return ErrMissingSchedule when none is configured.
type ScheduleSource interface {
	GetSchedule(ctx context.Context, employeeID int32) (*Schedule, error)
}

// BalanceStore persists classification results keyed on (employee, date).
// Last-write-wins is acceptable because recomputes are idempotent.
type BalanceStore interface {
	UpsertDailyBalance(ctx context.Context, balance *model.DailyBalance) error
	SumBalanceMinutes(ctx context.Context, employeeID int32) (int64, error)
}

type TimeBankStore interface {
	GetTimeBank(ctx context.Context, employeeID int32) (*model.TimeBank, error)
	UpsertTimeBank(ctx context.Context, bank *model.TimeBank) error
}

// PeriodResult carries the partial results of a period recompute: every
// balance that was persisted plus one failure per date that was skipped.
type PeriodResult struct {
	Balances []model.DailyBalance `json:"balances"`
	Failures []DayFailure         `json:"failures"`
	TimeBank *model.TimeBank      `json:"timeBank,omitempty"`
}

// Recomputer drives single-day and period recomputation and keeps the time
// bank consistent by full resync. It owns no goroutines; callers invoke it
// synchronously per request or from the nightly batch.
type Recomputer struct {
	events    EventSource
	schedules ScheduleSource
	balances  BalanceStore
	bank      TimeBankStore
	rules     Rules
	now       func() time.Time
	locks     *EmployeeLocks
	logger    *slog.Logger
}

func NewRecomputer(events EventSource, schedules ScheduleSource, balances BalanceStore, bank TimeBankStore, opts ...RecomputerOption) *Recomputer {
	r := &Recomputer{
		events:    events,
		schedules: schedules,
		balances:  balances,
		bank:      bank,
		rules:     DefaultRules(),
		now:       time.Now,
		locks:     NewEmployeeLocks(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type RecomputerOption func(*Recomputer)

func WithRules(rules Rules) RecomputerOption {
	return func(r *Recomputer) { r.rules = rules }
}

// WithClock injects the evaluation instant, keeping live open-segment
// measurement testable.
func WithClock(now func() time.Time) RecomputerOption {
	return func(r *Recomputer) { r.now = now }
}

func WithLogger(logger *slog.Logger) RecomputerOption {
	return func(r *Recomputer) { r.logger = logger }
}

// RecomputeDay rebuilds and upserts the daily balance for one employee and
// date. Safe to call repeatedly: unchanged inputs produce an identical row.
func (r *Recomputer) RecomputeDay(ctx context.Context, employeeID int32, date time.Time) (*model.DailyBalance, error) {
	release := r.locks.Acquire(employeeID)
	defer release()
	return r.recomputeDay(ctx, employeeID, date)
}

func (r *Recomputer) recomputeDay(ctx context.Context, employeeID int32, date time.Time) (*model.DailyBalance, error) {
	sched, err := r.schedules.GetSchedule(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, ErrMissingSchedule) {
			return nil, fmt.Errorf("fetch schedule: %w", err)
		}
		sched = nil
	}

	dayStart := atMidnight(date)
	events, err := r.events.ListEvents(ctx, employeeID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	valid := events[:0:0]
	for _, ev := range events {
		if ev.Timestamp.IsZero() {
			r.logger.Warn("skipping malformed clock event",
				slog.String("eventId", ev.ID),
				slog.Int("employeeId", int(employeeID)))
			continue
		}
		valid = append(valid, ev)
	}

	now := r.now()
	worked := WorkedMinutes(valid, now)

	var shift *Shift
	if sched != nil {
		if sh, ok := sched.ResolveShift(dayStart); ok {
			shift = &sh
		}
	}

	res := ClassifyDay(DayInput{
		Shift:            shift,
		WorkedMinutes:    worked,
		EventCount:       len(valid),
		Date:             dayStart,
		ToleranceMinutes: r.rules.effectiveTolerance(sched),
		LunchMinutes:     r.rules.effectiveLunch(sched),
		RestDay:          r.rules.RestDay,
		EvalAt:           now,
	})

	balance := &model.DailyBalance{
		EmployeeID:             employeeID,
		Date:                   dayStart,
		ExpectedMinutes:        int32(res.ExpectedMinutes),
		WorkedMinutes:          int32(res.WorkedMinutes),
		BalanceMinutes:         int32(res.BalanceMinutes),
		OvertimeMinutes:        int32(res.OvertimeMinutes),
		OvertimePremiumMinutes: int32(res.OvertimePremiumMinutes),
		Status:                 res.Status,
	}

	if err := r.balances.UpsertDailyBalance(ctx, balance); err != nil {
		return nil, fmt.Errorf("persist daily balance: %w", err)
	}
	return balance, nil
}

// RecomputePeriod recomputes every date in [start, end] inclusive. A failed
// date is recorded and skipped, never aborting the batch. After the loop the
// time bank is resynced as a full re-sum of the persisted balances.
func (r *Recomputer) RecomputePeriod(ctx context.Context, employeeID int32, start, end time.Time) (*PeriodResult, error) {
	release := r.locks.Acquire(employeeID)
	defer release()

	result := &PeriodResult{}
	for d := atMidnight(start); !d.After(atMidnight(end)); d = d.AddDate(0, 0, 1) {
		balance, err := r.recomputeDay(ctx, employeeID, d)
		if err != nil {
			r.logger.Error("day recompute failed",
				slog.Int("employeeId", int(employeeID)),
				slog.String("date", d.Format("2006-01-02")),
				slog.Any("error", err))
			result.Failures = append(result.Failures, DayFailure{Date: d, Err: err})
			continue
		}
		result.Balances = append(result.Balances, *balance)
	}

	bank, err := r.resyncTimeBank(ctx, employeeID)
	if err != nil {
		return result, fmt.Errorf("resync time bank: %w", err)
	}
	result.TimeBank = bank
	return result, nil
}

// ResyncTimeBank re-sums all persisted daily balances for the employee and
// overwrites the time bank with the result. Never incremental, so repeated
// or partial recomputes cannot double-count.
func (r *Recomputer) ResyncTimeBank(ctx context.Context, employeeID int32) (*model.TimeBank, error) {
	release := r.locks.Acquire(employeeID)
	defer release()
	return r.resyncTimeBank(ctx, employeeID)
}

func (r *Recomputer) resyncTimeBank(ctx context.Context, employeeID int32) (*model.TimeBank, error) {
	sum, err := r.balances.SumBalanceMinutes(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("sum balances: %w", err)
	}

	prev, err := r.bank.GetTimeBank(ctx, employeeID)
	if err == nil && prev != nil && int64(prev.BalanceMinutes) != sum {
		// Diagnostic only: the fresh sum always wins.
		r.logger.Warn("time bank drift detected",
			slog.Int("employeeId", int(employeeID)),
			slog.Int("stored", int(prev.BalanceMinutes)),
			slog.Int64("resynced", sum))
	}

	bank := &model.TimeBank{
		EmployeeID:     employeeID,
		BalanceMinutes: int32(sum),
		RecalculatedAt: r.now(),
	}
	if err := r.bank.UpsertTimeBank(ctx, bank); err != nil {
		return nil, fmt.Errorf("persist time bank: %w", err)
	}
	return bank, nil
}

// AnnotateEvents fetches an employee's punches for a date range and runs the
// anomaly detector over them. Read-only; requires no persisted balances.
func (r *Recomputer) AnnotateEvents(ctx context.Context, employeeID int32, from, to time.Time) ([]AnnotatedEvent, error) {
	sched, err := r.schedules.GetSchedule(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, ErrMissingSchedule) {
			return nil, fmt.Errorf("fetch schedule: %w", err)
		}
		sched = nil
	}

	events, err := r.events.ListEvents(ctx, employeeID, atMidnight(from), atMidnight(to).AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	return AnnotateAnomalies(sched, events, r.rules), nil
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
