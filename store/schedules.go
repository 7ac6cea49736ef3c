package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"pontualhq.com/pontual/engine"
	"pontualhq.com/pontual/model"
)

// GetSchedule fetches the stored schedule row and validates it into the
// explicit engine shape. Validation happens here, at the boundary, never
// inside the engine. Returns engine.ErrMissingSchedule when the employee has
// no configured schedule.
func (s *Store) GetSchedule(ctx context.Context, employeeID int32) (*engine.Schedule, error) {
	var row model.ScheduleRow
	err := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, engine.ErrMissingSchedule
		}
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}
	return validateSchedule(&row)
}

func validateSchedule(row *model.ScheduleRow) (*engine.Schedule, error) {
	sched := &engine.Schedule{
		ToleranceMinutes: int(row.ToleranceMinutes),
		Lunch: engine.LunchPolicy{
			Fixed:   row.LunchPolicy == "fixed",
			Minutes: int(row.LunchMinutes),
		},
	}

	for _, part := range strings.Split(row.Weekdays, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, err := strconv.Atoi(part)
		if err != nil || day < 0 || day > 6 {
			return nil, fmt.Errorf("schedule %d: invalid weekday %q", row.ID, part)
		}
		sched.WorkingDays[day] = true
	}

	shifts := [][2]string{
		{row.Shift1Start, row.Shift1End},
		{row.Shift2Start, row.Shift2End},
	}
	for _, pair := range shifts {
		if pair[0] == "" || pair[1] == "" {
			continue
		}
		start, err := engine.ParseClockTime(pair[0])
		if err != nil {
			return nil, fmt.Errorf("schedule %d: %w", row.ID, err)
		}
		end, err := engine.ParseClockTime(pair[1])
		if err != nil {
			return nil, fmt.Errorf("schedule %d: %w", row.ID, err)
		}
		sched.Shifts = append(sched.Shifts, engine.Shift{Start: start, End: end})
	}

	if len(sched.Shifts) == 0 {
		return nil, fmt.Errorf("schedule %d: no shift configured", row.ID)
	}
	return sched, nil
}

// SaveSchedule upserts the stored row for an employee. Owned by the employee
// management screens; exposed here for the seed and mock tooling.
func (s *Store) SaveSchedule(ctx context.Context, row *model.ScheduleRow) error {
	var existing model.ScheduleRow
	err := s.db.WithContext(ctx).
		Where("employee_id = ?", row.EmployeeID).
		First(&existing).Error
	if err == nil {
		row.ID = existing.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("fetch existing schedule: %w", err)
	}
	if err := s.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	return nil
}
