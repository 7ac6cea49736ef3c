package store

import (
	"context"
	"fmt"
	"time"

	"pontualhq.com/pontual/model"
)

// ListEvents returns the employee's punches with timestamp in [from, to),
// ordered ascending.
func (s *Store) ListEvents(ctx context.Context, employeeID int32, from, to time.Time) ([]model.ClockEvent, error) {
	var events []model.ClockEvent
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND timestamp >= ? AND timestamp < ?", employeeID, from, to).
		Order("timestamp ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("list clock events: %w", err)
	}
	return events, nil
}

// CreateEvents inserts a batch of punches, chunked. Used by the CSV import
// backfill; live punches come from the capture devices, not this service.
func (s *Store) CreateEvents(ctx context.Context, events []model.ClockEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).CreateInBatches(events, 100).Error; err != nil {
		return fmt.Errorf("insert clock events: %w", err)
	}
	return nil
}

// AnnotateEvent sets the one mutable field on a recorded punch.
func (s *Store) AnnotateEvent(ctx context.Context, eventID string, annotation string) error {
	result := s.db.WithContext(ctx).
		Model(&model.ClockEvent{}).
		Where("id = ?", eventID).
		Update("annotation", annotation)
	if result.Error != nil {
		return fmt.Errorf("annotate clock event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("clock event %s not found", eventID)
	}
	return nil
}
