package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pontualhq.com/pontual/model"
)

// GetTimeBank returns nil without error when the employee has no bank row
// yet; the first resync creates it.
func (s *Store) GetTimeBank(ctx context.Context, employeeID int32) (*model.TimeBank, error) {
	var bank model.TimeBank
	err := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&bank).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch time bank: %w", err)
	}
	return &bank, nil
}

func (s *Store) UpsertTimeBank(ctx context.Context, bank *model.TimeBank) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"balance_minutes", "recalculated_at"}),
		}).
		Create(bank).Error
	if err != nil {
		return fmt.Errorf("upsert time bank: %w", err)
	}
	return nil
}
