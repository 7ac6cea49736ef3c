package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"pontualhq.com/pontual/model"
)

// UpsertDailyBalance writes the balance row keyed on (employee, date),
// last-write-wins.
func (s *Store) UpsertDailyBalance(ctx context.Context, balance *model.DailyBalance) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"expected_minutes",
				"worked_minutes",
				"balance_minutes",
				"overtime_minutes",
				"overtime_premium_minutes",
				"status",
			}),
		}).
		Create(balance).Error
	if err != nil {
		return fmt.Errorf("upsert daily balance: %w", err)
	}
	return nil
}

// SumBalanceMinutes sums every persisted balance row for the employee. The
// time bank resync relies on this being a full re-sum, not a delta.
func (s *Store) SumBalanceMinutes(ctx context.Context, employeeID int32) (int64, error) {
	var sum *int64
	err := s.db.WithContext(ctx).
		Model(&model.DailyBalance{}).
		Where("employee_id = ?", employeeID).
		Select("SUM(balance_minutes)").
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("sum balance minutes: %w", err)
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

// ListDailyBalances returns the employee's persisted balances with date in
// [from, to] inclusive, ordered by date.
func (s *Store) ListDailyBalances(ctx context.Context, employeeID int32, from, to time.Time) ([]model.DailyBalance, error) {
	var balances []model.DailyBalance
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND date BETWEEN ? AND ?",
			employeeID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC").
		Find(&balances).Error
	if err != nil {
		return nil, fmt.Errorf("list daily balances: %w", err)
	}
	return balances, nil
}
