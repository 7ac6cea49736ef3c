package store

import (
	"context"
	"fmt"

	"pontualhq.com/pontual/model"
)

// ListEmployees returns active employees for the monitoring views and the
// nightly batch.
func (s *Store) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("employee_id ASC").
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}
