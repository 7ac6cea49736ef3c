// Package store implements the engine's persistence interfaces on gorm.
package store

import "gorm.io/gorm"

// Store bundles the gorm-backed implementations of the engine's event,
// schedule, balance and time-bank interfaces.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
