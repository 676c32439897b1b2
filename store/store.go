// Package store is the single owner of mutable state: orders, the notification
// feed and the daily sales aggregate. Every mutation runs under one mutex and
// inside one GORM transaction, so concurrent station actions on the same order
// never interleave. Reads take the shared lock and serve a consistent snapshot.
package store

import (
	"sync"

	"gorm.io/gorm"

	"github.com/waykaburger/station-app/models"
)

type Store struct {
	db  *gorm.DB
	mu  sync.RWMutex
	seq *Sequence
}

// New builds a store whose order-number sequence continues after the highest
// number already persisted.
func New(db *gorm.DB) *Store {
	var max int
	db.Model(&models.Order{}).Select("COALESCE(MAX(order_number), 0)").Scan(&max)
	return NewWithSequence(db, NewSequence(max+1))
}

// NewWithSequence injects the order-number sequence, mainly so tests can pin
// deterministic numbers.
func NewWithSequence(db *gorm.DB, seq *Sequence) *Store {
	return &Store{db: db, seq: seq}
}

// DB exposes the underlying connection for migrations and seeds.
func (s *Store) DB() *gorm.DB {
	return s.db
}
