package store

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/waykaburger/station-app/lifecycle"
	"github.com/waykaburger/station-app/models"
)

// OrderDraft is what the cashier submits. Items carry catalog snapshots, not
// references. InitialPayment: nil = paid in full, 0 = pay later, in between =
// split payment.
type OrderDraft struct {
	Items          []models.OrderItem
	PaymentMethod  string
	OrderType      string
	IsMemberSale   bool
	MemberName     *string
	Notes          string
	InitialPayment *float64
}

// ListOrders returns all orders newest-first with lines and payments loaded.
func (s *Store) ListOrders() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []models.Order
	err := s.db.Preload("Items").Preload("Payments").
		Order("created_at desc, id desc").
		Find(&orders).Error
	return orders, err
}

// GetOrder returns one order with lines and payments loaded.
func (s *Store) GetOrder(id uint) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadOrder(s.db, id)
}

func (s *Store) loadOrder(tx *gorm.DB, id uint) (*models.Order, error) {
	var o models.Order
	if err := tx.Preload("Items").Preload("Payments").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrder assigns the next order number, runs the draft through the
// lifecycle engine, then persists the order, its notifications and the daily
// sales fold in one transaction. The created notifications come back so the
// caller can push them to connected clients.
func (s *Store) CreateOrder(draft OrderDraft) (*models.Order, []models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := &models.Order{
		OrderNumber:   s.seq.Next(),
		Items:         draft.Items,
		PaymentMethod: draft.PaymentMethod,
		OrderType:     draft.OrderType,
		IsMemberSale:  draft.IsMemberSale,
		MemberName:    draft.MemberName,
		Notes:         draft.Notes,
	}

	events, err := lifecycle.PrepareDraft(o, draft.InitialPayment)
	if err != nil {
		return nil, nil, err
	}

	var notifs []models.Notification
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		notifs, err = s.appendEvents(tx, o, events)
		if err != nil {
			return err
		}
		return s.foldSales(tx, o)
	})
	if err != nil {
		return nil, nil, err
	}
	return o, notifs, nil
}

// mutate loads the order, applies a lifecycle decision and persists the result
// plus any notification events, all-or-nothing.
func (s *Store) mutate(id uint, fn func(o *models.Order) ([]lifecycle.Event, error)) (*models.Order, []models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out *models.Order
	var notifs []models.Notification
	err := s.db.Transaction(func(tx *gorm.DB) error {
		o, err := s.loadOrder(tx, id)
		if err != nil {
			return err
		}
		events, err := fn(o)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(o).Error; err != nil {
			return err
		}
		// Persist ledger entries the engine appended.
		for i := range o.Payments {
			if o.Payments[i].ID == 0 {
				o.Payments[i].OrderID = o.ID
				if err := tx.Create(&o.Payments[i]).Error; err != nil {
					return err
				}
			}
		}
		notifs, err = s.appendEvents(tx, o, events)
		if err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return out, notifs, nil
}

// StartStation marks kitchen or grill as having begun work.
func (s *Store) StartStation(id uint, station string) (*models.Order, []models.Notification, error) {
	return s.mutate(id, func(o *models.Order) ([]lifecycle.Event, error) {
		return lifecycle.Start(o, station)
	})
}

// FinishStation marks kitchen or grill work as done.
func (s *Store) FinishStation(id uint, station string) (*models.Order, []models.Notification, error) {
	return s.mutate(id, func(o *models.Order) ([]lifecycle.Event, error) {
		return lifecycle.Finish(o, station)
	})
}

// DeliverOrder completes a ready, fully paid order and stamps CompletedAt so
// the janitor can pick it up later.
func (s *Store) DeliverOrder(id uint) (*models.Order, error) {
	o, _, err := s.mutate(id, func(o *models.Order) ([]lifecycle.Event, error) {
		if err := lifecycle.Deliver(o); err != nil {
			return nil, err
		}
		now := time.Now()
		o.CompletedAt = &now
		return nil, nil
	})
	return o, err
}

// AddPayment appends one ledger entry (split payments arrive as repeated calls).
func (s *Store) AddPayment(id uint, method string, amount float64) (*models.Order, error) {
	o, _, err := s.mutate(id, func(o *models.Order) ([]lifecycle.Event, error) {
		return nil, lifecycle.ApplyPayment(o, method, amount)
	})
	return o, err
}

// OrderInfo carries the classification fields a PATCH may touch.
type OrderInfo struct {
	Notes        *string
	OrderType    *string
	IsMemberSale *bool
	MemberName   *string
}

// UpdateOrderInfo patches notes/classification without touching the state
// machine.
func (s *Store) UpdateOrderInfo(id uint, info OrderInfo) (*models.Order, error) {
	o, _, err := s.mutate(id, func(o *models.Order) ([]lifecycle.Event, error) {
		if info.Notes != nil {
			o.Notes = *info.Notes
		}
		if info.OrderType != nil {
			switch *info.OrderType {
			case models.OrderTypeDineIn, models.OrderTypeTakeout:
				o.OrderType = *info.OrderType
			default:
				return nil, &lifecycle.ValidationError{Reason: "tipo de pedido desconocido: " + *info.OrderType}
			}
		}
		if info.IsMemberSale != nil {
			o.IsMemberSale = *info.IsMemberSale
		}
		if info.MemberName != nil {
			o.MemberName = info.MemberName
		}
		return nil, nil
	})
	return o, err
}

// EditOrderItems replaces the line list of a pending order. Returns
// cancelled=true when the edit emptied the order; in that case the order is
// deleted instead of being left as a zero-line record.
func (s *Store) EditOrderItems(id uint, items []models.OrderItem) (o *models.Order, cancelled bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		loaded, err := s.loadOrder(tx, id)
		if err != nil {
			return err
		}
		cancel, err := lifecycle.EditItems(loaded, items)
		if err != nil {
			return err
		}
		if cancel {
			cancelled = true
			return s.deleteOrder(tx, loaded.ID)
		}
		if err := tx.Where("order_id = ?", loaded.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range loaded.Items {
			loaded.Items[i].ID = 0
			loaded.Items[i].OrderID = loaded.ID
		}
		if err := tx.Create(&loaded.Items).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(loaded).Error; err != nil {
			return err
		}
		o = loaded
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return o, cancelled, nil
}

// CancelOrder removes a pending order outright.
func (s *Store) CancelOrder(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		o, err := s.loadOrder(tx, id)
		if err != nil {
			return err
		}
		if err := lifecycle.Cancel(o); err != nil {
			return err
		}
		return s.deleteOrder(tx, o.ID)
	})
}

// RemoveOrder deletes regardless of state. Used by the janitor for completed
// orders.
func (s *Store) RemoveOrder(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		var o models.Order
		if err := tx.First(&o, id).Error; err != nil {
			return err
		}
		return s.deleteOrder(tx, o.ID)
	})
}

func (s *Store) deleteOrder(tx *gorm.DB, id uint) error {
	if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("order_id = ?", id).Delete(&models.PaymentRecord{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Order{}, id).Error
}

// SweepCompleted removes orders delivered more than maxAge ago and returns the
// ids that went away.
func (s *Store) SweepCompleted(maxAge time.Duration) ([]uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	var ids []uint
	if err := s.db.Model(&models.Order{}).
		Where("status = ? AND completed_at IS NOT NULL AND completed_at <= ?", models.StatusCompleted, cutoff).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			if err := s.deleteOrder(tx, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
