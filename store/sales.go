package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/waykaburger/station-app/lifecycle"
	"github.com/waykaburger/station-app/models"
)

// TodayKey is the calendar key the aggregator files orders under.
func TodayKey() string {
	return time.Now().Format("2006-01-02")
}

// GetSales returns the aggregate for a date ("" = today), lazily creating a
// zeroed day on first access.
func (s *Store) GetSales(date string) (*models.DailySales, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if date == "" {
		date = TodayKey()
	}
	var sales *models.DailySales
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		sales, err = s.getOrCreateSales(tx, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *Store) getOrCreateSales(tx *gorm.DB, date string) (*models.DailySales, error) {
	var sales models.DailySales
	err := tx.Preload("ItemsSold").Preload("OrderDetails").
		Where("date = ?", date).First(&sales).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sales = models.DailySales{Date: date}
		if err := tx.Create(&sales).Error; err != nil {
			return nil, err
		}
		return &sales, nil
	}
	if err != nil {
		return nil, err
	}
	return &sales, nil
}

// foldSales adds a freshly created order into today's aggregate: revenue and
// order count, per-item accumulation, and the frozen order-detail snapshot.
// Later edits and payments never rewrite what was folded here.
func (s *Store) foldSales(tx *gorm.DB, o *models.Order) error {
	sales, err := s.getOrCreateSales(tx, TodayKey())
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"total_revenue": gorm.Expr("total_revenue + ?", o.Total),
		"total_orders":  gorm.Expr("total_orders + ?", 1),
	}
	if err := tx.Model(sales).Updates(updates).Error; err != nil {
		return err
	}

	for i := range o.Items {
		line := &o.Items[i]
		var item models.DailySalesItem
		err := tx.Where("daily_sales_id = ? AND item_id = ?", sales.ID, line.ItemID).
			First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.DailySalesItem{
				DailySalesID: sales.ID,
				ItemID:       line.ItemID,
				Name:         line.Name,
				Quantity:     line.Quantity,
				Revenue:      line.Subtotal(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			item.Quantity += line.Quantity
			item.Revenue += line.Subtotal()
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		}
	}

	detail := models.DailySalesDetail{
		DailySalesID:  sales.ID,
		OrderNumber:   o.OrderNumber,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		OrderType:     o.OrderType,
		IsMemberSale:  o.IsMemberSale,
		MemberName:    o.MemberName,
	}
	return tx.Create(&detail).Error
}

// CloseSales marks today's day as closed. Closing twice fails; the flag stays
// set.
func (s *Store) CloseSales(closedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if closedBy == "" {
		return &lifecycle.ValidationError{Reason: "closed_by es requerido"}
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		sales, err := s.getOrCreateSales(tx, TodayKey())
		if err != nil {
			return err
		}
		if sales.IsClosed {
			return &lifecycle.PreconditionError{Reason: "el día ya está cerrado"}
		}
		now := time.Now()
		return tx.Model(sales).Updates(map[string]interface{}{
			"is_closed": true,
			"closed_at": now,
			"closed_by": closedBy,
		}).Error
	})
}

// OpenSales starts a fresh day. Valid only when no day is open yet (or the
// current one was closed); the record is zeroed either way.
func (s *Store) OpenSales(openedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if openedBy == "" {
		return &lifecycle.ValidationError{Reason: "opened_by es requerido"}
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var sales models.DailySales
		err := tx.Where("date = ?", TodayKey()).First(&sales).Error
		if err == nil && !sales.IsClosed {
			return &lifecycle.PreconditionError{Reason: "la caja ya está abierta"}
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.resetSales(tx)
	})
}

// ResetSales replaces today's record with a zeroed one, open or closed.
func (s *Store) ResetSales() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(s.resetSales)
}

func (s *Store) resetSales(tx *gorm.DB) error {
	var sales models.DailySales
	err := tx.Where("date = ?", TodayKey()).First(&sales).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&models.DailySales{Date: TodayKey()}).Error
	}
	if err != nil {
		return err
	}
	if err := tx.Where("daily_sales_id = ?", sales.ID).Delete(&models.DailySalesItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("daily_sales_id = ?", sales.ID).Delete(&models.DailySalesDetail{}).Error; err != nil {
		return err
	}
	if err := tx.Delete(&sales).Error; err != nil {
		return err
	}
	return tx.Create(&models.DailySales{Date: TodayKey()}).Error
}
