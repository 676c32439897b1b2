package store

import (
	"gorm.io/gorm"

	"github.com/waykaburger/station-app/lifecycle"
	"github.com/waykaburger/station-app/models"
)

// appendEvents turns lifecycle events into unread notification rows within the
// caller's transaction and returns the created rows so callers can push them.
func (s *Store) appendEvents(tx *gorm.DB, o *models.Order, events []lifecycle.Event) ([]models.Notification, error) {
	notifs := make([]models.Notification, 0, len(events))
	for _, ev := range events {
		n := models.Notification{
			Type:          ev.Type,
			OrderID:       o.ID,
			OrderNumber:   o.OrderNumber,
			Message:       ev.Message,
			TargetStation: ev.Target,
		}
		if err := tx.Create(&n).Error; err != nil {
			return nil, err
		}
		notifs = append(notifs, n)
	}
	return notifs, nil
}

// ListNotifications returns the feed newest-first, filtered by target station
// when one is given.
func (s *Store) ListNotifications(station string) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := s.db.Order("created_at desc, id desc")
	if station != "" {
		q = q.Where("target_station = ?", station)
	}
	var notifs []models.Notification
	err := q.Find(&notifs).Error
	return notifs, err
}

// UnreadCount counts unread notifications for one station.
func (s *Store) UnreadCount(station string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	// "read" is reserved in MySQL, so let gorm quote it via a map condition.
	err := s.db.Model(&models.Notification{}).
		Where("target_station = ?", station).
		Where(map[string]interface{}{"read": false}).
		Count(&count).Error
	return count, err
}

// MarkNotificationRead flips the read flag. Re-reading an already-read
// notification is a no-op; an unknown id surfaces as record-not-found.
func (s *Store) MarkNotificationRead(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n models.Notification
	if err := s.db.First(&n, id).Error; err != nil {
		return err
	}
	if n.Read {
		return nil
	}
	return s.db.Model(&n).Update("read", true).Error
}
