package models

import "time"

// Station names for notification targeting and station actions.
const (
	StationKitchen = "kitchen"
	StationGrill   = "grill"
	StationCashier = "cashier"
)

// Notification types mirror the forward lifecycle transitions.
const (
	NotifNewOrder         = "new-order"
	NotifKitchenStarted   = "kitchen-started"
	NotifGrillStarted     = "grill-started"
	NotifKitchenCompleted = "kitchen-completed"
	NotifGrillCompleted   = "grill-completed"
	NotifReadyForPickup   = "ready-for-pickup"
)

// Notification is created exactly once per lifecycle transition and never
// mutated afterwards except for the read flag.
type Notification struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Type          string    `gorm:"type:varchar(20);not null" json:"type"`
	OrderID       uint      `gorm:"not null;index" json:"order_id"`
	OrderNumber   int       `gorm:"not null" json:"order_number"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	Read          bool      `gorm:"not null;default:false" json:"read"`
	TargetStation string    `gorm:"type:varchar(10);not null;index" json:"target_station"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}
