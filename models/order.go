package models

import "time"

// Order statuses. The four station booleans are the source of truth for station
// progress; Status is the projection of the most recent relevant transition.
const (
	StatusPending          = "pending"
	StatusKitchenStarted   = "kitchen-started"
	StatusGrillStarted     = "grill-started"
	StatusKitchenCompleted = "kitchen-completed"
	StatusGrillCompleted   = "grill-completed"
	StatusReadyForPickup   = "ready-for-pickup"
	StatusCompleted        = "completed"
)

// Payment methods and order types.
const (
	PaymentCash = "cash"
	PaymentQR   = "qr"

	OrderTypeDineIn  = "dine-in"
	OrderTypeTakeout = "takeout"
)

type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber int    `gorm:"uniqueIndex;not null" json:"order_number"`
	Status      string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Station progress flags. Monotonic: once true they stay true for the life
	// of the order.
	KitchenStarted   bool `gorm:"not null;default:false" json:"kitchen_started"`
	GrillStarted     bool `gorm:"not null;default:false" json:"grill_started"`
	KitchenCompleted bool `gorm:"not null;default:false" json:"kitchen_completed"`
	GrillCompleted   bool `gorm:"not null;default:false" json:"grill_completed"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Total float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`

	Payments      []PaymentRecord `gorm:"foreignKey:OrderID" json:"payments"`
	AmountPaid    float64         `gorm:"type:decimal(10,2);not null;default:0.00" json:"amount_paid"`
	AmountPending float64         `gorm:"type:decimal(10,2);not null;default:0.00" json:"amount_pending"`

	PaymentMethod string  `gorm:"type:varchar(10);not null" json:"payment_method"`
	OrderType     string  `gorm:"type:varchar(10);not null" json:"order_type"`
	IsMemberSale  bool    `gorm:"not null;default:false" json:"is_member_sale"`
	MemberName    *string `gorm:"type:varchar(100)" json:"member_name,omitempty"`
	Notes         string  `gorm:"type:text" json:"notes"`

	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// HasStationItems reports whether any line needs kitchen/grill work. Orders
// without such lines skip the whole station state machine.
func (o *Order) HasStationItems() bool {
	for i := range o.Items {
		if o.Items[i].NeedsStationWork() {
			return true
		}
	}
	return false
}

// ItemsTotal recomputes the order total from its lines.
func (o *Order) ItemsTotal() float64 {
	var total float64
	for i := range o.Items {
		total += o.Items[i].Subtotal()
	}
	return total
}
