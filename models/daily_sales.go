package models

import "time"

// DailySales is the per-day revenue aggregate, keyed by "YYYY-MM-DD". Created
// lazily on the first order (or first read) of the day.
type DailySales struct {
	ID           uint               `gorm:"primaryKey" json:"-"`
	Date         string             `gorm:"type:varchar(10);uniqueIndex;not null" json:"date"`
	TotalRevenue float64            `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_revenue"`
	TotalOrders  int                `gorm:"not null;default:0" json:"total_orders"`
	ItemsSold    []DailySalesItem   `gorm:"foreignKey:DailySalesID" json:"items_sold"`
	OrderDetails []DailySalesDetail `gorm:"foreignKey:DailySalesID" json:"order_details"`
	IsClosed     bool               `gorm:"not null;default:false" json:"is_closed"`
	ClosedAt     *time.Time         `json:"closed_at,omitempty"`
	ClosedBy     *string            `gorm:"type:varchar(100)" json:"closed_by,omitempty"`
	CreatedAt    time.Time          `json:"-"`
	UpdatedAt    time.Time          `json:"-"`
}

// DailySalesItem accumulates quantity and revenue per catalog item.
type DailySalesItem struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	DailySalesID uint    `gorm:"not null;index" json:"-"`
	ItemID       string  `gorm:"type:varchar(36);not null" json:"item_id"`
	Name         string  `gorm:"type:varchar(100);not null" json:"name"`
	Quantity     int     `gorm:"not null" json:"quantity"`
	Revenue      float64 `gorm:"type:decimal(12,2);not null" json:"revenue"`
}

// DailySalesDetail is the per-order summary captured when the order is created.
// It deliberately stays frozen: later edits and payments do not rewrite it.
type DailySalesDetail struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	DailySalesID  uint      `gorm:"not null;index" json:"-"`
	OrderNumber   int       `gorm:"not null" json:"order_number"`
	Total         float64   `gorm:"type:decimal(10,2);not null" json:"total"`
	PaymentMethod string    `gorm:"type:varchar(10);not null" json:"payment_method"`
	OrderType     string    `gorm:"type:varchar(10);not null" json:"order_type"`
	IsMemberSale  bool      `gorm:"not null;default:false" json:"is_member_sale"`
	MemberName    *string   `gorm:"type:varchar(100)" json:"member_name,omitempty"`
	CreatedAt     time.Time `gorm:"not null" json:"timestamp"`
}
