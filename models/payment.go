package models

import "time"

// PaymentRecord is one entry of an order's append-only payment ledger. Mixed
// cash+QR payments show up as multiple records on the same order.
type PaymentRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Order     Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Method    string    `gorm:"type:varchar(10);not null" json:"method"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
