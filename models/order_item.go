package models

import "time"

// Customizations are the ingredient-removal flags a cashier can toggle per line.
type Customizations struct {
	RemoveLettuce bool `json:"remove_lettuce,omitempty"`
	RemoveTomato  bool `json:"remove_tomato,omitempty"`
	RemoveOnion   bool `json:"remove_onion,omitempty"`
	RemoveCheese  bool `json:"remove_cheese,omitempty"`
	RemovePickles bool `json:"remove_pickles,omitempty"`
}

// OrderItem is one order line. Item fields are snapshotted from the catalog at
// creation time (item_id, name, price, category), never joined back.
type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order          Order          `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ItemID         string         `gorm:"type:varchar(36);not null" json:"item_id"`
	Name           string         `gorm:"type:varchar(100);not null" json:"name"`
	Price          float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	Category       string         `gorm:"type:varchar(20);not null" json:"category"`
	CookingTime    *int           `json:"cooking_time,omitempty"`
	Image          *string        `gorm:"type:varchar(255)" json:"image,omitempty"`
	Quantity       int            `gorm:"not null" json:"quantity"`
	Notes          string         `gorm:"type:text" json:"notes"`
	Customizations Customizations `gorm:"embedded;embeddedPrefix:custom_" json:"customizations"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Subtotal of the line at its snapshotted price.
func (oi *OrderItem) Subtotal() float64 {
	return oi.Price * float64(oi.Quantity)
}

// NeedsStationWork reports whether the line has to pass through kitchen/grill.
// Drinks and extras go straight to the counter.
func (oi *OrderItem) NeedsStationWork() bool {
	return oi.Category == CategoryBurger || oi.Category == CategorySide
}
