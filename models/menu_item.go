package models

import "time"

// Category values used across the menu and order lines.
const (
	CategoryBurger = "burger"
	CategorySide   = "side"
	CategoryDrink  = "drink"
	CategoryExtra  = "extra"
)

// MenuItem is a catalog row. Orders never reference it directly: order lines
// carry a snapshot of these fields, so later price edits don't touch old orders.
type MenuItem struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"type:varchar(20);not null" json:"category"`
	CookingTime *int      `json:"cooking_time,omitempty"`
	Image       *string   `gorm:"type:varchar(255)" json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryBurger, CategorySide, CategoryDrink, CategoryExtra:
		return true
	}
	return false
}
