package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderLine captures the item name and unit price at purchase time, so later
// menu edits never change a placed order's total.
type OrderLine struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	OrderID    uint           `json:"order_id" gorm:"not null;index"`
	MenuItemID uint           `json:"menu_item_id" gorm:"not null"`
	ItemName   string         `json:"item_name" gorm:"not null"`
	Quantity   int            `json:"quantity" gorm:"not null"`
	UnitPrice  float64        `json:"unit_price" gorm:"not null"`
	LineTotal  float64        `json:"line_total" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
