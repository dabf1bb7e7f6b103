package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Token          string         `json:"token" gorm:"uniqueIndex;not null"`
	CustomerName   string         `json:"customer_name"`
	CustomerPhone  string         `json:"customer_phone"`
	Status         string         `json:"status" gorm:"default:'placed'"` // placed, preparing, ready, completed, cancelled
	TotalAmount    float64        `json:"total_amount" gorm:"not null"`
	EstimatedReady *time.Time     `json:"estimated_ready"`
	Lines          []OrderLine    `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is part of the wire-level status vocabulary.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPlaced, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// IsActive reports whether an order with this status still counts toward the queue.
func (s OrderStatus) IsActive() bool {
	return s == OrderPlaced || s == OrderPreparing
}

// IsTerminal reports whether this status short-circuits queue position to 0.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderReady || s == OrderCompleted || s == OrderCancelled
}

var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderPlaced:    {OrderPreparing, OrderReady, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderCompleted},
	OrderCompleted: {},
	OrderCancelled: {},
}

// ValidStatusTransition reports whether an order may move from one status to another.
// Completed and cancelled are final.
func ValidStatusTransition(from, to string) bool {
	if !ValidOrderStatus(from) || !ValidOrderStatus(to) {
		return false
	}
	for _, next := range statusTransitions[OrderStatus(from)] {
		if next == OrderStatus(to) {
			return true
		}
	}
	return false
}
