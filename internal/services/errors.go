package services

import (
	"errors"
	"fmt"
)

// Validation failures surfaced to the access layer. All are request-local;
// none leave partial state behind.
var (
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ItemNotFoundError identifies which requested menu item does not exist.
type ItemNotFoundError struct {
	ItemID uint
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("menu item %d not found", e.ItemID)
}

// ItemUnavailableError identifies which menu item blocked the order.
type ItemUnavailableError struct {
	ItemID uint
	Name   string
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("item '%s' is not available", e.Name)
}

// InvalidTransitionError rejects a status change the transition table forbids.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move order from '%s' to '%s'", e.From, e.To)
}
