package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"smart_canteen/internal/models"
	"smart_canteen/internal/repository"

	"gorm.io/gorm"
)

const tokenAttempts = 5

// LineRequest is one (menu item, quantity) pair of an incoming order.
type LineRequest struct {
	ItemID   uint `json:"item_id"`
	Quantity int  `json:"quantity"`
}

// StatusSnapshot is the point-in-time answer to a customer poll. Callers must
// re-poll to observe change.
type StatusSnapshot struct {
	OrderID        uint       `json:"order_id"`
	Token          string     `json:"token"`
	Status         string     `json:"status"`
	TotalAmount    float64    `json:"total_amount"`
	QueuePosition  int        `json:"queue_position"`
	EstimatedReady *time.Time `json:"estimated_ready,omitempty"`
}

type OrderService interface {
	PlaceOrder(customerName, customerPhone string, lines []LineRequest) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	UpdateStatus(idOrToken, newStatus string) (*models.Order, error)
	GetStatus(token string) (*StatusSnapshot, error)
	ListOrders(status string) ([]models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuRepository
	cache     Cache
	statusTTL time.Duration
}

// NewOrderService creates the order lifecycle service. cache may be nil, in
// which case every status poll hits the database.
func NewOrderService(orderRepo repository.OrderRepository, menuRepo repository.MenuRepository, cache Cache, statusTTL time.Duration) OrderService {
	return &orderService{orderRepo: orderRepo, menuRepo: menuRepo, cache: cache, statusTTL: statusTTL}
}

// PlaceOrder validates the requested lines against the catalog, snapshots each
// line's name and price, and persists the order atomically. Any validation
// failure leaves no trace in the store.
func (s *orderService) PlaceOrder(customerName, customerPhone string, lines []LineRequest) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	total := 0.0
	maxPrepMinutes := 0
	orderLines := make([]models.OrderLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}

		item, err := s.menuRepo.GetByID(line.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ItemNotFoundError{ItemID: line.ItemID}
			}
			return nil, fmt.Errorf("failed to load menu item %d: %w", line.ItemID, err)
		}
		if !item.Available {
			return nil, &ItemUnavailableError{ItemID: item.ID, Name: item.Name}
		}

		lineTotal := item.Price * float64(line.Quantity)
		total += lineTotal
		if item.PrepTimeMinutes > maxPrepMinutes {
			maxPrepMinutes = item.PrepTimeMinutes
		}
		orderLines = append(orderLines, models.OrderLine{
			MenuItemID: item.ID,
			ItemName:   item.Name,
			Quantity:   line.Quantity,
			UnitPrice:  item.Price,
			LineTotal:  lineTotal,
		})
	}

	for attempt := 0; attempt < tokenAttempts; attempt++ {
		token, err := s.uniqueToken()
		if err != nil {
			return nil, err
		}

		orderLinesCopy := make([]models.OrderLine, len(orderLines))
		copy(orderLinesCopy, orderLines)
		order := &models.Order{
			Token:         token,
			CustomerName:  customerName,
			CustomerPhone: customerPhone,
			Status:        string(models.OrderPlaced),
			TotalAmount:   math.Round(total*100) / 100,
			Lines:         orderLinesCopy,
		}
		if maxPrepMinutes > 0 {
			ready := time.Now().Add(time.Duration(maxPrepMinutes) * time.Minute)
			order.EstimatedReady = &ready
		}

		err = s.orderRepo.CreateWithLines(order)
		if err == nil {
			return order, nil
		}
		// A concurrent order can take the same token between the uniqueness
		// pre-check and the insert; the unique index catches it. Draw again.
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
	}
	return nil, fmt.Errorf("failed to create order: token collided %d times", tokenAttempts)
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves an order, addressed by numeric id or tracking token, to a
// new status. The transition table rejects illegal moves; setting the current
// status again is a no-op.
func (s *orderService) UpdateStatus(idOrToken, newStatus string) (*models.Order, error) {
	if !models.ValidOrderStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	order, err := s.resolve(idOrToken)
	if err != nil {
		return nil, err
	}

	if order.Status == newStatus {
		return order, nil
	}
	if !models.ValidStatusTransition(order.Status, newStatus) {
		return nil, &InvalidTransitionError{From: order.Status, To: newStatus}
	}

	if err := s.orderRepo.UpdateStatus(order.ID, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	order.Status = newStatus

	if s.cache != nil {
		// Stale snapshots only ever live for statusTTL, but drop eagerly.
		s.cache.DeleteStatusSnapshot(order.Token)
	}
	return order, nil
}

// GetStatus returns the customer-facing snapshot for a tracking token. Queue
// position is 0 once the order is ready, completed or cancelled; otherwise it
// is the order's 1-based rank among active orders by placement time, ties
// broken by id.
func (s *orderService) GetStatus(token string) (*StatusSnapshot, error) {
	if s.cache != nil {
		var cached StatusSnapshot
		if err := s.cache.GetStatusSnapshot(token, &cached); err == nil {
			return &cached, nil
		}
	}

	order, err := s.orderRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	position := 0
	if !models.OrderStatus(order.Status).IsTerminal() {
		count, err := s.orderRepo.CountActiveUpTo(order.CreatedAt, order.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute queue position: %w", err)
		}
		position = int(count)
	}

	snapshot := &StatusSnapshot{
		OrderID:        order.ID,
		Token:          order.Token,
		Status:         order.Status,
		TotalAmount:    order.TotalAmount,
		QueuePosition:  position,
		EstimatedReady: order.EstimatedReady,
	}
	if s.cache != nil {
		s.cache.SetStatusSnapshot(token, snapshot, s.statusTTL)
	}
	return snapshot, nil
}

func (s *orderService) ListOrders(status string) ([]models.Order, error) {
	if status != "" && !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.orderRepo.List(status)
}

// resolve looks an order up by numeric id first, then by token.
func (s *orderService) resolve(idOrToken string) (*models.Order, error) {
	if id, err := strconv.ParseUint(idOrToken, 10, 32); err == nil {
		order, err := s.orderRepo.GetByID(uint(id))
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	order, err := s.orderRepo.GetByToken(idOrToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) uniqueToken() (string, error) {
	for i := 0; i < tokenAttempts; i++ {
		token, err := generateToken(tokenLength)
		if err != nil {
			return "", err
		}
		exists, err := s.orderRepo.TokenExists(token)
		if err != nil {
			return "", fmt.Errorf("failed to check token uniqueness: %w", err)
		}
		if !exists {
			return token, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique token after %d attempts", tokenAttempts)
}
