package repository

import (
	"smart_canteen/internal/models"
	"time"

	"gorm.io/gorm"
)

type OrderRepository interface {
	CreateWithLines(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByToken(token string) (*models.Order, error)
	TokenExists(token string) (bool, error)
	UpdateStatus(id uint, status string) error
	List(status string) ([]models.Order, error)
	CountActiveUpTo(createdAt time.Time, id uint) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithLines persists the order and all of its lines in one transaction.
// Either everything is stored or nothing is.
func (r *orderRepository) CreateWithLines(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Lines").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByToken(token string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Lines").Where("token = ?", token).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) TokenExists(token string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("token = ?", token).Count(&count).Error
	return count > 0, err
}

func (r *orderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *orderRepository) List(status string) ([]models.Order, error) {
	var orders []models.Order
	q := r.db.Preload("Lines").Order("created_at, id")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&orders).Error
	return orders, err
}

// CountActiveUpTo counts still-active orders placed at or before the given
// creation time. Orders sharing the exact timestamp are tie-broken by id, so
// the result is a deterministic 1-based queue rank for the order itself.
func (r *orderRepository) CountActiveUpTo(createdAt time.Time, id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("status IN ?", []string{string(models.OrderPlaced), string(models.OrderPreparing)}).
		Where("created_at < ? OR (created_at = ? AND id <= ?)", createdAt, createdAt, id).
		Count(&count).Error
	return count, err
}
