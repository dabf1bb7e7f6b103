package services

import (
	"errors"
	"fmt"
	"time"

	"smart_canteen/internal/models"
	"smart_canteen/internal/redis"
	"smart_canteen/internal/repository"

	"gorm.io/gorm"
)

// MenuItemUpdate carries the staff-mutable catalog fields. Identity and name
// are fixed for the lifetime of an item; nil fields are left unchanged.
type MenuItemUpdate struct {
	Available       *bool    `json:"available"`
	Price           *float64 `json:"price"`
	PrepTimeMinutes *int     `json:"prep_time_minutes"`
	Description     *string  `json:"description"`
}

type MenuService interface {
	ListItems(availableOnly bool, category string) ([]models.MenuItem, error)
	ListCategories() ([]string, error)
	GetItem(id uint) (*models.MenuItem, error)
	CreateItem(item *models.MenuItem) error
	UpdateItem(id uint, update MenuItemUpdate) (*models.MenuItem, error)
	DeleteItem(id uint) error
}

type menuService struct {
	menuRepo repository.MenuRepository
	cache    Cache
	menuTTL  time.Duration
}

// NewMenuService creates the catalog service. cache may be nil.
func NewMenuService(menuRepo repository.MenuRepository, cache Cache, menuTTL time.Duration) MenuService {
	return &menuService{menuRepo: menuRepo, cache: cache, menuTTL: menuTTL}
}

func (s *menuService) ListItems(availableOnly bool, category string) ([]models.MenuItem, error) {
	key := redis.MenuListKey(availableOnly, category)
	if s.cache != nil {
		if items, err := s.cache.GetMenuList(key); err == nil {
			return items, nil
		}
	}

	items, err := s.menuRepo.List(availableOnly, category)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetMenuList(key, items, s.menuTTL)
	}
	return items, nil
}

func (s *menuService) ListCategories() ([]string, error) {
	return s.menuRepo.ListCategories()
}

func (s *menuService) GetItem(id uint) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ItemNotFoundError{ItemID: id}
		}
		return nil, err
	}
	return item, nil
}

func (s *menuService) CreateItem(item *models.MenuItem) error {
	if item.Price < 0 {
		return ErrInvalidPrice
	}
	if err := s.menuRepo.Create(item); err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	s.invalidateListings()
	return nil
}

func (s *menuService) UpdateItem(id uint, update MenuItemUpdate) (*models.MenuItem, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}

	if update.Price != nil {
		if *update.Price < 0 {
			return nil, ErrInvalidPrice
		}
		item.Price = *update.Price
	}
	if update.Available != nil {
		item.Available = *update.Available
	}
	if update.PrepTimeMinutes != nil {
		item.PrepTimeMinutes = *update.PrepTimeMinutes
	}
	if update.Description != nil {
		item.Description = *update.Description
	}

	if err := s.menuRepo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	s.invalidateListings()
	return item, nil
}

// DeleteItem removes an item from the catalog. Historical orders keep their
// snapshotted name and price, so deletion never rewrites a placed order.
func (s *menuService) DeleteItem(id uint) error {
	if _, err := s.GetItem(id); err != nil {
		return err
	}
	if err := s.menuRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	s.invalidateListings()
	return nil
}

func (s *menuService) invalidateListings() {
	if s.cache != nil {
		s.cache.InvalidateMenuLists()
	}
}
