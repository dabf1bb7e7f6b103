package services

import (
	"time"

	"smart_canteen/internal/models"
)

// Cache is the slice of the redis client the services depend on. A nil Cache
// disables caching; every read then goes to the database.
type Cache interface {
	GetMenuList(key string) ([]models.MenuItem, error)
	SetMenuList(key string, items []models.MenuItem, ttl time.Duration) error
	InvalidateMenuLists() error
	GetStatusSnapshot(token string, dest interface{}) error
	SetStatusSnapshot(token string, snapshot interface{}, ttl time.Duration) error
	DeleteStatusSnapshot(token string) error
}
