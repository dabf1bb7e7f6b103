package services

import (
	"encoding/json"
	"testing"
	"time"

	"smart_canteen/internal/models"
	"smart_canteen/internal/redis"
	"smart_canteen/internal/repository"
)

// memoryCache is an in-process Cache used to observe what the services read,
// write and drop without a running redis server.
type memoryCache struct {
	menuLists map[string][]models.MenuItem
	snapshots map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		menuLists: make(map[string][]models.MenuItem),
		snapshots: make(map[string][]byte),
	}
}

func (c *memoryCache) GetMenuList(key string) ([]models.MenuItem, error) {
	items, ok := c.menuLists[key]
	if !ok {
		return nil, redis.ErrCacheMiss
	}
	return items, nil
}

func (c *memoryCache) SetMenuList(key string, items []models.MenuItem, ttl time.Duration) error {
	c.menuLists[key] = items
	return nil
}

func (c *memoryCache) InvalidateMenuLists() error {
	c.menuLists = make(map[string][]models.MenuItem)
	return nil
}

func (c *memoryCache) GetStatusSnapshot(token string, dest interface{}) error {
	data, ok := c.snapshots[token]
	if !ok {
		return redis.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *memoryCache) SetStatusSnapshot(token string, snapshot interface{}, ttl time.Duration) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	c.snapshots[token] = data
	return nil
}

func (c *memoryCache) DeleteStatusSnapshot(token string) error {
	delete(c.snapshots, token)
	return nil
}

func TestListItemsCachesAndServesListings(t *testing.T) {
	db := setupTestDB(t)
	cache := newMemoryCache()
	svc := NewMenuService(repository.NewMenuRepository(db), cache, time.Minute)
	seedItem(t, db, "Veg Burger", 5.99, true, 10)

	items, err := svc.ListItems(true, "")
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("ListItems() returned %d items, want 1", len(items))
	}
	key := redis.MenuListKey(true, "")
	if _, ok := cache.menuLists[key]; !ok {
		t.Fatalf("listing was not cached under %q after a miss", key)
	}

	// A row added behind the service's back stays invisible while the
	// listing is served from cache.
	seedItem(t, db, "Soup", 4.50, true, 5)
	items, err = svc.ListItems(true, "")
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(items) != 1 {
		t.Errorf("cached listing returned %d items, want 1", len(items))
	}

	// A staff write invalidates, and the next read repopulates from the
	// database.
	if err := svc.CreateItem(&models.MenuItem{Name: "Tea", Category: "Beverages", Price: 2.49, Available: true}); err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	items, err = svc.ListItems(true, "")
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(items) != 3 {
		t.Errorf("refreshed listing returned %d items, want 3", len(items))
	}
}

func TestCatalogWritesDropCachedListings(t *testing.T) {
	db := setupTestDB(t)
	cache := newMemoryCache()
	svc := NewMenuService(repository.NewMenuRepository(db), cache, time.Minute)
	item := seedItem(t, db, "Coffee", 3.49, true, 5)

	prime := func(t *testing.T) {
		t.Helper()
		if _, err := svc.ListItems(false, ""); err != nil {
			t.Fatalf("ListItems() error = %v", err)
		}
		if len(cache.menuLists) == 0 {
			t.Fatal("listing was not cached")
		}
	}

	prime(t)
	if err := svc.CreateItem(&models.MenuItem{Name: "Tea", Category: "Beverages", Price: 2.49, Available: true}); err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	if len(cache.menuLists) != 0 {
		t.Errorf("CreateItem left %d cached listings, want 0", len(cache.menuLists))
	}

	prime(t)
	newPrice := 3.99
	if _, err := svc.UpdateItem(item.ID, MenuItemUpdate{Price: &newPrice}); err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}
	if len(cache.menuLists) != 0 {
		t.Errorf("UpdateItem left %d cached listings, want 0", len(cache.menuLists))
	}

	prime(t)
	if err := svc.DeleteItem(item.ID); err != nil {
		t.Fatalf("DeleteItem() error = %v", err)
	}
	if len(cache.menuLists) != 0 {
		t.Errorf("DeleteItem left %d cached listings, want 0", len(cache.menuLists))
	}
}

func TestStatusSnapshotCachedAndDroppedOnUpdate(t *testing.T) {
	db := setupTestDB(t)
	cache := newMemoryCache()
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	svc := NewOrderService(orderRepo, menuRepo, cache, time.Minute)
	item := seedItem(t, db, "Veg Burger", 5.99, true, 10)

	order, err := svc.PlaceOrder("Alice", "", []LineRequest{{ItemID: item.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	snap, err := svc.GetStatus(order.Token)
	if err != nil {
		t.Fatalf("GetStatus() error = %v", err)
	}
	if snap.Status != "placed" || snap.QueuePosition != 1 {
		t.Fatalf("snapshot = %+v, want placed with queue position 1", snap)
	}
	if _, ok := cache.snapshots[order.Token]; !ok {
		t.Fatal("snapshot was not cached after a miss")
	}

	// While the snapshot is cached, a direct database change is not seen.
	if err := db.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", "preparing").Error; err != nil {
		t.Fatalf("failed to update order row: %v", err)
	}
	snap, err = svc.GetStatus(order.Token)
	if err != nil {
		t.Fatalf("GetStatus() error = %v", err)
	}
	if snap.Status != "placed" {
		t.Errorf("cached snapshot status = %q, want placed", snap.Status)
	}

	// A status update through the service drops the snapshot eagerly, so
	// the next poll reflects the new state immediately.
	if _, err := svc.UpdateStatus(order.Token, "ready"); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if _, ok := cache.snapshots[order.Token]; ok {
		t.Fatal("snapshot survived a status update")
	}
	snap, err = svc.GetStatus(order.Token)
	if err != nil {
		t.Fatalf("GetStatus() error = %v", err)
	}
	if snap.Status != "ready" || snap.QueuePosition != 0 {
		t.Errorf("snapshot = %+v, want ready with queue position 0", snap)
	}
}
