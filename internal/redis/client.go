package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"smart_canteen/internal/models"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a key is absent or expired. Callers fall back
// to the database and repopulate.
var ErrCacheMiss = errors.New("cache miss")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// MenuListKey builds the cache key for one menu listing filter combination.
func MenuListKey(availableOnly bool, category string) string {
	return "menu:list:" + strconv.FormatBool(availableOnly) + ":" + category
}

// Menu listing cache
func (c *Client) SetMenuList(key string, items []models.MenuItem, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal menu listing: %w", err)
	}

	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

func (c *Client) GetMenuList(key string) ([]models.MenuItem, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get menu listing: %w", err)
	}

	var items []models.MenuItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal menu listing: %w", err)
	}

	return items, nil
}

// InvalidateMenuLists drops every cached menu listing. Called after any staff
// write to the catalog. SCAN keeps the server responsive on shared instances;
// KEYS would block for the whole keyspace.
func (c *Client) InvalidateMenuLists() error {
	ctx := context.Background()
	var keys []string
	iter := c.rdb.Scan(ctx, 0, "menu:list:*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan menu listing keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Status snapshot cache, keyed by tracking token
func (c *Client) SetStatusSnapshot(token string, snapshot interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal status snapshot: %w", err)
	}

	return c.rdb.Set(ctx, "status:"+token, jsonData, ttl).Err()
}

func (c *Client) GetStatusSnapshot(token string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "status:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get status snapshot: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) DeleteStatusSnapshot(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "status:"+token).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
