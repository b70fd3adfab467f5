package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache di lettura per le risposte pubbliche (listino servizi per slug).
// Se Redis non è raggiungibile l'API continua a funzionare senza cache.
type Cache struct {
	client *redis.Client
}

func New(addr string) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable at %s, running without cache: %v", addr, err)
		return &Cache{client: nil}
	}

	return &Cache{client: client}
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}

	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, b, ttl).Err(); err != nil {
		log.Printf("cache set %s failed: %v", key, err)
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache invalidate failed: %v", err)
	}
}
