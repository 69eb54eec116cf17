package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Clés et TTL du cache catalogue
const (
	MerchListKey     = "catalog:merch:all"
	PartsListKey     = "catalog:parts:all"
	SalesSettingsKey = "sales:settings"

	CatalogTTL  = 10 * time.Minute
	SettingsTTL = 5 * time.Minute
)

// Cache enveloppe le client Redis pour le cache de lecture du catalogue
// et les compteurs de rate limiting. Best-effort : une panne Redis dégrade
// les performances, jamais la justesse.
type Cache struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// GetJSON récupère et désérialise une entrée. Retourne false si absente.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		log.Printf("⚠️ Entrée cache corrompue pour %s: %v", key, err)
		return false
	}
	return true
}

// SetJSON sérialise et stocke une entrée avec TTL
func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("⚠️ Erreur écriture cache %s: %v", key, err)
	}
}

// Invalidate supprime des entrées (après une mutation admin)
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("⚠️ Erreur invalidation cache: %v", err)
	}
}

// IncrementRateLimit incrémente le compteur de rate limit et pose la fenêtre
func (c *Cache) IncrementRateLimit(ctx context.Context, key string, window time.Duration) (int64, error) {
	if c == nil || c.rdb == nil {
		return 0, redis.ErrClosed
	}
	pipe := c.rdb.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
