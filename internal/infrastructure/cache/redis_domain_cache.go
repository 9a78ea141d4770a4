// Package cache implementa la caché dominio → esquema sobre Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Campus-api/internal/application/tenancy"
	"github.com/jhoicas/Campus-api/pkg/config"
)

var _ tenancy.DomainCache = (*RedisDomainCache)(nil)

const keyPrefix = "campus:domain:"

// NewRedisClient crea el cliente y verifica la conexión.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return c, nil
}

// RedisDomainCache guarda resoluciones exitosas con TTL. Una baja de dominio se invalida
// explícitamente; el TTL acota lo que sobreviva a un proceso que no invalidó.
type RedisDomainCache struct {
	c   *redis.Client
	ttl time.Duration
}

// NewRedisDomainCache construye la caché. ttl <= 0 guarda sin expiración.
func NewRedisDomainCache(c *redis.Client, ttl time.Duration) *RedisDomainCache {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisDomainCache{c: c, ttl: ttl}
}

func key(domain string) string { return keyPrefix + domain }

// Get devuelve el esquema cacheado para domain.
func (r *RedisDomainCache) Get(ctx context.Context, domain string) (string, bool, error) {
	schema, err := r.c.Get(ctx, key(domain)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get %s: %w", domain, err)
	}
	return schema, true, nil
}

// Set guarda domain → schema.
func (r *RedisDomainCache) Set(ctx context.Context, domain, schema string) error {
	if err := r.c.Set(ctx, key(domain), schema, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", domain, err)
	}
	return nil
}

// Invalidate borra las entradas de los dominios dados.
func (r *RedisDomainCache) Invalidate(ctx context.Context, domains ...string) error {
	if len(domains) == 0 {
		return nil
	}
	keys := make([]string, len(domains))
	for i, d := range domains {
		keys[i] = key(d)
	}
	if err := r.c.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
