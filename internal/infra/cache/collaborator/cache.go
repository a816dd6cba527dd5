// Package collaborator кэширует ответы маркетплейса в Redis.
// При недоступности Redis кэш отключается, и сервис работает напрямую с маркетплейсом
package collaborator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL время жизни записи по умолчанию
const DefaultTTL = 30 * time.Second

// DefaultKeyPrefix префикс ключей кэша
const DefaultKeyPrefix = "smc:scheduling:collaborator:"

// Config настройки кэша
type Config struct {
	Addr      string
	Password  string
	DB        int
	TTL       time.Duration
	KeyPrefix string

	// DisableOnError отключает кэш после первой ошибки Redis
	DisableOnError bool
}

// Cache кэш ответов маркетплейса
type Cache struct {
	client *redis.Client
	config Config
	log    Logger

	mu       sync.RWMutex
	disabled bool
}

// New создает кэш и проверяет подключение к Redis.
// Если Redis недоступен, возвращается отключенный кэш, а не ошибка
func New(ctx context.Context, cfg Config, log Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		PoolSize:     10,
		MinIdleConns: 1,
	})

	return NewWithClient(ctx, client, cfg, log)
}

// NewWithClient создает кэш поверх готового клиента
func NewWithClient(ctx context.Context, client *redis.Client, cfg Config, log Logger) *Cache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultKeyPrefix
	}

	c := &Cache{client: client, config: cfg, log: log}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis cache unavailable at %s, running without caching: %v", cfg.Addr, err)
		c.disabled = true
		return c
	}

	log.Info("Redis cache initialized at %s (ttl=%s)", cfg.Addr, cfg.TTL)
	return c
}

// Key собирает ключ записи для эндпоинта и пары (проект, пакет)
func (c *Cache) Key(endpoint string, projectID int64, subprojectIndex *int) string {
	if subprojectIndex == nil {
		return fmt.Sprintf("%s%s:%d", c.config.KeyPrefix, endpoint, projectID)
	}
	return fmt.Sprintf("%s%s:%d:%d", c.config.KeyPrefix, endpoint, projectID, *subprojectIndex)
}

// IsAvailable сообщает, что кэш работает
func (c *Cache) IsAvailable() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.disabled && c.client != nil
}

// Get читает значение в dest. Возвращает false при промахе или ошибке
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if !c.IsAvailable() {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.handleError(err, "get")
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warn("Failed to unmarshal cached value for key=%s: %v", key, err)
		return false
	}

	return true
}

// Set сохраняет значение с TTL из конфигурации
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if !c.IsAvailable() {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Failed to marshal cache value for key=%s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.config.TTL).Err(); err != nil {
		c.handleError(err, "set")
	}
}

// Delete удаляет записи, например после изменения ручных блокировок
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if !c.IsAvailable() || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.handleError(err, "delete")
	}
}

// Close закрывает соединение с Redis
func (c *Cache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *Cache) handleError(err error, operation string) {
	c.log.Warn("Cache %s failed: %v", operation, err)

	if c.config.DisableOnError {
		c.mu.Lock()
		c.disabled = true
		c.mu.Unlock()
		c.log.Warn("Disabling collaborator cache due to Redis error")
	}
}
