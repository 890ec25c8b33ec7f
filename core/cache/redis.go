package cache

import (
	"context"
	"fmt"

	"planit-api/core/config"
	"planit-api/core/logger"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// GetClient returns the shared redis client
func GetClient() *redis.Client {
	return client
}

// InitRedis connects the shared redis client
func InitRedis(cfg config.RedisConfig) (*redis.Client, error) {
	logger.Info("Initializing redis...", "addr", cfg.Addr, "db", cfg.DB)

	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := c.Ping(context.Background()).Err(); err != nil {
		logger.Error("Failed to ping redis", "error", err)
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	client = c
	logger.Info("Redis initialized successfully")
	return c, nil
}
