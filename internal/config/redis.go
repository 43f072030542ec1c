package config

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig backs both the rate limiter and the chunk pub/sub.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr: net.JoinHostPort(
			getEnvOrDefault("REDIS_HOST", "localhost"),
			getEnvOrDefault("REDIS_PORT", "6379"),
		),
		Password:    getEnvOrDefault("REDIS_PASSWORD", ""),
		DB:          getEnvIntWithDefault("REDIS_DB", 0),
		PoolSize:    getEnvIntWithDefault("REDIS_POOL_SIZE", 20),
		DialTimeout: getEnvDurationWithDefault("REDIS_DIAL_TIMEOUT", 5*time.Second),
	}
}

// GetClient pings before returning so a bad address fails at startup.
func (c *RedisConfig) GetClient(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        c.Addr,
		Password:    c.Password,
		DB:          c.DB,
		PoolSize:    c.PoolSize,
		DialTimeout: c.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, c.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", c.Addr, err)
	}

	return client, nil
}
