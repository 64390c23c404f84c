package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Option configures the client.
type Option func(*Config)

// Config holds connection settings.
type Config struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	PoolTimeout  time.Duration
	MinIdleConns int
	PingTimeout  time.Duration
}

func WithAddr(addr string) Option {
	return func(c *Config) { c.Addr = addr }
}

func WithPassword(pw string) Option {
	return func(c *Config) { c.Password = pw }
}

func WithDB(db int) Option {
	return func(c *Config) { c.DB = db }
}

// WithPool sets pool size and minimum idle connections.
func WithPool(size, minIdle int) Option {
	return func(c *Config) {
		c.PoolSize = size
		c.MinIdleConns = minIdle
	}
}

// NewClient connects and pings Redis.
func NewClient(opts ...Option) (*goredis.Client, error) {
	cfg := &Config{
		Addr:         "localhost:6379",
		PoolSize:     10,
		PoolTimeout:  30 * time.Second,
		MinIdleConns: 2,
		PingTimeout:  5 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		PoolTimeout:  cfg.PoolTimeout,
		MinIdleConns: cfg.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
