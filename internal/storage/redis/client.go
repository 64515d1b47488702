package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Client — тонкая обёртка над go-redis для ledger'а кодов и сессий
type Client struct {
	*redis.Client
}

func NewClient(addr, password string, db int) *Client {
	return &Client{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// FromRedis оборачивает готовый клиент (используется в тестах с redismock)
func FromRedis(c *redis.Client) *Client {
	return &Client{Client: c}
}

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.Client.Close()
}
