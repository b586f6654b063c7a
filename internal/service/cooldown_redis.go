package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCooldown struct {
	Client *redis.Client
	Prefix string
}

func NewRedisCooldown(client *redis.Client) *RedisCooldown {
	return &RedisCooldown{Client: client, Prefix: "cooldown:"}
}

func (c *RedisCooldown) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return c.Client.SetNX(ctx, c.Prefix+key, 1, ttl).Result()
}
