package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// LoginChecker validates session tokens against redis, treating
// sessions older than the ttl as logged out.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (c *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	createdAtRaw, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}

	createdAtUnix, err := strconv.ParseInt(createdAtRaw, 10, 64)
	if err != nil {
		return false, err
	}

	return time.Since(time.Unix(createdAtUnix, 0)) <= c.ttl, nil
}
