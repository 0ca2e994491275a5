package auth

import (
	"context"
	"errors"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Checker resolves a session token to the username it belongs to.
type Checker interface {
	UserFromToken(ctx context.Context, token string) (string, error)
}

const (
	loginCacheSizeBytes  = 1024 * 1024
	loginCacheTTLSeconds = 60
)

// LoginChecker answers token lookups from a small in-process cache
// before falling back to redis. A logged-out token can linger in the
// cache for up to loginCacheTTLSeconds.
type LoginChecker struct {
	cache       *freecache.Cache
	redisClient *redis.Client
}

var _ Checker = (*LoginChecker)(nil)

func NewLoginChecker(redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		cache:       freecache.NewCache(loginCacheSizeBytes),
		redisClient: redisClient,
	}
}

func (c *LoginChecker) UserFromToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNotLoggedIn
	}

	if cached, err := c.cache.Get([]byte(token)); err == nil {
		return string(cached), nil
	}

	username, err := c.redisClient.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", err
	}

	_ = c.cache.Set([]byte(token), []byte(username), loginCacheTTLSeconds)

	return username, nil
}
