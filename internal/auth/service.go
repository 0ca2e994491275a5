package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/dvukovic/trainlog/pkg"
)

const (
	// AuthTokenHeader carries the session token on authenticated requests.
	AuthTokenHeader = "X-TRAINLOG-TOKEN"

	sessionKeyPrefix = "trainlog-session||"
	tokensSetKey     = "trainlog-sessions"

	tokenLength = 35

	// DefaultTTL is how long a login session stays valid.
	DefaultTTL = 7 * 24 * time.Hour
)

// Service manages login session tokens in redis. Besides the
// token to username mapping, all live tokens are tracked in a
// set so stale members can be swept after the keys expire.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration

	// RandStringFunc can be swapped in tests for deterministic tokens
	RandStringFunc func(length int) (string, error)
}

func NewService(ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		redisClient:    redisClient,
		ttl:            ttl,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (s *Service) Login(ctx context.Context, username string) (string, error) {
	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	if err := s.redisClient.Set(ctx, sessionKey(token), username, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("track session token: %w", err)
	}

	return token, nil
}

func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	removed, err := s.redisClient.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("remove session: %w", err)
	}
	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, fmt.Errorf("untrack session token: %w", err)
	}

	return removed > 0, nil
}

// ScanAndClean drops tokens from the tracking set whose session
// keys have already expired.
func (s *Service) ScanAndClean(ctx context.Context) {
	tokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("sessions cleanup, get tokens: %s", err)
		return
	}

	var cleaned int
	for _, token := range tokens {
		exists, err := s.redisClient.Exists(ctx, sessionKey(token)).Result()
		if err != nil {
			log.Errorf("sessions cleanup, check token: %s", err)
			continue
		}
		if exists > 0 {
			continue
		}
		if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("sessions cleanup, remove token: %s", err)
			continue
		}
		cleaned++
	}

	if cleaned > 0 {
		log.Debugf("sessions cleanup, removed %d expired tokens", cleaned)
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}
