package auth

import "context"

// LoginTestChecker is a Checker for tests, backed by a plain map.
type LoginTestChecker struct {
	LoggedSessions map[string]string
}

var _ Checker = (*LoginTestChecker)(nil)

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]string{},
	}
}

func (c *LoginTestChecker) UserFromToken(_ context.Context, token string) (string, error) {
	username, ok := c.LoggedSessions[token]
	if !ok {
		return "", ErrNotLoggedIn
	}
	return username, nil
}
