package metadata

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// TokenSource fetches a fresh access token.
type TokenSource func(ctx context.Context) (*oauth2.Token, error)

// TokenCache holds one access token until shortly before it expires.
type TokenCache struct {
	mu        sync.Mutex
	fetch     TokenSource
	leeway    time.Duration
	now       func() time.Time
	token     string
	expiresAt time.Time
}

func NewTokenCache(fetch TokenSource, leeway time.Duration) *TokenCache {
	return &TokenCache{
		fetch:  fetch,
		leeway: leeway,
		now:    time.Now,
	}
}

func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, nil
	}

	tok, err := c.fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch access token: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("fetch access token: empty token")
	}

	expiry := tok.Expiry
	if expiry.IsZero() {
		expiry = c.now().Add(time.Hour)
	}

	c.token = tok.AccessToken
	c.expiresAt = expiry.Add(-c.leeway)

	return c.token, nil
}

// Invalidate forces the next Token call to fetch a new token.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expiresAt = time.Time{}
}
