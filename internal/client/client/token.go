package client

import (
	"context"
	"fmt"

	"github.com/chromestatus/csclient/internal/client/models"
)

// TokenSource obtains a fresh bearer token. It is the sign-in provider the
// client collaborates with; its errors are returned to callers unchanged.
type TokenSource interface {
	Token(ctx context.Context) (models.Token, error)
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) (models.Token, error)

func (f TokenSourceFunc) Token(ctx context.Context) (models.Token, error) {
	return f(ctx)
}

const refreshKey = "token"

// Token returns the token currently held by the client.
func (c *CSClient) Token() models.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// SetToken replaces the held token, e.g. with one restored from the cache.
func (c *CSClient) SetToken(t models.Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = t
}

// ClearToken discards the held token.
func (c *CSClient) ClearToken() {
	c.SetToken(models.Token{})
}

// EnsureTokenIsValid returns immediately while the held token is unexpired.
// Otherwise it obtains a new one from the TokenSource before returning.
// Concurrent callers that see an expired token wait on the same refresh.
// The refresh runs detached from any single caller's cancellation and is
// bounded by the client's request timeout; each caller stops waiting when
// its own ctx is done.
func (c *CSClient) EnsureTokenIsValid(ctx context.Context) error {
	if !c.Token().Expired(c.now()) {
		return nil
	}
	if c.tokenSource == nil {
		return ErrNoTokenSource
	}

	refreshCtx := context.WithoutCancel(ctx)
	ch := c.refresh.DoChan(refreshKey, func() (any, error) {
		// A refresh that finished while this caller queued is good enough.
		if current := c.Token(); !current.Expired(c.now()) {
			return current, nil
		}

		rctx := refreshCtx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			rctx, cancel = context.WithTimeout(rctx, c.timeout)
			defer cancel()
		}

		fresh, err := c.tokenSource.Token(rctx)
		if err != nil {
			return nil, err
		}
		if fresh.Expired(c.now()) {
			return nil, fmt.Errorf("%w: token source returned an expired token", ErrUnauthorized)
		}

		c.SetToken(fresh)
		c.logger.Debug(rctx, "token refreshed", "expires_at", fresh.ExpiresAt)
		return fresh, nil
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}
