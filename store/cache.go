package store

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Cached wraps a lazily dialed Store behind a time-to-live. The underlying
// client is established on first use and re-dialed once the TTL elapses;
// expiry is checked on each call.
type Cached struct {
	mu      sync.Mutex
	ttl     time.Duration
	dial    func(ctx context.Context) (Store, error)
	st      Store
	expires time.Time

	now func() time.Time
}

// NewCached builds a Cached store around dial.
func NewCached(ttl time.Duration, dial func(ctx context.Context) (Store, error)) *Cached {
	return &Cached{ttl: ttl, dial: dial, now: time.Now}
}

func (c *Cached) client(ctx context.Context) (Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st != nil && c.now().Before(c.expires) {
		return c.st, nil
	}
	st, err := c.dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("dial store: %w", err)
	}
	c.st = st
	c.expires = c.now().Add(c.ttl)
	return st, nil
}

// Read implements Store.
func (c *Cached) Read(ctx context.Context, tab string) ([]map[string]string, error) {
	st, err := c.client(ctx)
	if err != nil {
		return nil, err
	}
	return st.Read(ctx, tab)
}

// Append implements Store.
func (c *Cached) Append(ctx context.Context, tab string, rows [][]string) error {
	st, err := c.client(ctx)
	if err != nil {
		return err
	}
	return st.Append(ctx, tab, rows)
}

// Delete implements Store.
func (c *Cached) Delete(ctx context.Context, tab string, pos int) error {
	st, err := c.client(ctx)
	if err != nil {
		return err
	}
	return st.Delete(ctx, tab, pos)
}
