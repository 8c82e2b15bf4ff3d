package thesaurus

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/lazypower/loci/internal/association"
)

// Cached memoizes successful lookups and collapses concurrent lookups of the
// same word into one call. Failures are never cached.
type Cached struct {
	next    association.SynonymLookup
	cache   *expirable.LRU[string, []association.SynonymSet]
	group   singleflight.Group
	timeout time.Duration
}

// NewCached wraps next with an LRU of the given size and entry TTL. A shared
// lookup is detached from the caller that started it and bounded by timeout
// instead; timeout <= 0 leaves it unbounded.
func NewCached(next association.SynonymLookup, size int, ttl, timeout time.Duration) *Cached {
	if size <= 0 {
		size = 1024
	}
	return &Cached{
		next:    next,
		cache:   expirable.NewLRU[string, []association.SynonymSet](size, nil, ttl),
		timeout: timeout,
	}
}

// Lookup returns cached synonym sets or fetches them from the wrapped lookup.
func (c *Cached) Lookup(ctx context.Context, word string) ([]association.SynonymSet, error) {
	key := Lemma(word)
	if sets, ok := c.cache.Get(key); ok {
		return sets, nil
	}

	// Every waiter shares this call, so one caller going away must not
	// cancel it for the rest.
	flight := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		fctx := flight
		if c.timeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(flight, c.timeout)
			defer cancel()
		}
		sets, err := c.next.Lookup(fctx, word)
		if err != nil {
			return nil, err
		}
		c.cache.Add(key, sets)
		return sets, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		sets, _ := res.Val.([]association.SynonymSet)
		return sets, nil
	}
}

// Len returns the number of cached words.
func (c *Cached) Len() int { return c.cache.Len() }

// Purge drops every cached entry.
func (c *Cached) Purge() { c.cache.Purge() }
