package thesaurus

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/lazypower/loci/internal/association"
)

// ErrRateLimited is returned when a remote lookup would exceed the budget.
var ErrRateLimited = errors.New("thesaurus: rate limited")

// Limited guards a remote lookup with a token bucket. Calls over budget
// fail immediately instead of queueing, so the generator falls back to
// string distance rather than stalling.
type Limited struct {
	next    association.SynonymLookup
	limiter *rate.Limiter
}

// NewLimited allows perMinute lookups with the given burst. perMinute <= 0
// disables limiting.
func NewLimited(next association.SynonymLookup, perMinute, burst int) *Limited {
	if burst <= 0 {
		burst = 5
	}
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(float64(perMinute) / 60.0)
	}
	return &Limited{next: next, limiter: rate.NewLimiter(limit, burst)}
}

func (l *Limited) Lookup(ctx context.Context, word string) ([]association.SynonymSet, error) {
	if !l.limiter.Allow() {
		slog.Warn("thesaurus.rate_limited", "word", word)
		return nil, ErrRateLimited
	}
	return l.next.Lookup(ctx, word)
}
