// Package pager follows page tokens on behalf of a caller, throttling requests with a token bucket.
package pager

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Fetch requests the page identified by token and returns the token of the page after it.
// An empty next token ends the iteration.
type Fetch func(ctx context.Context, token string) (next string, err error)

// Pager drives a paginated listing.
type Pager struct {
	limiter  *rate.Limiter
	maxPages int
}

// New returns a Pager issuing at most requestsPerSecond fetches per second (unlimited when not positive)
// and stopping after maxPages pages (unbounded when not positive).
func New(requestsPerSecond float64, maxPages int) *Pager {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &Pager{
		limiter:  rate.NewLimiter(limit, 1),
		maxPages: maxPages,
	}
}

// Run fetches pages starting at token until the listing is exhausted, maxPages is reached, or fetch fails.
// It returns the token of the first page not fetched, which is empty when the listing was exhausted.
func (p *Pager) Run(ctx context.Context, token string, fetch Fetch) (remaining string, err error) {
	for pages := 0; p.maxPages <= 0 || pages < p.maxPages; pages++ {
		if err := p.limiter.Wait(ctx); err != nil {
			return token, fmt.Errorf("pager: wait: %w", err)
		}
		next, err := fetch(ctx, token)
		if err != nil {
			return token, err
		}
		if next == "" {
			return "", nil
		}
		token = next
	}
	return token, nil
}
