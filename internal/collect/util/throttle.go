package util

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// Throttle spaces outgoing requests per hostname so hammering one job
// API does not starve or block the other sources. Buckets are created
// lazily; URLs without a parseable host share one catch-all bucket.
type Throttle struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

func NewThrottle(reqPerSec float64, burst int) *Throttle {
	return &Throttle{
		limit:   rate.Limit(reqPerSec),
		burst:   burst,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until the URL's host has a token available or ctx ends.
func (t *Throttle) Wait(ctx context.Context, rawURL string) error {
	host := ""
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Hostname()
	}

	t.mu.Lock()
	lim, ok := t.buckets[host]
	if !ok {
		lim = rate.NewLimiter(t.limit, t.burst)
		t.buckets[host] = lim
	}
	t.mu.Unlock()

	return lim.Wait(ctx)
}
