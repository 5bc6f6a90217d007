package crawl

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/artlot"
	"golang.org/x/time/rate"
)

var _ artlot.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests per auction site. All hosts of a site
// ("www.christies.com", "onlineonly.christies.com") draw from one token
// bucket with a burst of 1, while different sites proceed independently.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	siteRPS  map[string]float64
}

// LimiterOption configures a DomainLimiter.
type LimiterOption func(*DomainLimiter)

// WithSiteRate overrides the request rate of one site, given as a host of
// that site.
func WithSiteRate(host string, rps float64) LimiterOption {
	return func(d *DomainLimiter) {
		d.siteRPS[Site(host)] = rps
	}
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each site. A rate of zero or less disables limiting.
func NewDomainLimiter(rps float64, opts ...LimiterOption) *DomainLimiter {
	d := &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		siteRPS:  make(map[string]float64),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Wait blocks until the site of host may receive another request.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	site := Site(host)

	d.mu.Lock()
	limiter, ok := d.limiters[site]
	if !ok {
		rps, ok := d.siteRPS[site]
		if !ok {
			rps = d.rps
		}
		limit := rate.Inf
		if rps > 0 {
			limit = rate.Limit(rps)
		}
		limiter = rate.NewLimiter(limit, 1)
		d.limiters[site] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// Site returns the site a host belongs to: its last two labels, or three
// when the second to last is a short second-level label as in "co.uk".
// IP addresses keep their port, so local servers stay distinct.
func Site(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	name := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		name = h
	}
	if net.ParseIP(strings.Trim(name, "[]")) != nil {
		return host
	}

	labels := strings.Split(strings.TrimSuffix(name, "."), ".")
	n := 2
	if len(labels) > 2 && len(labels[len(labels)-2]) <= 3 && len(labels[len(labels)-1]) == 2 {
		n = 3
	}
	if len(labels) <= n {
		return strings.Join(labels, ".")
	}
	return strings.Join(labels[len(labels)-n:], ".")
}
