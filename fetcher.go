package artlot

import "context"

// Fetcher retrieves HTML from lot page URLs.
// Implementations may use browser automation for JavaScript-rendered pages.
type Fetcher interface {
	// Fetch retrieves the page and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// URLFilter reports whether a URL has been seen before, so batch runs can skip
// duplicates. False positives are acceptable; false negatives are not.
type URLFilter interface {
	Add(url string)
	Test(url string) bool
}
