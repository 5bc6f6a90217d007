// Package rod provides a browser-based implementation of artlot.Fetcher for
// lot pages that are filled in by JavaScript.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/artlot"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page fetch, including load-more clicks.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxClicks bounds how often a load-more control is clicked per page.
const DefaultMaxClicks = 50

// settleDelay is how long the page must stay quiet after a click.
const settleDelay = 500 * time.Millisecond

// Ensure Fetcher implements artlot.Fetcher at compile time.
var _ artlot.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager   *BrowserManager
	timeout   time.Duration
	waitFor   string
	loadMore  string
	maxClicks int
	managed   []ManagerOption
	closed    atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout of a single fetch.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithWaitFor makes Fetch wait until an element matching the CSS selector
// is present before capturing the page.
func WithWaitFor(selector string) Option {
	return func(f *Fetcher) {
		f.waitFor = selector
	}
}

// WithLoadMore makes Fetch click the element matching the CSS selector until
// it disappears or has been clicked maxClicks times. Listing pages that
// reveal lots in batches need this.
func WithLoadMore(selector string, maxClicks int) Option {
	return func(f *Fetcher) {
		f.loadMore = selector
		f.maxClicks = maxClicks
	}
}

// WithBrowser passes options to the browser manager, for example the page
// count after which the browser is recycled.
func WithBrowser(opts ...ManagerOption) Option {
	return func(f *Fetcher) {
		f.managed = append(f.managed, opts...)
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		maxClicks: DefaultMaxClicks,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(f.managed...)
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", artlot.Errorf(artlot.EINVALID, "fetcher is closed")
	}

	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if f.waitFor != "" {
		if _, err := page.Element(f.waitFor); err != nil {
			return "", err
		}
	}

	if f.loadMore != "" {
		for range f.maxClicks {
			has, el, err := page.Has(f.loadMore)
			if err != nil {
				return "", err
			}
			if !has {
				break
			}
			// A hidden or detached control means everything is loaded
			if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
				break
			}
			if err := page.WaitStable(settleDelay); err != nil {
				return "", err
			}
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.LotRendered()
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the current browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Recycles returns how often the browser has been replaced.
func (f *Fetcher) Recycles() int {
	return f.manager.Recycles()
}
