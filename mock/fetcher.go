package mock

import (
	"context"

	"github.com/fwojciec/artlot"
)

var _ artlot.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of artlot.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ artlot.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of artlot.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ artlot.URLFilter = (*URLFilter)(nil)

// URLFilter is a mock implementation of artlot.URLFilter.
type URLFilter struct {
	AddFn  func(url string)
	TestFn func(url string) bool
}

func (f *URLFilter) Add(url string) {
	f.AddFn(url)
}

func (f *URLFilter) Test(url string) bool {
	return f.TestFn(url)
}
