package main

import (
	"context"

	"github.com/fwojciec/artlot"
	"github.com/fwojciec/artlot/crawl"
)

// ProbeFetcher probes a lot page to determine which fetcher to use for the
// batch.
//
// Decision flow:
//   - HTTP fetch fails → Use Rod
//   - Rod fetch fails → Use HTTP (best effort)
//   - Rendering reveals more fields than the static page → Use Rod
//   - Otherwise → Use HTTP
//
// Always returns a valid fetcher; never fails.
func ProbeFetcher(
	ctx context.Context,
	sourceURL string,
	httpFetcher artlot.Fetcher,
	rodFetcher artlot.Fetcher,
	selectors artlot.SelectorRegistry,
) artlot.Fetcher {
	staticHTML, err := httpFetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return rodFetcher
	}

	renderedHTML, err := rodFetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return httpFetcher
	}

	if crawl.FragmentsDiffer(staticHTML, renderedHTML, sourceURL, selectors) {
		return rodFetcher
	}
	return httpFetcher
}
