// Package crawl provides batch parsing of lot pages.
// It coordinates loading, house detection, fragment selection, record
// assembly and storage of many lot pages at once.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fwojciec/artlot"
	"github.com/fwojciec/artlot/pipeline"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of sources processed at once when no
// limit is set.
const DefaultConcurrency = 10

// Crawler orchestrates the parsing of lot pages.
type Crawler struct {
	// Fetcher loads http(s) sources.
	Fetcher artlot.Fetcher
	// Files loads every other source. Nil rejects local sources.
	Files artlot.Fetcher

	Selectors artlot.SelectorRegistry
	Schemas   artlot.SchemaRegistry
	Assembler *pipeline.Assembler

	// Optional collaborators.
	Lots        artlot.LotWriter
	Validator   artlot.LotValidator
	Seen        artlot.URLFilter
	RateLimiter artlot.DomainLimiter
	Logger      *slog.Logger

	// House forces the house of every source. HouseUnknown detects it per
	// page.
	House       artlot.House
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a batch.
type Result struct {
	// Lots holds the parsed lots in source order.
	Lots    []*artlot.Lot
	Stored  int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// parseResult holds the outcome of processing a single source.
type parseResult struct {
	position int
	source   string
	lot      *artlot.Lot
	err      error
}

// Parse loads every source and assembles one lot per page. Sources the
// Seen filter already knows are skipped. Per-source failures are counted
// and reported through progress; the returned error is reserved for
// cancellation.
func (c *Crawler) Parse(ctx context.Context, sources []string, progress ProgressFunc) (*Result, error) {
	result := &Result{}
	notify := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}

	pending := make([]string, 0, len(sources))
	for _, src := range sources {
		if c.Seen != nil {
			if c.Seen.Test(src) {
				result.Skipped++
				notify(ProgressEvent{Type: ProgressSkipped, Source: src})
				continue
			}
			c.Seen.Add(src)
		}
		pending = append(pending, src)
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(pending)
	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan parseResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, src := range pending {
			g.Go(func() error {
				resultCh <- c.processSource(gctx, i, src)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]parseResult, total)
	for r := range resultCh {
		n := int(completed.Add(1))
		results[r.position] = r
		if r.err != nil {
			notify(ProgressEvent{Type: ProgressFailed, Completed: n, Total: total, Source: r.source, Error: r.err})
			continue
		}
		notify(ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, Source: r.source})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, r := range results {
		if r.err != nil {
			result.Failed++
			continue
		}
		if c.Lots != nil {
			if err := c.Lots.CreateLot(ctx, r.lot); err != nil {
				result.Failed++
				notify(ProgressEvent{Type: ProgressFailed, Completed: total, Total: total, Source: r.source, Error: err})
				continue
			}
			result.Stored++
		}
		result.Lots = append(result.Lots, r.lot)
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return result, nil
}

// ParsePage assembles the lot of a page that is already loaded. An empty
// pageURL restricts house detection to the markup.
func (c *Crawler) ParsePage(html string, pageURL string) (*artlot.Lot, error) {
	var selector artlot.FragmentSelector
	if c.House != artlot.HouseUnknown {
		selector = c.Selectors.Get(c.House)
	} else {
		selector = c.Selectors.GetForHTML(html, pageURL)
	}
	if selector == nil {
		if c.House != artlot.HouseUnknown {
			return nil, artlot.Errorf(artlot.EINVALID, "no selector for house %q", c.House)
		}
		return nil, artlot.Errorf(artlot.EINVALID, "unrecognized auction house")
	}

	schema := c.Schemas.Get(selector.House())
	if schema == nil {
		return nil, artlot.Errorf(artlot.EINVALID, "no schema for house %q", selector.House())
	}

	fragments, err := selector.Select(html, pageURL)
	if err != nil {
		return nil, err
	}

	assembler := c.Assembler
	if assembler == nil {
		assembler = &pipeline.Assembler{}
	}
	return assembler.Assemble(schema, fragments).Lot(), nil
}

// processSource loads and parses a single source.
func (c *Crawler) processSource(ctx context.Context, position int, src string) parseResult {
	result := parseResult{position: position, source: src}

	html, pageURL, err := c.load(ctx, src)
	if err != nil {
		result.err = err
		return result
	}

	lot, err := c.ParsePage(html, pageURL)
	if err != nil {
		result.err = err
		return result
	}
	lot.Source = src
	lot.ContentHash = PageHash(html)
	if c.Validator != nil {
		if err := c.Validator.ValidateLot(lot); err != nil {
			result.err = err
			return result
		}
	}
	result.lot = lot
	return result
}

// load returns the HTML of a source and the page address to record for it.
// Local files have no page address.
func (c *Crawler) load(ctx context.Context, src string) (string, string, error) {
	if !IsRemote(src) {
		if c.Files == nil {
			return "", "", artlot.Errorf(artlot.EINVALID, "local sources are not supported: %s", src)
		}
		html, err := c.Files.Fetch(ctx, src)
		return html, "", err
	}

	u, err := url.Parse(src)
	if err != nil {
		return "", "", artlot.Errorf(artlot.EINVALID, "invalid source URL %q: %v", src, err)
	}
	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", "", err
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, src, c.Fetcher.Fetch, c.Logger, delays)
	if err != nil {
		return "", "", err
	}
	return html, src, nil
}

// IsRemote reports whether a source is an http(s) address rather than a
// local path.
func IsRemote(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
