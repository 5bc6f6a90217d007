package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/fwojciec/artlot"
	"github.com/fwojciec/artlot/bloom"
	"github.com/fwojciec/artlot/crawl"
	"github.com/fwojciec/artlot/fs"
	"github.com/fwojciec/artlot/jsonschema"
)

// Bloom filter sizing for the seen-sources file.
const (
	seenCapacity = 100_000
	seenFPRate   = 0.001
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	crawler := deps.Crawler
	if c.Concurrency > 0 {
		crawler.Concurrency = c.Concurrency
	}

	if c.House != "" {
		house := artlot.House(c.House)
		if !slices.Contains(deps.Selectors.List(), house) {
			fmt.Fprintf(deps.Stderr, "error: unknown house %q. Use 'artlot schemas' to see supported houses.\n", c.House)
			return artlot.Errorf(artlot.EINVALID, "unknown house %q", c.House)
		}
		crawler.House = house
	}

	if c.Check || c.CheckSchema != "" {
		validator, err := newValidator(c.CheckSchema)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", artlot.ErrorMessage(err))
			return err
		}
		crawler.Validator = validator
	}

	var seen *bloom.Filter
	if c.Seen != "" {
		var err error
		if seen, err = bloom.Load(c.Seen, seenCapacity, seenFPRate); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", artlot.ErrorMessage(err))
			return err
		}
		crawler.Seen = seen
	}

	var writers lotWriters
	var store *fs.LotStore
	if c.Out != "" {
		store = fs.NewLotStore(filepath.Dir(c.Out), filepath.Base(c.Out))
		writers = append(writers, store)
	}
	if c.Store {
		writers = append(writers, deps.Lots)
	}
	if len(writers) > 0 {
		crawler.Lots = writers
	}

	progress := func(event crawl.ProgressEvent) {
		if event.Type == crawl.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", crawl.ShortSource(event.Source, 80), artlot.ErrorMessage(event.Error))
		}
	}

	result, err := crawler.Parse(deps.Ctx, c.Sources, progress)
	if err != nil {
		if store != nil {
			_ = store.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error parsing: %v\n", err)
		return err
	}

	if store != nil {
		if err := store.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
	}
	if seen != nil {
		if err := seen.Save(c.Seen); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
	}

	enc := json.NewEncoder(deps.Stdout)
	for _, lot := range result.Lots {
		if err := enc.Encode(lot); err != nil {
			return err
		}
	}

	fmt.Fprintln(deps.Stderr, crawl.FormatResult(result))

	if result.Failed > 0 && len(result.Lots) == 0 {
		return fmt.Errorf("no lots parsed")
	}
	return nil
}

func newValidator(path string) (*jsonschema.Validator, error) {
	if path != "" {
		return jsonschema.NewValidatorFromFile(path)
	}
	return jsonschema.NewValidator()
}

// lotWriters stores each lot with every writer in turn and stops at the
// first error.
type lotWriters []artlot.LotWriter

func (w lotWriters) CreateLot(ctx context.Context, lot *artlot.Lot) error {
	for _, writer := range w {
		if err := writer.CreateLot(ctx, lot); err != nil {
			return err
		}
	}
	return nil
}
