package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/artlot"
	"github.com/fwojciec/artlot/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Lots      artlot.LotService
	Sales     artlot.SaleService
	Schemas   artlot.SchemaRegistry
	Selectors artlot.SelectorRegistry
	Crawler   *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" type:"path" env:"ARTLOT_CONFIG" help:"YAML file with keyword tables and selector overrides"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`

	Parse   ParseCmd   `cmd:"" help:"Parse lot pages into records"`
	List    ListCmd    `cmd:"" help:"List stored lots"`
	Show    ShowCmd    `cmd:"" help:"Show a stored lot"`
	Sales   SalesCmd   `cmd:"" help:"List stored sales"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored lot or sale"`
	Schemas SchemasCmd `cmd:"" help:"List supported houses and their fields"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Sources     []string      `arg:"" required:"" help:"Lot page URLs or local HTML files"`
	House       string        `short:"H" help:"Force the auction house instead of detecting it"`
	Store       bool          `short:"s" help:"Store lots in the database"`
	Out         string        `short:"o" type:"path" help:"Write lots as JSON files below this directory"`
	Browser     string        `short:"b" enum:"never,auto,always" default:"never" help:"Render remote pages in a browser (never, auto, always)"`
	BrowserBin  string        `type:"path" env:"ARTLOT_BROWSER_BIN" help:"Chrome or Chromium executable for --browser"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent parse limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Rate        float64       `default:"1" help:"Requests per second per domain"`
	Seen        string        `type:"path" help:"Bloom filter file of sources already parsed; they are skipped"`
	Check       bool          `help:"Validate every lot against the lot JSON Schema"`
	CheckSchema string        `type:"existingfile" help:"Validate against this JSON Schema instead of the built-in one"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	House string `short:"H" help:"Only lots of this house"`
	Sale  string `short:"S" help:"Only lots of this sale ID"`
	Limit int    `short:"n" default:"50" help:"Maximum number of lots"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Lot ID"`
}

// SalesCmd is the "sales" subcommand.
type SalesCmd struct {
	House string `short:"H" help:"Only sales of this house"`
	Limit int    `short:"n" default:"50" help:"Maximum number of sales"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Lot ID, or sale ID with --sale"`
	Sale  bool   `help:"Delete a sale and all of its lots"`
	Force bool   `help:"Confirm deletion"`
}

// SchemasCmd is the "schemas" subcommand.
type SchemasCmd struct {
	Fields bool `short:"f" help:"Also list the fields of every house"`
}
