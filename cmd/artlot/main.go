package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/artlot"
	"github.com/fwojciec/artlot/crawl"
	"github.com/fwojciec/artlot/fs"
	"github.com/fwojciec/artlot/goquery"
	artlothttp "github.com/fwojciec/artlot/http"
	"github.com/fwojciec/artlot/pipeline"
	"github.com/fwojciec/artlot/rod"
	"github.com/fwojciec/artlot/schema"
	artslog "github.com/fwojciec/artlot/slog"
	"github.com/fwojciec/artlot/sqlite"
	"github.com/fwojciec/artlot/yaml"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is fine.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	LotService  artlot.LotService
	SaleService artlot.SaleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("artlot"),
		kong.Description("Extract structured records from auction lot pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'artlot --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := m.wireRegistries(deps, cli.Config); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", artlot.ErrorMessage(err))
		return err
	}

	if cmd != "schemas" && (cmd != "parse" || cli.Parse.Store) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set ARTLOT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.LotService = artslog.NewLoggingLotService(sqlite.NewLotService(m.DB), deps.Logger)
		m.SaleService = sqlite.NewSaleService(m.DB)
		deps.Lots = m.LotService
		deps.Sales = m.SaleService
	}

	if cmd == "parse" {
		closeFetchers, err := m.wireCrawler(deps, &cli.Parse)
		if err != nil {
			return err
		}
		defer closeFetchers()
	}

	return kongCtx.Run(deps)
}

// wireRegistries builds the schema and selector registries, applying the
// configuration file when one is given.
func (m *Main) wireRegistries(deps *Dependencies, configPath string) error {
	cfg := &yaml.Config{}
	if configPath != "" {
		var err error
		if cfg, err = yaml.Load(configPath); err != nil {
			return err
		}
	}

	selectors := goquery.NewDefaultRegistry()
	for house, css := range cfg.Overrides() {
		if err := selectors.Override(house, css); err != nil {
			return err
		}
	}

	deps.Schemas = schema.Default(cfg.Schema())
	deps.Selectors = artslog.NewLoggingRegistry(selectors, goquery.NewDetector(), deps.Logger)
	return nil
}

// wireCrawler creates the fetchers and the crawler of the parse command. The
// returned function releases the fetchers.
func (m *Main) wireCrawler(deps *Dependencies, c *ParseCmd) (func(), error) {
	var fetchers []artlot.Fetcher
	closeAll := func() {
		for _, f := range fetchers {
			f.Close()
		}
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpFetcher := artslog.NewLoggingFetcher(artlothttp.NewFetcher(artlothttp.WithTimeout(timeout)), deps.Logger)
	fetchers = append(fetchers, httpFetcher)

	var fetcher artlot.Fetcher = httpFetcher
	if c.Browser != "never" && hasRemote(c.Sources) {
		browserOpts := []rod.ManagerOption{rod.WithLogger(deps.Logger)}
		if c.BrowserBin != "" {
			browserOpts = append(browserOpts, rod.WithBrowserBin(c.BrowserBin))
		}
		rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(timeout), rod.WithBrowser(browserOpts...))
		if err != nil {
			closeAll()
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		logged := artslog.NewLoggingFetcher(rodFetcher, deps.Logger)
		fetchers = append(fetchers, logged)

		fetcher = logged
		if c.Browser == "auto" {
			probeCtx, cancel := context.WithTimeout(deps.Ctx, 2*timeout)
			fetcher = ProbeFetcher(probeCtx, firstRemote(c.Sources), httpFetcher, logged, deps.Selectors)
			cancel()
		}
	}

	deps.Crawler = &crawl.Crawler{
		Fetcher:     fetcher,
		Files:       fs.NewFetcher(),
		Selectors:   deps.Selectors,
		Schemas:     deps.Schemas,
		Assembler:   pipeline.NewAssembler(deps.Logger),
		RateLimiter: crawl.NewDomainLimiter(c.Rate),
		Logger:      deps.Logger,
		RetryDelays: crawl.DefaultRetryDelays(),
	}
	return closeAll, nil
}

func hasRemote(sources []string) bool {
	return firstRemote(sources) != ""
}

func firstRemote(sources []string) string {
	for _, src := range sources {
		if crawl.IsRemote(src) {
			return src
		}
	}
	return ""
}

// defaultTimeout bounds a fetch when no timeout flag is given.
const defaultTimeout = 10 * time.Second

func defaultDBPath() string {
	if path := os.Getenv("ARTLOT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "artlot.db"
	}
	dir := filepath.Join(home, ".artlot")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "artlot.db")
}
