package rod

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
)

// DefaultMaxPages is the number of lot pages a browser renders before it is
// replaced.
const DefaultMaxPages = 75

// chromeFlags keep background tabs from being throttled while a batch of lot
// pages renders.
var chromeFlags = []flags.Flag{
	"disable-background-timer-throttling",
	"disable-backgrounding-occluded-windows",
	"disable-renderer-backgrounding",
	"disable-dev-shm-usage",
	"disable-hang-monitor",
}

// BrowserManager owns the headless browser behind a Fetcher and replaces it
// after a fixed number of rendered lot pages. Chrome's memory only grows over
// a long sale.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	rendered int64
	recycles int
	closed   bool

	maxPages int64
	bin      string
	logger   *slog.Logger
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets how many lot pages a browser renders before it is
// replaced. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// WithBrowserBin sets the Chrome/Chromium executable to launch instead of
// the one rod finds or downloads.
func WithBrowserBin(path string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.bin = path
	}
}

// WithLogger logs browser launches and replacements.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(bm *BrowserManager) {
		bm.logger = logger
	}
}

// NewBrowserManager launches a headless browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(bm)
	}

	browser, lnchr, err := bm.launch()
	if err != nil {
		return nil, err
	}
	bm.browser, bm.launcher = browser, lnchr
	return bm, nil
}

// Browser returns the browser to render the next lot page with, replacing it
// first when it has rendered its share of pages. Callers report each rendered
// page with LotRendered.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if !bm.closed && bm.maxPages > 0 && bm.rendered >= bm.maxPages {
		bm.recycle()
	}
	return bm.browser
}

// LotRendered counts one rendered lot page toward the replacement threshold.
func (bm *BrowserManager) LotRendered() {
	bm.mu.Lock()
	bm.rendered++
	bm.mu.Unlock()
}

// Recycles returns how often the browser has been replaced.
func (bm *BrowserManager) Recycles() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.recycles
}

// Close shuts the browser down. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true

	err := shutdown(bm.browser, bm.launcher)
	bm.browser, bm.launcher = nil, nil
	return err
}

// LauncherPID returns the process ID of the current browser launcher, or 0
// once closed.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

func (bm *BrowserManager) launch() (*rod.Browser, *launcher.Launcher, error) {
	lnchr := launcher.New().Leakless(true).Headless(true)
	for _, f := range chromeFlags {
		lnchr = lnchr.Set(f)
	}
	if bm.bin != "" {
		lnchr = lnchr.Bin(bm.bin)
	}

	u, err := lnchr.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}

	bm.logger.Debug("browser launched", "pid", lnchr.PID())
	return browser, lnchr, nil
}

// recycle swaps in a fresh browser. If the launch fails the current browser
// stays and the next call tries again. Must be called with mu held.
func (bm *BrowserManager) recycle() {
	browser, lnchr, err := bm.launch()
	if err != nil {
		bm.logger.Warn("browser recycle failed", "rendered", bm.rendered, "error", err)
		return
	}

	_ = shutdown(bm.browser, bm.launcher)
	bm.logger.Info("browser recycled", "rendered", bm.rendered, "pid", lnchr.PID())

	bm.browser, bm.launcher = browser, lnchr
	bm.rendered = 0
	bm.recycles++
}

func shutdown(browser *rod.Browser, lnchr *launcher.Launcher) error {
	var err error
	if browser != nil {
		err = browser.Close()
	}
	if lnchr != nil {
		lnchr.Kill()
	}
	return err
}
