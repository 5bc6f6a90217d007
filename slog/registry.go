package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/artlot"
)

// Ensure LoggingRegistry implements artlot.SelectorRegistry.
var _ artlot.SelectorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a SelectorRegistry with logging for house detection.
type LoggingRegistry struct {
	next     artlot.SelectorRegistry
	detector artlot.HouseDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next artlot.SelectorRegistry, detector artlot.HouseDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(house artlot.House) artlot.FragmentSelector {
	return r.next.Get(house)
}

// GetForHTML detects the house, logs it, and returns the appropriate selector.
func (r *LoggingRegistry) GetForHTML(html string, pageURL string) artlot.FragmentSelector {
	begin := time.Now()
	house := r.detector.Detect(html, pageURL)
	houseName := string(house)
	if house == artlot.HouseUnknown {
		houseName = "(unknown)"
	}
	r.logger.Info("house detection",
		"house", houseName,
		"url", pageURL,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html, pageURL)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(selector artlot.FragmentSelector) {
	r.next.Register(selector)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []artlot.House {
	return r.next.List()
}
