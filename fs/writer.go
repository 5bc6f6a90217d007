// Package fs provides file-based loading and storage of lots.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/artlot"
)

// LotPath returns the relative file path of a lot: one directory per house
// and sale, one JSON file per lot.
// Example: christies, sale 14240, lot 16 → christies/14240/16.json
func LotPath(lot *artlot.Lot) string {
	sale := sanitize(lot.SaleID)
	if sale == "" {
		sale = "unknown-sale"
	}
	name := sanitize(lot.LotID)
	if name == "" {
		name = sanitize(lot.ContentHash)
	}
	if name == "" {
		name = "lot"
	}
	return filepath.Join(sanitize(string(lot.House)), sale, name+".json")
}

// sanitize keeps a path element to letters, digits, dots, dashes and
// underscores.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-.")
}

// FormatLot formats a lot as indented JSON followed by a newline.
func FormatLot(lot *artlot.Lot) ([]byte, error) {
	data, err := json.MarshalIndent(lot, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Ensure Writer implements artlot.LotWriter at compile time.
var _ artlot.LotWriter = (*Writer)(nil)

// Writer writes lots as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateLot writes a lot to disk as a JSON file. The lot's ID becomes its
// path relative to the base directory, without the extension.
func (w *Writer) CreateLot(ctx context.Context, lot *artlot.Lot) error {
	if err := lot.Validate(); err != nil {
		return err
	}

	relPath := LotPath(lot)
	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	lot.ID = filepath.ToSlash(strings.TrimSuffix(relPath, ".json"))
	if lot.CreatedAt.IsZero() {
		lot.CreatedAt = time.Now().UTC()
	}

	data, err := FormatLot(lot)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}
