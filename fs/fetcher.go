package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/fwojciec/artlot"
)

// Ensure Fetcher implements artlot.Fetcher at compile time.
var _ artlot.Fetcher = (*Fetcher)(nil)

// Fetcher reads saved lot pages from the local filesystem. Sources are plain
// paths or file:// URLs.
type Fetcher struct{}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch reads the page at path.
// Returns ENOTFOUND if the file does not exist.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path = strings.TrimPrefix(path, "file://")

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", artlot.Errorf(artlot.ENOTFOUND, "lot page not found: %s", path)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
