// Package bloom provides lot source deduplication using Bloom filters.
package bloom

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/artlot"
)

// Ensure Filter implements artlot.URLFilter at compile time.
var _ artlot.URLFilter = (*Filter)(nil)

// Filter wraps a Bloom filter for source deduplication. Sources are
// normalized before hashing, so trivially different spellings of one lot
// page count as the same page. Filter is safe for concurrent use.
type Filter struct {
	mu sync.RWMutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a source to the filter.
func (f *Filter) Add(src string) {
	key := Normalize(src)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(key)
}

// Test returns true if the source might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(src string) bool {
	key := Normalize(src)
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.f.TestString(key)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return uint(f.f.ApproximatedSize())
}

// WriteTo serializes the filter so later runs can skip sources seen before.
func (f *Filter) WriteTo(w io.Writer) (int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.f.WriteTo(w)
}

// ReadFrom replaces the filter's contents with a serialized filter.
func (f *Filter) ReadFrom(r io.Reader) (int64, error) {
	g := &bloom.BloomFilter{}
	n, err := g.ReadFrom(r)
	if err != nil {
		return n, artlot.Errorf(artlot.EINVALID, "invalid filter data: %v", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f = g
	return n, nil
}

// Load reads a filter saved with Save. A missing file yields a new filter
// sized for n items with the given false positive rate.
func Load(path string, n uint, fpRate float64) (*Filter, error) {
	f := NewFilter(n, fpRate)
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return f, nil
	} else if err != nil {
		return nil, err
	}
	defer file.Close()

	if _, err := f.ReadFrom(file); err != nil {
		return nil, err
	}
	return f, nil
}

// Save writes the filter to path, creating parent directories.
func (f *Filter) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Normalize returns the deduplication key of a source. URLs lose their
// fragment and trailing slash and get a lowercase scheme and host; local
// paths are cleaned.
func Normalize(src string) string {
	src = strings.TrimSpace(src)
	lower := strings.ToLower(src)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return filepath.Clean(strings.TrimPrefix(src, "file://"))
	}

	u, err := url.Parse(src)
	if err != nil {
		return src
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	return u.String()
}
