package bloom_test

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/artlot"
	"github.com/fwojciec/artlot/bloom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// URL not yet added should return false
	assert.False(t, f.Test("https://www.christies.com/lot/1"))

	// Add URL
	f.Add("https://www.christies.com/lot/1")

	// Now it should return true
	assert.True(t, f.Test("https://www.christies.com/lot/1"))

	// Different URL should still return false
	assert.False(t, f.Test("https://www.christies.com/lot/2"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// Empty filter should have count near 0
	assert.Equal(t, uint(0), f.EstimatedCount())

	// Add some URLs
	f.Add("https://www.christies.com/lot/1")
	f.Add("https://www.christies.com/lot/2")
	f.Add("https://www.christies.com/lot/3")

	// Estimated count should be approximately 3
	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	url := "https://www.christies.com/lot/1"

	f.Add(url)
	countAfterFirst := f.EstimatedCount()

	// Adding the same URL multiple times should not change the filter
	f.Add(url)
	f.Add(url)
	f.Add(url)

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
	assert.True(t, f.Test(url))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	// Add 10k URLs
	for i := range numItems {
		f.Add(fmt.Sprintf("https://www.phillips.com/detail/added/%d", i))
	}

	// Test with 10k URLs that were NOT added
	falsePositives := 0
	for i := range testProbes {
		url := fmt.Sprintf("https://www.phillips.com/detail/notadded/%d", i)
		if f.Test(url) {
			falsePositives++
		}
	}

	// False positive rate should be approximately 1%
	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}

func TestFilter_NormalizesSources(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	f.Add("https://www.christies.com/lotfinder/lot/6071488")

	assert.True(t, f.Test("HTTPS://WWW.Christies.com/lotfinder/lot/6071488/"))
	assert.True(t, f.Test("https://www.christies.com/lotfinder/lot/6071488#details"))
	assert.False(t, f.Test("https://www.christies.com/lotfinder/lot/6071489"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"https://WWW.PHILLIPS.COM/detail/x/UK030217/1/", "https://www.phillips.com/detail/x/UK030217/1"},
		{"  https://www.christies.com/lot/1#top ", "https://www.christies.com/lot/1"},
		{"https://www.christies.com/lot/1?intObjectID=6071488", "https://www.christies.com/lot/1?intObjectID=6071488"},
		{"pages/../pages/lot.html", filepath.Clean("pages/lot.html")},
		{"file://pages/lot.html", filepath.Clean("pages/lot.html")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bloom.Normalize(tt.in))
		})
	}
}

func TestFilter_SaveAndLoad(t *testing.T) {
	t.Parallel()

	t.Run("round trips through a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "state", "seen.bloom")
		f := bloom.NewFilter(1000, 0.01)
		f.Add("https://www.christies.com/lot/1")
		require.NoError(t, f.Save(path))

		loaded, err := bloom.Load(path, 1000, 0.01)

		require.NoError(t, err)
		assert.True(t, loaded.Test("https://www.christies.com/lot/1"))
		assert.False(t, loaded.Test("https://www.christies.com/lot/2"))
	})

	t.Run("missing file yields an empty filter", func(t *testing.T) {
		t.Parallel()

		loaded, err := bloom.Load(filepath.Join(t.TempDir(), "missing.bloom"), 1000, 0.01)

		require.NoError(t, err)
		assert.Equal(t, uint(0), loaded.EstimatedCount())
	})

	t.Run("rejects corrupt data", func(t *testing.T) {
		t.Parallel()

		_, err := bloom.NewFilter(10, 0.01).ReadFrom(bytes.NewReader([]byte{1, 2, 3}))

		assert.Equal(t, artlot.EINVALID, artlot.ErrorCode(err))
	})
}
