package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/artlot"
	"github.com/fwojciec/artlot/extract"
	"github.com/fwojciec/artlot/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
museums:
  - Museum of Modern Art
  - Tate
styles:
  - label: oil on canvas
    all: [oil, canvas]
  - all: [gouache]
locations:
  - label: Geneva
    any: [geneva, genève]
currencies:
  "¥": JPY
selectors:
  christies:
    title: h1.lot-title
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("decodes every section", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse(strings.NewReader(fullConfig))

		require.NoError(t, err)
		assert.Equal(t, []string{"Museum of Modern Art", "Tate"}, cfg.Museums)
		require.Len(t, cfg.Styles, 2)
		assert.Equal(t, "gouache", cfg.Styles[1].Label)
		assert.Equal(t, "JPY", cfg.Currencies["¥"])
		assert.Equal(t, "h1.lot-title", cfg.Selectors["christies"]["title"])
	})

	t.Run("empty document is valid", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, cfg.Museums)
		assert.Empty(t, cfg.Overrides())
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse(strings.NewReader("painters: [monet]\n"))

		assert.Equal(t, artlot.EINVALID, artlot.ErrorCode(err))
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse(strings.NewReader("museums: [tate\n"))

		assert.Equal(t, artlot.EINVALID, artlot.ErrorCode(err))
	})

	t.Run("rejects unknown house", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse(strings.NewReader("selectors:\n  sothebys:\n    title: h1\n"))

		assert.Equal(t, artlot.EINVALID, artlot.ErrorCode(err))
		assert.Contains(t, artlot.ErrorMessage(err), "Selectors")
	})

	t.Run("rejects empty selector", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse(strings.NewReader("selectors:\n  phillips:\n    title: \"\"\n"))

		assert.Equal(t, artlot.EINVALID, artlot.ErrorCode(err))
	})

	t.Run("rejects currency code that is not three capitals", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse(strings.NewReader("currencies:\n  \"¥\": yen\n"))

		assert.Equal(t, artlot.EINVALID, artlot.ErrorCode(err))
		assert.Contains(t, artlot.ErrorMessage(err), "Currencies")
	})

	t.Run("rejects rule without terms", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse(strings.NewReader("styles:\n  - label: oil\n"))

		assert.Equal(t, artlot.EINVALID, artlot.ErrorCode(err))
	})

	t.Run("rejects rule without label", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse(strings.NewReader("locations:\n  - any: [geneva, genève]\n"))

		assert.Equal(t, artlot.EINVALID, artlot.ErrorCode(err))
		assert.Contains(t, artlot.ErrorMessage(err), "locations[0]")
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "artlot.yaml")
		require.NoError(t, os.WriteFile(path, []byte(fullConfig), 0644))

		cfg, err := yaml.Load(path)

		require.NoError(t, err)
		assert.Len(t, cfg.Museums, 2)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, artlot.ENOTFOUND, artlot.ErrorCode(err))
	})
}

func TestConfig_Schema(t *testing.T) {
	t.Parallel()

	cfg, err := yaml.Parse(strings.NewReader(fullConfig))
	require.NoError(t, err)

	sc := cfg.Schema()

	t.Run("lowercases museum keywords", func(t *testing.T) {
		t.Parallel()

		n, ok := sc.Museums.Count("Tate, London; Museum of Modern Art, New York")
		assert.True(t, ok)
		assert.Equal(t, 2, n)
	})

	t.Run("builds classification rules", func(t *testing.T) {
		t.Parallel()

		style, ok := sc.Styles.Classify("Gouache on paper")
		assert.True(t, ok)
		assert.Equal(t, "gouache", style)

		location, ok := sc.Locations.Classify("Genève, Switzerland")
		assert.True(t, ok)
		assert.Equal(t, "Geneva", location)
	})

	t.Run("extends default currencies", func(t *testing.T) {
		t.Parallel()

		m, ok := sc.Currencies.ParseMoney("¥1,000,000")
		require.True(t, ok)
		assert.Equal(t, extract.Money{Amount: 1000000, Currency: "JPY"}, m)

		m, ok = sc.Currencies.ParseMoney("£12,000")
		require.True(t, ok)
		assert.Equal(t, "GBP", m.Currency)
	})

	t.Run("leaves missing sections zero", func(t *testing.T) {
		t.Parallel()

		empty, err := yaml.Parse(strings.NewReader(""))
		require.NoError(t, err)

		got := empty.Schema()
		assert.Nil(t, got.Museums)
		assert.Nil(t, got.Currencies)
	})
}

func TestConfig_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := yaml.Parse(strings.NewReader(fullConfig))
	require.NoError(t, err)

	assert.Equal(t, map[artlot.House]map[artlot.Field]string{
		artlot.HouseChristies: {artlot.FieldTitle: "h1.lot-title"},
	}, cfg.Overrides())
}
