package extract_test

import (
	"testing"

	"github.com/fwojciec/artlot/extract"
	"github.com/stretchr/testify/assert"
)

func TestCountMuseums(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{"distinct museums", "Tate Modern, London; Museum of Modern Art, New York", 2},
		{"repeated keyword", "museum, museum", 2},
		{"partial keyword", "National Gallery, London; National Galleries of Scotland", 2},
		{"case insensitive", "BEYELER FOUNDATION", 1},
		{"no museum", "Private collection", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := extract.CountMuseums(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want > 0, ok)
		})
	}
}

func TestNewKeywords(t *testing.T) {
	t.Parallel()

	kws := extract.NewKeywords(" Kunsthalle ", "", "FONDATION")
	assert.Equal(t, extract.Keywords{"kunsthalle", "fondation"}, kws)

	n, ok := kws.Count("Kunsthalle Basel; Fondation Beyeler")
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"oil on canvas", "Oil on canvas, signed", "oil on canvas"},
		{"water colour before paper", "watercolour and gouache on paper", "water color"},
		{"water color spelling", "Water color", "water color"},
		{"drawing before paper", "pencil drawing on paper", "drawing"},
		{"acrylic on canvas before canvas", "Acrylic on canvas", "acrylic on canvas"},
		{"misspelled acrylic", "acryllic on linen", "acrylic"},
		{"sculpture", "Bronze with brown patina", "bronze"},
		{"canvas fallback", "mixed media on canvas", "canvas"},
		{"unknown", "mixed media", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := extract.Style(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != "", ok)
		})
	}
}

func TestRulesClassify(t *testing.T) {
	t.Parallel()

	t.Run("locations", func(t *testing.T) {
		t.Parallel()

		tests := map[string]string{
			"Christie's New York, Rockefeller Plaza": "New York",
			"LONDON, King Street":                    "London",
			"Hong Kong Convention Centre":            "Hong Kong",
			"Geneva":                                 "Geneva",
			"Tokyo":                                  "",
		}
		for in, want := range tests {
			got, ok := extract.DefaultLocations.Classify(in)
			assert.Equal(t, want, got, in)
			assert.Equal(t, want != "", ok, in)
		}
	})

	t.Run("terms are lowercased", func(t *testing.T) {
		t.Parallel()

		rules := extract.NewRules(extract.Rule{Label: "Zurich", All: []string{"ZÜRICH"}, Any: []string{"Sale", "Auction"}})

		got, ok := rules.Classify("auction in zürich")
		assert.True(t, ok)
		assert.Equal(t, "Zurich", got)

		_, ok = rules.Classify("zürich")
		assert.False(t, ok)
	})

	t.Run("empty rule never matches", func(t *testing.T) {
		t.Parallel()

		rules := extract.NewRules(extract.Rule{Label: "anything"})
		_, ok := rules.Classify("anything at all")
		assert.False(t, ok)
	})

	t.Run("first rule wins", func(t *testing.T) {
		t.Parallel()

		rules := extract.NewRules(extract.Phrase("paper"), extract.Phrase("ink on paper"))
		got, _ := rules.Classify("ink on paper")
		assert.Equal(t, "paper", got)
	})
}
