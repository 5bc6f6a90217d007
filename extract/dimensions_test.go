package extract_test

import (
	"testing"

	"github.com/fwojciec/artlot/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToCM(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 25.4, extract.ConvertToCM(10, "in"), 1e-9)
	assert.InDelta(t, 1.0, extract.ConvertToCM(10, "mm"), 1e-9)
	assert.InDelta(t, 1.0, extract.ConvertToCM(1, "cm"), 1e-9)
	assert.InDelta(t, 2.54, extract.ConvertToCM(1, "IN"), 1e-9)
	assert.Zero(t, extract.ConvertToCM(3, "ft"))
}

func TestParseDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         string
		height     float64
		width      float64
		sourceUnit string
	}{
		{"mixed fractions in inches", "24 1/2 x 36 in", 62.23, 91.44, "in"},
		{"centimeters", "100 x 81 cm", 100, 81, "cm"},
		{"multiplication sign", "100 × 81 cm", 100, 81, "cm"},
		{"millimeters", "120 x 90 mm", 12, 9, "mm"},
		{"comma decimal", "65,5 x 54 cm", 65.5, 54, "cm"},
		{"two fractions", "25 1/2 x 31 7/8 in.", 64.77, 80.9625, "in"},
		{"height only", "Height: 45 cm", 45, 0, "cm"},
		{"upper-case unit", "50 X 40 CM", 50, 40, "cm"},
		{"first size wins", "61 x 50 cm. (24 x 19 3/4 in.)", 61, 50, "cm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := extract.ParseDimensions(tt.in)
			require.True(t, ok)
			assert.InDelta(t, tt.height, got.Height, 1e-6)
			assert.InDelta(t, tt.width, got.Width, 1e-6)
			assert.Equal(t, "cm", got.Unit)
			assert.Equal(t, tt.sourceUnit, got.SourceUnit)
		})
	}

	t.Run("no measurements", func(t *testing.T) {
		t.Parallel()
		got, ok := extract.ParseDimensions("Provenance: private collection")
		assert.False(t, ok)
		assert.Equal(t, extract.Dimensions{}, got)
	})
}

func TestDimensionProjections(t *testing.T) {
	t.Parallel()

	t.Run("full size", func(t *testing.T) {
		t.Parallel()
		d, _ := extract.ParseDimensions("100 x 81 cm")

		h, ok := extract.Height(d)
		assert.True(t, ok)
		assert.InDelta(t, 100.0, h, 1e-9)
		w, ok := extract.Width(d)
		assert.True(t, ok)
		assert.InDelta(t, 81.0, w, 1e-9)
		u, ok := extract.SizeUnit(d)
		assert.True(t, ok)
		assert.Equal(t, "cm", u)
	})

	t.Run("height only has no width", func(t *testing.T) {
		t.Parallel()
		d, _ := extract.ParseDimensions("45 cm")

		_, ok := extract.Height(d)
		assert.True(t, ok)
		w, ok := extract.Width(d)
		assert.False(t, ok)
		assert.Zero(t, w)
	})

	t.Run("unparsed size", func(t *testing.T) {
		t.Parallel()

		_, ok := extract.Height(extract.Dimensions{})
		assert.False(t, ok)
		u, ok := extract.SizeUnit(extract.Dimensions{})
		assert.False(t, ok)
		assert.Empty(t, u)
	})
}
