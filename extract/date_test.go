package extract_test

import (
	"testing"

	"github.com/fwojciec/artlot/extract"
	"github.com/stretchr/testify/assert"
)

func TestSaleDate(t *testing.T) {
	t.Parallel()

	t.Run("day month year", func(t *testing.T) {
		t.Parallel()
		got, ok := extract.SaleDate("12 May 2017")
		assert.True(t, ok)
		assert.Equal(t, "2017-05-12", got)
	})

	t.Run("iso date", func(t *testing.T) {
		t.Parallel()
		got, ok := extract.SaleDate(" 2017-05-12 ")
		assert.True(t, ok)
		assert.Equal(t, "2017-05-12", got)
	})

	t.Run("date inside sale heading", func(t *testing.T) {
		t.Parallel()
		got, ok := extract.SaleDate("Impressionist and Modern Art Evening Sale, 12 May 2017")
		assert.True(t, ok)
		assert.Equal(t, "2017-05-12", got)
	})

	t.Run("month without day is the first of the month", func(t *testing.T) {
		t.Parallel()
		got, ok := extract.SaleDate("May 2017")
		assert.True(t, ok)
		assert.Equal(t, "2017-05-01", got)
	})

	t.Run("relative dates are a miss", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"yesterday", "2 days ago", "today"} {
			got, ok := extract.SaleDate(in)
			assert.False(t, ok, "input %q", in)
			assert.Empty(t, got, "input %q", in)
		}
	})

	t.Run("blank", func(t *testing.T) {
		t.Parallel()
		got, ok := extract.SaleDate("   ")
		assert.False(t, ok)
		assert.Empty(t, got)
	})
}
