package main_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/artlot"
	main "github.com/fwojciec/artlot/cmd/artlot"
	"github.com/fwojciec/artlot/mock"
	"github.com/stretchr/testify/assert"
)

func staticFetcher(html string, err error) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, _ string) (string, error) {
			return html, err
		},
	}
}

// fieldCounter returns a registry whose selector finds one field per "<p>"
// in the page.
func fieldCounter() *mock.SelectorRegistry {
	selector := &mock.FragmentSelector{
		HouseFn: func() artlot.House { return artlot.HouseChristies },
		SelectFn: func(html string, _ string) (artlot.Fragments, error) {
			fragments := artlot.Fragments{}
			fields := []artlot.Field{artlot.FieldLotID, artlot.FieldTitle, artlot.FieldPrice}
			for i := 0; i < strings.Count(html, "<p>") && i < len(fields); i++ {
				fragments.Add(fields[i], "x")
			}
			return fragments, nil
		},
	}
	return &mock.SelectorRegistry{
		GetForHTMLFn: func(_ string, _ string) artlot.FragmentSelector { return selector },
	}
}

func TestProbeFetcher(t *testing.T) {
	t.Parallel()

	const src = "https://www.phillips.com/detail/UK030217/1"

	t.Run("uses browser when HTTP fails", func(t *testing.T) {
		t.Parallel()

		httpFetcher := staticFetcher("", errors.New("connection refused"))
		rodFetcher := staticFetcher("<p>", nil)

		got := main.ProbeFetcher(context.Background(), src, httpFetcher, rodFetcher, fieldCounter())

		assert.Same(t, rodFetcher, got)
	})

	t.Run("uses HTTP when browser fails", func(t *testing.T) {
		t.Parallel()

		httpFetcher := staticFetcher("<p>", nil)
		rodFetcher := staticFetcher("", errors.New("browser crashed"))

		got := main.ProbeFetcher(context.Background(), src, httpFetcher, rodFetcher, fieldCounter())

		assert.Same(t, httpFetcher, got)
	})

	t.Run("uses browser when rendering reveals fields", func(t *testing.T) {
		t.Parallel()

		httpFetcher := staticFetcher("<p>", nil)
		rodFetcher := staticFetcher("<p><p><p>", nil)

		got := main.ProbeFetcher(context.Background(), src, httpFetcher, rodFetcher, fieldCounter())

		assert.Same(t, rodFetcher, got)
	})

	t.Run("uses HTTP when both copies match", func(t *testing.T) {
		t.Parallel()

		httpFetcher := staticFetcher("<p><p>", nil)
		rodFetcher := staticFetcher("<p><p>", nil)

		got := main.ProbeFetcher(context.Background(), src, httpFetcher, rodFetcher, fieldCounter())

		assert.Same(t, httpFetcher, got)
	})
}
