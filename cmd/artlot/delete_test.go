package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/artlot"
	main "github.com/fwojciec/artlot/cmd/artlot"
	"github.com/fwojciec/artlot/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes lot when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		lots := &mock.LotService{
			DeleteLotFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Lots:   lots,
		}

		err := (&main.DeleteCmd{ID: "lot-1", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "lot-1", deletedID)
		assert.Contains(t, stdout.String(), "Deleted lot")
	})

	t.Run("deletes sale with --sale", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		sales := &mock.SaleService{
			DeleteSaleFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Sales:  sales,
		}

		err := (&main.DeleteCmd{ID: "sale-1", Sale: true, Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "sale-1", deletedID)
		assert.Contains(t, stdout.String(), "Deleted sale")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Lots:   &mock.LotService{},
		}

		err := (&main.DeleteCmd{ID: "lot-1"}).Run(deps)

		assert.Equal(t, artlot.EINVALID, artlot.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("reports missing lot", func(t *testing.T) {
		t.Parallel()

		lots := &mock.LotService{
			DeleteLotFn: func(_ context.Context, _ string) error {
				return artlot.Errorf(artlot.ENOTFOUND, "lot not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Lots:   lots,
		}

		err := (&main.DeleteCmd{ID: "missing", Force: true}).Run(deps)

		assert.Equal(t, artlot.ENOTFOUND, artlot.ErrorCode(err))
		assert.Contains(t, stderr.String(), "artlot list")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the lot as indented JSON", func(t *testing.T) {
		t.Parallel()

		lots := &mock.LotService{
			FindLotByIDFn: func(_ context.Context, id string) (*artlot.Lot, error) {
				return &artlot.Lot{ID: id, House: artlot.HouseChristies, LotID: "16"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Lots:   lots,
		}

		err := (&main.ShowCmd{ID: "lot-1"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"lot_id": "16"`)
		assert.Contains(t, stdout.String(), `"id": "lot-1"`)
	})

	t.Run("reports missing lot", func(t *testing.T) {
		t.Parallel()

		lots := &mock.LotService{
			FindLotByIDFn: func(_ context.Context, _ string) (*artlot.Lot, error) {
				return nil, artlot.Errorf(artlot.ENOTFOUND, "lot not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Lots:   lots,
		}

		err := (&main.ShowCmd{ID: "missing"}).Run(deps)

		assert.Equal(t, artlot.ENOTFOUND, artlot.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}
