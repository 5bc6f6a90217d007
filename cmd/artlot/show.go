package main

import (
	"fmt"

	"github.com/fwojciec/artlot"
	"github.com/fwojciec/artlot/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	lot, err := deps.Lots.FindLotByID(deps.Ctx, c.ID)
	if artlot.ErrorCode(err) == artlot.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: lot %q not found. Use 'artlot list' to see stored lots.\n", c.ID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artlot.ErrorMessage(err))
		return err
	}

	data, err := fs.FormatLot(lot)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}
