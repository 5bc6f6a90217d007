package main

import (
	"fmt"

	"github.com/fwojciec/artlot"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return artlot.Errorf(artlot.EINVALID, "use --force to confirm deletion")
	}

	kind, list := "lot", "list"
	var err error
	if c.Sale {
		kind, list = "sale", "sales"
		err = deps.Sales.DeleteSale(deps.Ctx, c.ID)
	} else {
		err = deps.Lots.DeleteLot(deps.Ctx, c.ID)
	}

	if artlot.ErrorCode(err) == artlot.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s %q not found. Use 'artlot %s' to see what is stored.\n", kind, c.ID, list)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artlot.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s %q\n", kind, c.ID)
	return nil
}
