package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/artlot"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := artlot.LotFilter{Limit: c.Limit}
	if c.House != "" {
		house := artlot.House(c.House)
		filter.House = &house
	}
	if c.Sale != "" {
		filter.SaleID = &c.Sale
	}

	lots, err := deps.Lots.FindLots(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artlot.ErrorMessage(err))
		return err
	}

	if len(lots) == 0 {
		fmt.Fprintln(deps.Stdout, "No lots found. Use 'artlot parse --store' to add some.")
		return nil
	}

	rows := [][]string{{"ID", "HOUSE", "SALE", "LOT", "ARTIST", "TITLE", "PRICE"}}
	for _, l := range lots {
		rows = append(rows, []string{l.ID, string(l.House), l.SaleID, l.LotID, l.ArtistName, l.Title, formatPrice(l.Price, l.Currency)})
	}
	return writeTable(deps.Stdout, rows)
}

// formatPrice renders an amount with its currency, or "-" when unsold.
func formatPrice(amount int64, currency string) string {
	if amount == 0 {
		return "-"
	}
	s := strconv.FormatInt(amount, 10)
	if currency != "" {
		s = currency + " " + s
	}
	return s
}
