package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/artlot"
)

// Run executes the sales command.
func (c *SalesCmd) Run(deps *Dependencies) error {
	filter := artlot.SaleFilter{Limit: c.Limit}
	if c.House != "" {
		house := artlot.House(c.House)
		filter.House = &house
	}

	sales, err := deps.Sales.FindSales(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artlot.ErrorMessage(err))
		return err
	}

	if len(sales) == 0 {
		fmt.Fprintln(deps.Stdout, "No sales found. Use 'artlot parse --store' to add some.")
		return nil
	}

	rows := [][]string{{"ID", "HOUSE", "SALE", "DATE", "LOCATION", "LOTS", "TITLE"}}
	for _, s := range sales {
		rows = append(rows, []string{s.ID, string(s.House), s.SaleID, s.Date, s.Location, strconv.Itoa(s.LotCount), s.Title})
	}
	return writeTable(deps.Stdout, rows)
}
