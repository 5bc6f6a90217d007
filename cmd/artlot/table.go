package main

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// maxCellWidth truncates long cells such as titles.
const maxCellWidth = 40

// writeTable writes rows as columns padded to their display width. The
// first row is the header.
func writeTable(w io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if width := runewidth.StringWidth(fitCell(cell)); width > widths[i] {
				widths[i] = width
			}
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = fitCell(row[i])
			}
			if i == len(widths)-1 {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
			sb.WriteString("  ")
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func fitCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, maxCellWidth, "...")
}
