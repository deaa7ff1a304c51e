// Package ui renders roster data for the terminal.
package ui

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	tableCellMaxWidth = 40
	tableCellEllipsis = "..."
	tableColumnGap    = 2
)

// TableBuilder collects rows and renders an aligned table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row. Missing trailing cells render empty.
func (builder *TableBuilder) AddRow(cells ...string) {
	builder.rows = append(builder.rows, cells)
}

// Len returns the number of rows added.
func (builder *TableBuilder) Len() int {
	return len(builder.rows)
}

// String renders the table.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as left-aligned columns separated by
// two spaces. The last column is never padded. Cells are flattened to one
// line and truncated; ANSI styling does not count toward width.
func FormatTable(headers []string, rows [][]string) string {
	columns := len(headers)
	for _, row := range rows {
		columns = max(columns, len(row))
	}
	if columns == 0 {
		return ""
	}

	grid := make([][]string, 0, len(rows)+1)
	grid = append(grid, normalizeRow(headers, columns))
	for _, row := range rows {
		grid = append(grid, normalizeRow(row, columns))
	}

	widths := make([]int, columns)
	for _, row := range grid {
		for i, cell := range row {
			widths[i] = max(widths[i], ansi.PrintableRuneWidth(cell))
		}
	}

	var builder strings.Builder
	for _, row := range grid {
		var line strings.Builder
		for i, cell := range row {
			line.WriteString(cell)
			if i == columns-1 {
				break
			}
			line.WriteString(strings.Repeat(" ", widths[i]-ansi.PrintableRuneWidth(cell)+tableColumnGap))
		}
		builder.WriteString(strings.TrimRight(line.String(), " "))
		builder.WriteByte('\n')
	}
	return builder.String()
}

// TruncateTableCell flattens value to one line and limits its visible width.
func TruncateTableCell(value string) string {
	value = flattenCell(value)
	if ansi.PrintableRuneWidth(value) <= tableCellMaxWidth {
		return value
	}
	return truncate.StringWithTail(value, tableCellMaxWidth, tableCellEllipsis)
}

func normalizeRow(row []string, columns int) []string {
	out := make([]string, columns)
	for i := range out {
		if i < len(row) {
			out[i] = TruncateTableCell(row[i])
		}
	}
	return out
}

func flattenCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}
