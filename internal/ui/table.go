package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column.
type Column struct {
	Title string
	Width int
}

// Row is a slice of cell values.
type Row []string

// Table renders a lipgloss-styled fixed-width table.
type Table struct {
	Columns []Column
	Rows    []Row
}

// NewTable creates a table with the given columns.
func NewTable(cols []Column) *Table {
	return &Table{Columns: cols}
}

// AddRow appends a row.
func (t *Table) AddRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// Render returns the table as a string. Cells are padded with plain string
// ops before styling so ANSI sequences never break the column widths.
func (t *Table) Render() string {
	headerStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	sepStyle := lipgloss.NewStyle().Foreground(ColorMeta)

	// Widths are in runes so multi-byte cells stay aligned and never get
	// cut mid-rune.
	pad := func(s string, width int) string {
		runes := []rune(s)
		if len(runes) >= width {
			return string(runes[:width])
		}
		return s + strings.Repeat(" ", width-len(runes))
	}

	var sb strings.Builder
	total := 0
	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = headerStyle.Render(pad(col.Title, col.Width))
		total += col.Width + 1
	}
	sb.WriteString(strings.Join(headers, " "))
	sb.WriteString("\n")
	sb.WriteString(sepStyle.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(cell, t.Columns[i].Width)
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
