package ui_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ericglau/nile/internal/ui"
	"github.com/stretchr/testify/assert"
)

func TestTableRendersAllRows(t *testing.T) {
	tbl := ui.NewTable([]ui.Column{
		{Title: "Network", Width: 12},
		{Title: "Gateway", Width: 30},
	})
	tbl.AddRow(ui.Row{"localhost", "http://127.0.0.1:5050/"})
	tbl.AddRow(ui.Row{"goerli2", "https://alpha4-2.starknet.io"})

	out := tbl.Render()
	assert.Contains(t, out, "localhost")
	assert.Contains(t, out, "goerli2")
	assert.Equal(t, 4, strings.Count(out, "\n"), "header, separator, two rows")
}

func TestTableTruncatesOversizedCells(t *testing.T) {
	tbl := ui.NewTable([]ui.Column{{Title: "N", Width: 4}})
	tbl.AddRow(ui.Row{"much-too-long"})

	assert.Contains(t, tbl.Render(), "much")
	assert.NotContains(t, tbl.Render(), "much-too-long")
}

// Multi-byte cells must occupy the same column width as ASCII ones.
func TestTableAlignsMultiByteCells(t *testing.T) {
	tbl := ui.NewTable([]ui.Column{
		{Title: "Signer", Width: 8},
		{Title: "State", Width: 8},
	})
	tbl.AddRow(ui.Row{"—", "ok"})
	tbl.AddRow(ui.Row{"keychain", "ok"})

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	dash, ascii := lines[2], lines[3]
	assert.Equal(t, utf8.RuneCountInString(ascii), utf8.RuneCountInString(dash))

	// The second column must start at the same rune offset in both rows.
	runeOffset := func(line string) int {
		return utf8.RuneCountInString(line[:strings.Index(line, "ok")])
	}
	assert.Equal(t, runeOffset(ascii), runeOffset(dash))
}

func TestTableTruncatesMultiByteCellsOnRuneBoundary(t *testing.T) {
	tbl := ui.NewTable([]ui.Column{{Title: "N", Width: 2}})
	tbl.AddRow(ui.Row{"日本語"})

	out := tbl.Render()
	assert.Contains(t, out, "日本")
	assert.NotContains(t, out, "日本語")
	assert.True(t, utf8.ValidString(out))
}

func TestTableShortRow(t *testing.T) {
	tbl := ui.NewTable([]ui.Column{{Title: "A", Width: 4}, {Title: "B", Width: 4}})
	tbl.AddRow(ui.Row{"x"})
	assert.NotPanics(t, func() { tbl.Render() })
}

func TestMessageHelpers(t *testing.T) {
	assert.Contains(t, ui.Success("deployed"), "deployed")
	assert.Contains(t, ui.Err("rejected"), "rejected")
	assert.Contains(t, ui.Hint("try --max_fee"), "try --max_fee")
	assert.Contains(t, ui.Warn("pending"), "pending")
}
