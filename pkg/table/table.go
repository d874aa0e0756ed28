// Package table lays out rows of (possibly styled) cells as a box-drawing
// grid. Column widths are measured on visible width, so escape codes in a
// cell never skew the alignment.
//
//	┌─────────────┬─────────────┐
//	│ Header 1    ┆ Header 2    │
//	├╌╌╌╌╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌╌╌┤
//	│ Row 1 Col 1 ┆ Row 1 Col 2 │
//	└─────────────┴─────────────┘
//
// Rows shorter than the widest row are padded with empty cells. A cell
// holding '\n' spans several lines of its row; the other cells of that row
// are padded blank below their last line.
package table

import (
	"strings"

	"github.com/arthur-debert/turboterm/pkg/markup"
)

// Border glyphs.
const (
	topLeft     = "┌"
	topMid      = "┬"
	topRight    = "┐"
	midLeft     = "├"
	midMid      = "┼"
	midRight    = "┤"
	bottomLeft  = "└"
	bottomMid   = "┴"
	bottomRight = "┘"
	hLine       = "─"
	hDashed     = "╌"
	vLine       = "│"
	vDashed     = "┆"
)

// Table accumulates rows and renders them on demand.
//
// AddRow must not be called concurrently with other methods on the same
// Table. String only reads and may be called any number of times.
type Table struct {
	styler *markup.Styler
	rows   [][]string
}

// New returns an empty table whose cells are rendered with the built-in
// markup tokens.
func New() *Table {
	return &Table{styler: &markup.Styler{}}
}

// NewStyled returns an empty table whose cells are rendered with styler.
func NewStyled(styler *markup.Styler) *Table {
	if styler == nil {
		styler = &markup.Styler{}
	}
	return &Table{styler: styler}
}

// AddRow appends a row. Each cell's markup is rendered on the way in; cells
// that already carry escape codes are kept as they are.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = t.styler.Apply(cell)
	}
	t.rows = append(t.rows, row)
}

// AddRenderedRow appends a row whose cells are final text. No markup is
// applied, so brackets in the cells are kept as they are.
func (t *Table) AddRenderedRow(cells ...string) {
	t.rows = append(t.rows, append([]string(nil), cells...))
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the rendered rows.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = append([]string(nil), row...)
	}
	return rows
}

// Columns returns the column count: the length of the longest row.
func (t *Table) Columns() int {
	n := 0
	for _, row := range t.rows {
		n = max(n, len(row))
	}
	return n
}

// Widths returns the visible width of every column, never less than 1. A
// multi-line cell counts with its widest line.
func (t *Table) Widths() []int {
	widths := make([]int, t.Columns())
	for c := range widths {
		widths[c] = 1
	}
	for _, row := range t.rows {
		for c, cell := range row {
			for _, sub := range strings.Split(cell, "\n") {
				widths[c] = max(widths[c], markup.VisibleWidth(sub))
			}
		}
	}
	return widths
}

// String renders the grid. Lines are separated by '\n' with no trailing
// newline; an empty table renders as "┌┐\n└┘".
func (t *Table) String() string {
	widths := t.Widths()

	lines := make([]string, 0, 2*len(t.rows)+1)
	lines = append(lines, rule(widths, topLeft, hLine, topMid, topRight))
	for r, row := range t.rows {
		if r > 0 {
			lines = append(lines, rule(widths, midLeft, hDashed, midMid, midRight))
		}
		lines = append(lines, rowLines(widths, row)...)
	}
	lines = append(lines, rule(widths, bottomLeft, hLine, bottomMid, bottomRight))

	return strings.Join(lines, "\n")
}

func rule(widths []int, left, fill, sep, right string) string {
	segments := make([]string, len(widths))
	for c, w := range widths {
		segments[c] = strings.Repeat(fill, w+2)
	}
	return left + strings.Join(segments, sep) + right
}

// rowLines renders one row, one line per line of its tallest cell.
func rowLines(widths []int, row []string) []string {
	cells := make([][]string, len(widths))
	height := 1
	for c := range widths {
		cells[c] = []string{""}
		if c < len(row) {
			cells[c] = strings.Split(row[c], "\n")
		}
		height = max(height, len(cells[c]))
	}

	lines := make([]string, height)
	for i := range lines {
		segments := make([]string, len(widths))
		for c, w := range widths {
			sub := ""
			if i < len(cells[c]) {
				sub = cells[c][i]
			}
			segments[c] = " " + markup.PadRight(sub, w) + " "
		}
		lines[i] = vLine + strings.Join(segments, vDashed) + vLine
	}
	return lines
}
