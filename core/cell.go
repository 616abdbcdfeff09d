package core

import "github.com/gdamore/tcell/v2"

// Cell is a single screen cell: a rune plus its style.
// Wide runes occupy their leading cell; continuation cells hold a zero rune.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// NewBuffer allocates a w×h cell buffer filled with spaces in the given style.
func NewBuffer(w, h int, style tcell.Style) [][]Cell {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	buf := make([][]Cell, h)
	for y := range buf {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: style}
		}
		buf[y] = row
	}
	return buf
}
