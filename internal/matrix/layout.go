package matrix

import (
	"strconv"
	"strings"
)

const (
	GridRows = 5
	GridCols = 4
)

// Cell is one grid position. A nil *Cell is an empty position.
type Cell struct {
	Key   Attribute
	Value string
}

// NoValue reports whether the cell carries the placeholder.
func (c Cell) NoValue() bool {
	return c.Value == Placeholder
}

// Grid is the fixed 5x4 matrix layout.
type Grid [GridRows][GridCols]*Cell

var gridKeys = [GridRows][GridCols]Attribute{
	{"", "", "", Temperament},
	{Character, Health, Luck, Goal},
	{Energy, Logic, Duty, Family},
	{Interest, Work, Memory, Habits},
	{"", Life, "", ""},
}

// Layout places the result attributes on the grid.
func Layout(r Result) Grid {
	var g Grid
	for row := range gridKeys {
		for col, key := range gridKeys[row] {
			if key == "" {
				continue
			}
			g[row][col] = &Cell{Key: key, Value: r.Value(key)}
		}
	}
	return g
}

var summaryOrder = []Attribute{
	Character, Energy, Interest, Health, Logic, Work, Luck, Duty, Memory,
}

// Summary returns the copy text: the digit attributes then destiny, joined by "/".
func Summary(r Result) string {
	parts := make([]string, 0, len(summaryOrder)+1)
	for _, key := range summaryOrder {
		parts = append(parts, r.Value(key))
	}
	parts = append(parts, strconv.Itoa(r.Destiny))
	return strings.Join(parts, "/")
}

// AdditionalString joins the additional numbers for display.
func AdditionalString(r Result) string {
	parts := make([]string, len(r.Additional))
	for i, n := range r.Additional {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
