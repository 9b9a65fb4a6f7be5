package textgrid

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/matrica/internal/form"
	"github.com/verte-zerg/matrica/internal/matrix"
)

const (
	columnSep           = "  "
	terminalWidthBackup = 80
)

// Options controls plain rendering.
type Options struct {
	Lang string
	// Width is the available column count; 0 means unlimited.
	Width int
}

// Render writes the result header, the grid (or a list when the grid is wider
// than opts.Width) and the copy summary.
func Render(w io.Writer, r matrix.Result, opts Options) error {
	msgs := form.MessagesFor(opts.Lang)
	lines := []string{
		fmt.Sprintf("%s: %d", msgs.Destiny, r.Destiny),
		fmt.Sprintf("%s: %s", msgs.Additional, matrix.AdditionalString(r)),
		"",
	}
	grid := GridLines(matrix.Layout(r), opts.Lang)
	if opts.Width > 0 && maxWidth(grid) > opts.Width {
		grid = ListLines(r, opts.Lang)
	}
	lines = append(lines, grid...)
	lines = append(lines, "", matrix.Summary(r))
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// GridLines renders each grid row as a label line and a value line.
func GridLines(g matrix.Grid, lang string) []string {
	rows := make([][]string, 0, matrix.GridRows*2)
	for _, gridRow := range g {
		labelsRow := make([]string, matrix.GridCols)
		valuesRow := make([]string, matrix.GridCols)
		for col, cell := range gridRow {
			if cell == nil {
				continue
			}
			labelsRow[col] = matrix.Label(lang, cell.Key)
			valuesRow[col] = cell.Value
		}
		rows = append(rows, labelsRow, valuesRow)
	}
	return formatTable(rows, nil)
}

// ListLines renders one "label  value" line per attribute in grid order.
func ListLines(r matrix.Result, lang string) []string {
	var rows [][]string
	for _, gridRow := range matrix.Layout(r) {
		for _, cell := range gridRow {
			if cell == nil {
				continue
			}
			rows = append(rows, []string{matrix.Label(lang, cell.Key), cell.Value})
		}
	}
	return formatTable(rows, map[int]bool{1: true})
}

// TerminalWidth returns the width of f when it is a terminal, or 0.
func TerminalWidth(f *os.File) int {
	if !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func maxWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

