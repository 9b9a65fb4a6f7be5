package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/matrica/internal/matrix"
)

const (
	cellWidth  = 15
	cellHeight = 2
)

var (
	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Padding(0, 1).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cellLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cellValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cellNoValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
)

func renderGrid(g matrix.Grid, lang string) string {
	rows := make([]string, 0, len(g))
	for _, gridRow := range g {
		cells := make([]string, 0, len(gridRow))
		for _, cell := range gridRow {
			cells = append(cells, renderCell(cell, lang))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(cell *matrix.Cell, lang string) string {
	if cell == nil {
		return emptyCell()
	}
	valueStyle := cellValueStyle
	if cell.NoValue() {
		valueStyle = cellNoValueStyle
	}
	content := cellLabelStyle.Render(matrix.Label(lang, cell.Key)) + "\n" + valueStyle.Render(cell.Value)
	return cellStyle.Render(content)
}

func emptyCell() string {
	width := cellWidth + cellStyle.GetHorizontalBorderSize()
	height := cellHeight + cellStyle.GetVerticalBorderSize()
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
