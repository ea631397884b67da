package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/gallery/pkg/app/styles"
)

// CardGrid lays cards out in rows sized to the terminal and scrolls by row.
type CardGrid struct {
	Items       []CardItem
	Offset      int
	Width       int
	Height      int
	Placeholder string
}

func NewCardGrid() *CardGrid {
	return &CardGrid{
		Items:  []CardItem{},
		Width:  80,
		Height: 20,
	}
}

func (g *CardGrid) SetItems(items []CardItem) {
	g.Items = items
	g.Offset = 0
}

// Columns maps the terminal width to 1, 2, 3 or 5 columns.
func Columns(width int) int {
	switch {
	case width >= 160:
		return 5
	case width >= 100:
		return 3
	case width >= 60:
		return 2
	default:
		return 1
	}
}

func (g *CardGrid) Rows() int {
	cols := Columns(g.Width)
	return (len(g.Items) + cols - 1) / cols
}

func (g *CardGrid) ScrollDown() {
	if g.Offset < g.Rows()-1 {
		g.Offset++
	}
}

func (g *CardGrid) ScrollUp() {
	if g.Offset > 0 {
		g.Offset--
	}
}

// At returns the item at position i, or nil when out of range.
func (g *CardGrid) At(i int) *CardItem {
	if i < 0 || i >= len(g.Items) {
		return nil
	}
	return &g.Items[i]
}

func (g *CardGrid) View() string {
	if len(g.Items) == 0 {
		empty := styles.MutedStyle.Render("No characters")
		return lipgloss.Place(g.Width, g.Height, lipgloss.Center, lipgloss.Center, empty)
	}

	cols := Columns(g.Width)
	cellWidth := g.Width / cols

	var rows []string
	used := 0
	for start := g.Offset * cols; start < len(g.Items); start += cols {
		end := min(start+cols, len(g.Items))
		cells := make([]string, 0, cols)
		for _, item := range g.Items[start:end] {
			cells = append(cells, RenderCard(item, g.Placeholder, cellWidth))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

		h := lipgloss.Height(row)
		if len(rows) > 0 && used+h > g.Height {
			break
		}
		rows = append(rows, row)
		used += h
	}
	return strings.Join(rows, "\n")
}
