package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/tilemap"
)

// Canvas is the drawing surface Draw needs; tcell.Screen satisfies it.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// Styles maps a tag rune to its cell style. Missing tags use tcell.StyleDefault.
type Styles map[rune]tcell.Style

// DefaultStyles colors the demo palette: walls grey, gold yellow, the player
// green and the path marker red.
func DefaultStyles(marker rune) Styles {
	wall := tcell.StyleDefault.Foreground(tcell.ColorGray)
	return Styles{
		'-':    wall,
		'|':    wall,
		'+':    wall,
		'g':    tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		'o':    tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		marker: tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
}

// Overlay renders g with every intermediate path cell replaced by marker.
// The first and last steps keep their tiles so start and goal stay visible.
// Steps off the grid are ignored.
func Overlay(g *tilemap.Grid, path []astar.Step, marker rune) []string {
	rows := g.Render()
	if len(path) < 3 {
		return rows
	}
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
	}
	for _, s := range path[1 : len(path)-1] {
		if g.InBounds(s.Pos) {
			grid[s.Pos.Y][s.Pos.X] = marker
		}
	}
	for y := range rows {
		rows[y] = string(grid[y])
	}
	return rows
}

// Draw paints lines onto c starting at (x0, y0), styling each rune by st.
func Draw(c Canvas, x0, y0 int, lines []string, st Styles) {
	for y, line := range lines {
		x := 0
		for _, r := range line {
			style, ok := st[r]
			if !ok {
				style = tcell.StyleDefault
			}
			c.SetContent(x0+x, y0+y, r, nil, style)
			x++
		}
	}
}
