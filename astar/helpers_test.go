package astar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/tilemap"
)

// registry used across the package tests:
// '#' wall, '.' floor (1), 'm' mud (2), '~' swamp (3), 'o' start (1), 'g' goal (1).
func registry() tilemap.Registry {
	return tilemap.Registry{
		'#': tilemap.Wall('#'),
		'.': tilemap.Floor('.', 1),
		'm': tilemap.Floor('m', 2),
		'~': tilemap.Floor('~', 3),
		'o': tilemap.Floor('o', 1),
		'g': tilemap.Floor('g', 1),
	}
}

// mustGrid builds a grid from rows or fails the test.
func mustGrid(t testing.TB, rows ...string) *tilemap.Grid {
	t.Helper()
	g, err := tilemap.Build(rows, registry())
	require.NoError(t, err)
	return g
}

// mustEngine builds an engine or fails the test.
func mustEngine(t testing.TB, h heuristic.Func, m astar.Movement, opts ...astar.Option) *astar.Engine {
	t.Helper()
	e, err := astar.New(h, m, opts...)
	require.NoError(t, err)
	return e
}

// openRows returns h rows of w floor tiles.
func openRows(w, h int) []string {
	row := make([]byte, w)
	for i := range row {
		row[i] = '.'
	}
	rows := make([]string, h)
	for i := range rows {
		rows[i] = string(row)
	}
	return rows
}

// positions projects a path onto its points.
func positions(path []astar.Step) []tilemap.Point {
	out := make([]tilemap.Point, len(path))
	for i, s := range path {
		out[i] = s.Pos
	}
	return out
}
