// Package gridpath is a tile-map pathfinding toolkit: load a text map, ask
// for the cheapest route between two cells, get back the steps.
//
// Under the hood, everything is organized under small subpackages:
//
//	tilemap/   Tile, Registry, Grid: build/load, location index, regions
//	direction/ compass directions, rotation table, unit deltas
//	heuristic/ Manhattan, Chebyshev and Zero distance estimates
//	astar/     the A* Engine: movement models, corner policies, budgets
//	view/      path overlay and tcell drawing for terminals
//
// Quick ASCII example:
//
//	o . . #      o X . #
//	. # . #  ⇒   . # X #
//	. . . g      . . . g
//
//	g, _ := tilemap.Build(rows, registry)
//	eng, _ := astar.New(heuristic.Chebyshev, astar.EightDirectional)
//	res, _ := eng.FindPath(g, g.PositionsOf('o')[0], g.PositionsOf('g')[0])
//
// The command cmd/gridpath wraps the same calls for text map files.
package gridpath
