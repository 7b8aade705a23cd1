// Package astar finds minimum-cost routes on a tilemap.Grid with A*.
//
// Overview:
//
//   - An Engine binds a heuristic.Func and a Movement model
//     (FourDirectional or EightDirectional) plus functional options.
//   - FindPath returns the start-to-goal steps, each carrying the direction
//     taken to reach it, the accumulated cost and the number of expansions.
//   - "No path" is an ordinary outcome: Result.Found is false and the error
//     is nil. Errors are reserved for bad input, budget exhaustion and
//     cancellation.
//
// Optimality:
//
//	Paths are optimal when the heuristic is admissible for the movement model
//	and tile costs. HeuristicFor(m) returns the unit-cost pairing (Manhattan
//	for 4 directions, Chebyshev for 8). The engine does not check the pairing.
//
// Determinism:
//
//	Equal-f frontier entries are ordered by lower h, then by push order, and
//	neighbors are pushed in the order N, E, S, W, NE, NW, SE, SW. The same
//	grid and query therefore always yield the same path.
//
// Options:
//
//   - WithMaxExpansions(n): give up with ErrBudgetExceeded after settling n
//     cells (0 = unlimited).
//   - WithCornerPolicy(p): CornerCutAllow (default, diagonal steps ignore the
//     orthogonal cells), CornerCutOneOpen, CornerCutNoneBlocked.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrNilHeuristic, ErrBadMovement: invalid input.
//   - tilemap.ErrOutOfBounds (wrapped): start or goal off the grid.
//   - ErrBudgetExceeded: MaxExpansions reached.
//   - context.Canceled / context.DeadlineExceeded (wrapped): FindPathContext.
//   - ErrBrokenPath: Validate found a discontinuous path.
//
// Example usage:
//
//	eng, _ := astar.New(heuristic.Chebyshev, astar.EightDirectional)
//	res, err := eng.FindPath(grid, tilemap.Pt(0, 0), tilemap.Pt(9, 4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    fmt.Println("unreachable")
//	}
package astar
