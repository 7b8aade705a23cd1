package heuristic

import "github.com/katalvlaran/gridpath/tilemap"

// Func returns a non-negative estimate of the cost from a to b.
type Func func(a, b tilemap.Point) int

// Manhattan returns |ax-bx| + |ay-by|.
func Manhattan(a, b tilemap.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev returns max(|ax-bx|, |ay-by|).
func Chebyshev(a, b tilemap.Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// Zero returns 0.
func Zero(_, _ tilemap.Point) int { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
