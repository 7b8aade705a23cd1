package astar

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpath/direction"
	"github.com/katalvlaran/gridpath/tilemap"
)

// PathCost sums the cost of every tile entered after the first step of path,
// as read from g now. An empty path costs 0.
// Returns tilemap.ErrOutOfBounds for steps off the grid.
func PathCost(g *tilemap.Grid, path []Step) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	total := 0
	for i, s := range path {
		t, err := g.TileAt(s.Pos)
		if err != nil {
			return 0, fmt.Errorf("astar: step %d: %w", i, err)
		}
		if i > 0 {
			total += t.Cost()
		}
	}
	return total, nil
}

// Validate checks that path is continuous under m: the first step has
// direction None, and every later step moves one cell in its declared
// direction, which must belong to m. An empty path is valid.
// Returns ErrBrokenPath naming the first offending step.
func Validate(path []Step, m Movement) error {
	allowed := m.Directions()
	if allowed == nil {
		return fmt.Errorf("%w: %d", ErrBadMovement, int(m))
	}
	for i, s := range path {
		if i == 0 {
			if s.Dir != direction.None {
				return fmt.Errorf("%w: first step has direction %v", ErrBrokenPath, s.Dir)
			}
			continue
		}
		prev := path[i-1].Pos
		d, ok := direction.FromDelta(s.Pos.X-prev.X, s.Pos.Y-prev.Y)
		if !ok || d != s.Dir || !slices.Contains(allowed, d) {
			return fmt.Errorf("%w: step %d %v -> %v declared %v", ErrBrokenPath, i, prev, s.Pos, s.Dir)
		}
	}
	return nil
}
