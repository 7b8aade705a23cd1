// Package astar implements A* shortest-path search over a tilemap.Grid.
//
// The search keeps a min-heap frontier ordered by f = g + h (ties: lower h,
// then earlier push), a visited set of settled cells, and a tree of search
// states linked to their predecessors. It uses lazy decrease-key: a cell may
// sit in the frontier several times and stale copies are dropped on Pop.
//
// Complexity:
//
//   - Time:  O(N log N) where N = W×H×d (d = 4 or 8 pushes per settled cell).
//   - Space: O(N) states and heap entries in the worst case.
package astar

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/direction"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/tilemap"
)

// ctxCheckEvery is how many expansions pass between context checks.
const ctxCheckEvery = 256

// Engine is a reusable A* configuration: heuristic, movement model, options.
// An Engine holds no per-search state and is safe for concurrent use.
type Engine struct {
	h        heuristic.Func
	movement Movement
	dirs     []direction.Direction
	options  Options
}

// New returns an Engine bound to h and m.
// Returns ErrNilHeuristic if h is nil, ErrBadMovement if m is unknown.
// Options panic on invalid arguments (see WithMaxExpansions, WithCornerPolicy).
func New(h heuristic.Func, m Movement, opts ...Option) (*Engine, error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}
	dirs := m.Directions()
	if dirs == nil {
		return nil, fmt.Errorf("%w: %d", ErrBadMovement, int(m))
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{h: h, movement: m, dirs: dirs, options: cfg}, nil
}

// Movement returns the engine's movement model.
func (e *Engine) Movement() Movement { return e.movement }

// Options returns the engine's effective options.
func (e *Engine) Options() Options { return e.options }

// FindPath is FindPathContext with context.Background().
func (e *Engine) FindPath(g *tilemap.Grid, start, goal tilemap.Point) (Result, error) {
	return e.FindPathContext(context.Background(), g, start, goal)
}

// FindPathContext searches g for a minimum-cost path from start to goal.
//
// Returns:
//
//   - Result with Found=true and the start-to-goal path on success.
//   - Result with Found=false and a nil error when no path exists.
//   - An error for invalid input, an exhausted budget or a cancelled ctx.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and goal must lie on g (tilemap.ErrOutOfBounds).
//
// start == goal returns [(None, start)] without expanding anything, even when
// the cell is impassable. Otherwise the start cell's own passability is not
// checked; an impassable goal is never reached.
//
// The grid is only read. A concurrent Update on g during the search is not
// detected; callers serialize writers against searches.
func (e *Engine) FindPathContext(ctx context.Context, g *tilemap.Grid, start, goal tilemap.Point) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("astar: start %v: %w", start, tilemap.ErrOutOfBounds)
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("astar: goal %v: %w", goal, tilemap.ErrOutOfBounds)
	}
	if start == goal {
		return Result{Path: []Step{{Dir: direction.None, Pos: start}}, Found: true}, nil
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("astar: %w", err)
	}

	r := &runner{
		ctx:     ctx,
		engine:  e,
		grid:    g,
		goal:    goal,
		visited: mapset.New[tilemap.Point](),
		open:    make(frontier, 0, 64),
	}
	r.push(nil, start, 0, direction.None)

	return r.run()
}

// runner holds the mutable state of a single search.
type runner struct {
	ctx      context.Context
	engine   *Engine
	grid     *tilemap.Grid
	goal     tilemap.Point
	visited  mapset.Set[tilemap.Point]
	open     frontier
	seq      uint64
	expanded int
}

// run is the main loop: pop, discard stale, stop at goal, expand.
func (r *runner) run() (Result, error) {
	budget := r.engine.options.MaxExpansions
	for r.open.Len() > 0 {
		cur := heap.Pop(&r.open).(*state)

		if r.visited.Has(cur.pos) {
			continue
		}
		if cur.pos == r.goal {
			return Result{Path: cur.path(), Cost: cur.g, Expanded: r.expanded, Found: true}, nil
		}

		r.visited.Put(cur.pos)
		r.expanded++
		if budget > 0 && r.expanded > budget {
			return Result{Expanded: r.expanded - 1}, fmt.Errorf("%w: %d", ErrBudgetExceeded, budget)
		}
		if r.expanded%ctxCheckEvery == 0 {
			if err := r.ctx.Err(); err != nil {
				return Result{Expanded: r.expanded}, fmt.Errorf("astar: %w", err)
			}
		}

		r.expand(cur)
	}

	return Result{Expanded: r.expanded}, nil
}

// expand pushes a successor for every enterable neighbor of cur.
func (r *runner) expand(cur *state) {
	for _, d := range r.engine.dirs {
		dx, dy := d.Delta()
		next := cur.pos.Add(dx, dy)
		if r.visited.Has(next) {
			continue
		}
		t, err := r.grid.TileAt(next)
		if err != nil || !t.Passable() {
			continue
		}
		if d.IsDiagonal() && !r.cornerOK(cur.pos, dx, dy) {
			continue
		}
		r.push(cur, next, cur.g+t.Cost(), d)
	}
}

// cornerOK applies the corner policy to a diagonal step from p by (dx, dy).
// Off-grid orthogonal cells count as blocked.
func (r *runner) cornerOK(p tilemap.Point, dx, dy int) bool {
	policy := r.engine.options.Corner
	if policy == CornerCutAllow {
		return true
	}
	a, b := r.passable(p.Add(dx, 0)), r.passable(p.Add(0, dy))
	if policy == CornerCutOneOpen {
		return a || b
	}
	return a && b
}

func (r *runner) passable(p tilemap.Point) bool {
	t, err := r.grid.TileAt(p)
	return err == nil && t.Passable()
}

// push adds a new state for pos reached from prev.
func (r *runner) push(prev *state, pos tilemap.Point, g int, d direction.Direction) {
	heap.Push(&r.open, &state{
		prev: prev,
		pos:  pos,
		g:    g,
		h:    r.engine.h(pos, r.goal),
		dir:  d,
		seq:  r.seq,
	})
	r.seq++
}
