package astar

import (
	"github.com/katalvlaran/gridpath/direction"
	"github.com/katalvlaran/gridpath/tilemap"
)

// state is one search node. States form a tree rooted at the start state
// through prev and are never mutated after being pushed.
type state struct {
	prev *state              // nil for the start state
	pos  tilemap.Point       // cell this state stands on
	g    int                 // accumulated cost from start
	h    int                 // heuristic estimate to goal
	dir  direction.Direction // step taken from prev
	seq  uint64              // push order, last tie-breaker
}

// f returns g + h.
func (s *state) f() int { return s.g + s.h }

// frontier is a min-heap of *state ordered by f, then h, then push order.
// Preferring the lower h among equal f favors states nearer the goal; push
// order makes the remaining ties deterministic.
// Stale entries for already-settled cells are skipped by the caller on Pop.
type frontier []*state

// Len returns the number of items in the heap.
func (q frontier) Len() int { return len(q) }

// Less orders by f, h, seq ascending.
func (q frontier) Less(i, j int) bool {
	a, b := q[i], q[j]
	if fa, fb := a.f(), b.f(); fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *state.
func (q *frontier) Push(x any) { *q = append(*q, x.(*state)) }

// Pop removes the last element. Called by heap.Pop.
func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}

// path walks the predecessor chain from s back to the start and returns
// the steps in start-to-goal order.
func (s *state) path() []Step {
	var steps []Step
	for cur := s; cur != nil; cur = cur.prev {
		steps = append(steps, Step{Dir: cur.dir, Pos: cur.pos})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
