package astar

import (
	"errors"

	"github.com/katalvlaran/gridpath/direction"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/tilemap"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGrid indicates a nil *tilemap.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilHeuristic indicates New was called without a heuristic.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrBadMovement indicates a Movement value outside FourDirectional/EightDirectional.
	ErrBadMovement = errors.New("astar: unknown movement model")

	// ErrBudgetExceeded indicates the search expanded more cells than MaxExpansions
	// allows without settling the goal.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

	// ErrBrokenPath indicates a path whose consecutive steps are not adjacent
	// under the movement model or whose declared direction does not match.
	ErrBrokenPath = errors.New("astar: path is not continuous")

	// ErrBadMaxExpansions indicates a negative expansion budget.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")

	// ErrBadCornerPolicy indicates an unknown CornerPolicy value.
	ErrBadCornerPolicy = errors.New("astar: unknown corner policy")
)

// Movement selects the set of directions the search may expand to.
type Movement int

const (
	// FourDirectional moves N, E, S, W.
	FourDirectional Movement = iota
	// EightDirectional adds NE, NW, SE, SW.
	EightDirectional
)

// Directions returns the expansion order for m, or nil for an unknown model.
func (m Movement) Directions() []direction.Direction {
	switch m {
	case FourDirectional:
		return direction.Cardinals()
	case EightDirectional:
		return direction.All()
	}
	return nil
}

// String names the model.
func (m Movement) String() string {
	switch m {
	case FourDirectional:
		return "4-directional"
	case EightDirectional:
		return "8-directional"
	}
	return "unknown"
}

// HeuristicFor returns the heuristic that is admissible for m at unit cost:
// Chebyshev for EightDirectional, Manhattan otherwise.
func HeuristicFor(m Movement) heuristic.Func {
	if m == EightDirectional {
		return heuristic.Chebyshev
	}
	return heuristic.Manhattan
}

// CornerPolicy decides whether a diagonal step may squeeze past blocked
// orthogonal neighbors. It has no effect under FourDirectional.
//
// CornerCutAllow         – diagonal steps ignore the orthogonal cells.
// CornerCutOneOpen       – at least one of the two orthogonal cells must be passable.
// CornerCutNoneBlocked   – both orthogonal cells must be passable.
type CornerPolicy int

const (
	// CornerCutAllow permits any diagonal step onto a passable cell.
	CornerCutAllow CornerPolicy = iota
	// CornerCutOneOpen forbids squeezing between two blocked cells.
	CornerCutOneOpen
	// CornerCutNoneBlocked forbids touching any blocked corner.
	CornerCutNoneBlocked
)

// Options configures the engine.
//
// MaxExpansions – cells the search may settle before giving up with
//
//	ErrBudgetExceeded. 0 means unlimited.
//
// Corner        – diagonal corner-cutting rule (default CornerCutAllow).
type Options struct {
	MaxExpansions int
	Corner        CornerPolicy
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithMaxExpansions caps the number of settled cells per search.
// Must pass a non-negative value; negative values panic with ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithCornerPolicy sets the diagonal corner-cutting rule.
// Unknown policies panic with ErrBadCornerPolicy.
func WithCornerPolicy(p CornerPolicy) Option {
	return func(o *Options) {
		if p < CornerCutAllow || p > CornerCutNoneBlocked {
			panic(ErrBadCornerPolicy.Error())
		}
		o.Corner = p
	}
}

// DefaultOptions returns Options with no budget and unrestricted corner cutting.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		Corner:        CornerCutAllow,
	}
}

// Step is one element of a path: the direction taken to reach Pos from the
// previous step. The first step of every path has Dir == direction.None.
type Step struct {
	Dir direction.Direction
	Pos tilemap.Point
}

// Result is the outcome of one search.
//
// Found    – false when the frontier ran dry: no path exists. Path is nil then.
// Path     – start-to-goal steps, start included.
// Cost     – sum of tile costs entered after the start.
// Expanded – number of cells settled and expanded.
type Result struct {
	Path     []Step
	Cost     int
	Expanded int
	Found    bool
}
