// Package astar_test contains unit tests for the A* engine: validation,
// the reference scenarios, movement models, corner policies, budgets and
// cancellation.
package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/direction"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/tilemap"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNew_Validation(t *testing.T) {
	_, err := astar.New(nil, astar.FourDirectional)
	assert.ErrorIs(t, err, astar.ErrNilHeuristic)

	_, err = astar.New(heuristic.Manhattan, astar.Movement(9))
	assert.ErrorIs(t, err, astar.ErrBadMovement)

	e, err := astar.New(heuristic.Chebyshev, astar.EightDirectional)
	require.NoError(t, err)
	assert.Equal(t, astar.EightDirectional, e.Movement())
	assert.Equal(t, astar.DefaultOptions(), e.Options())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { astar.WithMaxExpansions(-1)(&astar.Options{}) })
	assert.Panics(t, func() { astar.WithCornerPolicy(astar.CornerPolicy(7))(&astar.Options{}) })
	assert.NotPanics(t, func() { astar.WithMaxExpansions(0)(&astar.Options{}) })
}

func TestFindPath_InvalidInput(t *testing.T) {
	e := mustEngine(t, heuristic.Manhattan, astar.FourDirectional)
	g := mustGrid(t, "...", "...")

	_, err := e.FindPath(nil, tilemap.Pt(0, 0), tilemap.Pt(1, 1))
	assert.ErrorIs(t, err, astar.ErrNilGrid)

	_, err = e.FindPath(g, tilemap.Pt(-1, 0), tilemap.Pt(1, 1))
	assert.ErrorIs(t, err, tilemap.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "start")

	_, err = e.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(3, 1))
	assert.ErrorIs(t, err, tilemap.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "goal")
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

// Scenario A: 1×3 row, 4-directional, two east steps.
func TestFindPath_ScenarioA(t *testing.T) {
	e := mustEngine(t, heuristic.Manhattan, astar.FourDirectional)
	g := mustGrid(t, "...")

	res, err := e.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(2, 0))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []astar.Step{
		{Dir: direction.None, Pos: tilemap.Pt(0, 0)},
		{Dir: direction.E, Pos: tilemap.Pt(1, 0)},
		{Dir: direction.E, Pos: tilemap.Pt(2, 0)},
	}, res.Path)
	assert.Equal(t, 2, res.Cost)
}

// Scenario B: 3×3 open grid, 8-directional with Chebyshev, two SE steps.
func TestFindPath_ScenarioB(t *testing.T) {
	e := mustEngine(t, heuristic.Chebyshev, astar.EightDirectional)
	g := mustGrid(t, openRows(3, 3)...)

	res, err := e.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(2, 2))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []astar.Step{
		{Dir: direction.None, Pos: tilemap.Pt(0, 0)},
		{Dir: direction.SE, Pos: tilemap.Pt(1, 1)},
		{Dir: direction.SE, Pos: tilemap.Pt(2, 2)},
	}, res.Path)
	assert.Equal(t, 2, res.Cost)
}

// Scenario C: blocked centre forces a detour of cost 4.
func TestFindPath_ScenarioC(t *testing.T) {
	e := mustEngine(t, heuristic.Manhattan, astar.FourDirectional)
	g := mustGrid(t,
		"...",
		".#.",
		"...",
	)

	res, err := e.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(2, 2))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 4, res.Cost)
	assert.Len(t, res.Path, 5)
	assert.NotContains(t, positions(res.Path), tilemap.Pt(1, 1))
	require.NoError(t, astar.Validate(res.Path, astar.FourDirectional))
}

// ------------------------------------------------------------------------
// 3. Trivial and unreachable goals
// ------------------------------------------------------------------------

func TestFindPath_StartIsGoal(t *testing.T) {
	g := mustGrid(t, ".#", "..")
	for _, m := range []astar.Movement{astar.FourDirectional, astar.EightDirectional} {
		e := mustEngine(t, astar.HeuristicFor(m), m)
		for _, p := range []tilemap.Point{{X: 0, Y: 0}, {X: 1, Y: 0}} { // floor and wall
			res, err := e.FindPath(g, p, p)
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, []astar.Step{{Dir: direction.None, Pos: p}}, res.Path)
			assert.Zero(t, res.Cost)
			assert.Zero(t, res.Expanded, "no neighbor expansion for start == goal")
		}
	}
}

// TestFindPath_EnclosedGoal walls the goal in; every reachable cell is settled
// once and the search reports no path without an error.
func TestFindPath_EnclosedGoal(t *testing.T) {
	g := mustGrid(t,
		".....",
		".###.",
		".#g#.",
		".###.",
		".....",
	)
	for _, m := range []astar.Movement{astar.FourDirectional, astar.EightDirectional} {
		e := mustEngine(t, astar.HeuristicFor(m), m)
		res, err := e.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(2, 2))
		require.NoError(t, err, m.String())
		assert.False(t, res.Found, m.String())
		assert.Nil(t, res.Path)
		assert.Equal(t, 16, res.Expanded, m.String())
	}
}

func TestFindPath_ImpassableGoal(t *testing.T) {
	e := mustEngine(t, heuristic.Manhattan, astar.FourDirectional)
	g := mustGrid(t, "..#")

	res, err := e.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(2, 0))
	require.NoError(t, err)
	assert.False(t, res.Found)
}

// TestFindPath_ImpassableStart searches out of a wall cell; only the start's
// own passability is ignored.
func TestFindPath_ImpassableStart(t *testing.T) {
	e := mustEngine(t, heuristic.Manhattan, astar.FourDirectional)
	g := mustGrid(t, "#..")

	res, err := e.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(2, 0))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 2, res.Cost)
}

// ------------------------------------------------------------------------
// 4. Movement models and costs
// ------------------------------------------------------------------------

// TestFindPath_OpenGridDistances checks cost equals Manhattan distance under
// 4-directional movement and Chebyshev distance under 8-directional movement.
func TestFindPath_OpenGridDistances(t *testing.T) {
	g := mustGrid(t, openRows(7, 5)...)
	four := mustEngine(t, heuristic.Manhattan, astar.FourDirectional)
	eight := mustEngine(t, heuristic.Chebyshev, astar.EightDirectional)

	pairs := [][2]tilemap.Point{
		{{X: 0, Y: 0}, {X: 6, Y: 4}},
		{{X: 6, Y: 0}, {X: 0, Y: 4}},
		{{X: 3, Y: 2}, {X: 3, Y: 0}},
		{{X: 1, Y: 4}, {X: 5, Y: 3}},
		{{X: 0, Y: 2}, {X: 6, Y: 2}},
	}
	for _, pr := range pairs {
		a, b := pr[0], pr[1]

		res, err := four.FindPath(g, a, b)
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.Equal(t, heuristic.Manhattan(a, b), res.Cost, "4-dir %v→%v", a, b)
		assert.Len(t, res.Path, res.Cost+1)
		assert.NoError(t, astar.Validate(res.Path, astar.FourDirectional))

		res, err = eight.FindPath(g, a, b)
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.Equal(t, heuristic.Chebyshev(a, b), res.Cost, "8-dir %v→%v", a, b)
		assert.Len(t, res.Path, res.Cost+1)
		assert.NoError(t, astar.Validate(res.Path, astar.EightDirectional))
	}
}

// TestFindPath_WeightedDetour prefers three floor steps and two turns over
// crossing the swamp.
//
//	o ~ ~ g
//	. . . .
func TestFindPath_WeightedDetour(t *testing.T) {
	e := mustEngine(t, heuristic.Manhattan, astar.FourDirectional)
	g := mustGrid(t, "o~~g", "....")

	res, err := e.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(3, 0))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 5, res.Cost)
	assert.Equal(t, []tilemap.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 0}}, positions(res.Path))

	cost, err := astar.PathCost(g, res.Path)
	require.NoError(t, err)
	assert.Equal(t, res.Cost, cost)
}

// TestFindPath_CostCountsEnteredTiles charges the goal tile, not the start tile.
func TestFindPath_CostCountsEnteredTiles(t *testing.T) {
	e := mustEngine(t, heuristic.Zero, astar.FourDirectional)
	g := mustGrid(t, "~m")

	res, err := e.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Cost)

	res, err = e.FindPath(g, tilemap.Pt(1, 0), tilemap.Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Cost)
}

// TestFindPath_FourDirectionalNeverDiagonal forces an L-shaped route.
func TestFindPath_FourDirectionalNeverDiagonal(t *testing.T) {
	e := mustEngine(t, heuristic.Manhattan, astar.FourDirectional)
	g := mustGrid(t, openRows(4, 4)...)

	res, err := e.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(3, 3))
	require.NoError(t, err)
	for _, s := range res.Path {
		assert.False(t, s.Dir.IsDiagonal(), "unexpected %v step", s.Dir)
	}
}

// ------------------------------------------------------------------------
// 5. Corner policies
// ------------------------------------------------------------------------

func TestFindPath_CornerPolicies(t *testing.T) {
	squeeze := mustGrid(t,
		".#",
		"#.",
	)
	oneWall := mustGrid(t,
		".#",
		"..",
	)
	cases := []struct {
		name   string
		grid   *tilemap.Grid
		policy astar.CornerPolicy
		found  bool
		cost   int
	}{
		{"Squeeze/Allow", squeeze, astar.CornerCutAllow, true, 1},
		{"Squeeze/OneOpen", squeeze, astar.CornerCutOneOpen, false, 0},
		{"Squeeze/NoneBlocked", squeeze, astar.CornerCutNoneBlocked, false, 0},
		{"OneWall/Allow", oneWall, astar.CornerCutAllow, true, 1},
		{"OneWall/OneOpen", oneWall, astar.CornerCutOneOpen, true, 1},
		{"OneWall/NoneBlocked", oneWall, astar.CornerCutNoneBlocked, true, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := mustEngine(t, heuristic.Chebyshev, astar.EightDirectional, astar.WithCornerPolicy(tc.policy))
			res, err := e.FindPath(tc.grid, tilemap.Pt(0, 0), tilemap.Pt(1, 1))
			require.NoError(t, err)
			require.Equal(t, tc.found, res.Found)
			assert.Equal(t, tc.cost, res.Cost)
		})
	}
}

// TestFindPath_CornerPolicyIgnoredForFourDirectional keeps 4-dir results unchanged.
func TestFindPath_CornerPolicyIgnoredForFourDirectional(t *testing.T) {
	g := mustGrid(t, "...", ".#.", "...")
	plain := mustEngine(t, heuristic.Manhattan, astar.FourDirectional)
	strict := mustEngine(t, heuristic.Manhattan, astar.FourDirectional, astar.WithCornerPolicy(astar.CornerCutNoneBlocked))

	a, err := plain.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(2, 2))
	require.NoError(t, err)
	b, err := strict.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(2, 2))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// ------------------------------------------------------------------------
// 6. Budget, cancellation, determinism
// ------------------------------------------------------------------------

func TestFindPath_Budget(t *testing.T) {
	g := mustGrid(t, openRows(10, 10)...)
	start, goal := tilemap.Pt(0, 0), tilemap.Pt(9, 9)

	tight := mustEngine(t, heuristic.Manhattan, astar.FourDirectional, astar.WithMaxExpansions(3))
	res, err := tight.FindPath(g, start, goal)
	require.ErrorIs(t, err, astar.ErrBudgetExceeded)
	assert.False(t, res.Found)
	assert.Equal(t, 3, res.Expanded)

	roomy := mustEngine(t, heuristic.Manhattan, astar.FourDirectional, astar.WithMaxExpansions(100))
	res, err = roomy.FindPath(g, start, goal)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.LessOrEqual(t, res.Expanded, 100)
	assert.Equal(t, 18, res.Cost)
}

func TestFindPathContext_Cancelled(t *testing.T) {
	e := mustEngine(t, heuristic.Manhattan, astar.FourDirectional)
	g := mustGrid(t, openRows(5, 5)...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.FindPathContext(ctx, g, tilemap.Pt(0, 0), tilemap.Pt(4, 4))
	assert.ErrorIs(t, err, context.Canceled)

	// start == goal needs no search, so cancellation does not matter
	res, err := e.FindPathContext(ctx, g, tilemap.Pt(2, 2), tilemap.Pt(2, 2))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestFindPath_Deterministic(t *testing.T) {
	e := mustEngine(t, heuristic.Chebyshev, astar.EightDirectional)
	g := mustGrid(t,
		"........",
		"..####..",
		"..#..#..",
		"....m...",
		"~~~~~...",
	)
	first, err := e.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(4, 2))
	require.NoError(t, err)
	require.True(t, first.Found)
	for i := 0; i < 10; i++ {
		again, err := e.FindPath(g, tilemap.Pt(0, 0), tilemap.Pt(4, 2))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestFindPath_DoesNotMutateGrid compares renders and indexes before and after.
func TestFindPath_DoesNotMutateGrid(t *testing.T) {
	e := mustEngine(t, heuristic.Manhattan, astar.FourDirectional)
	g := mustGrid(t, "o..", ".#.", "..g")
	before, counts := g.Render(), g.Counts()

	_, err := e.FindPath(g, g.PositionsOf('o')[0], g.PositionsOf('g')[0])
	require.NoError(t, err)
	assert.Equal(t, before, g.Render())
	assert.Equal(t, counts, g.Counts())
}
