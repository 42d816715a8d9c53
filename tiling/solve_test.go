package tiling_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilemaze/geometry"
	"github.com/katalvlaran/tilemaze/sat"
	"github.com/katalvlaran/tilemaze/tiling"
)

var (
	monomino = []geometry.Coord{{Q: 0, R: 0}}
	domino   = []geometry.Coord{{Q: 0, R: 0}, {Q: 1, R: 0}}
)

// requireExactCover asserts that res covers every region cell exactly once.
func requireExactCover(t *testing.T, region geometry.Region, res *tiling.Result) {
	t.Helper()
	require.True(t, res.Satisfiable)
	require.Empty(t, tiling.CheckOverlaps(res.Placements), "overlaps")
	require.Empty(t, tiling.CheckCoverage(region, res.Placements), "uncovered cells")
}

// TestScenarioA_MonominoSquare tiles a 2×2 square region with a 1×1 tile.
func TestScenarioA_MonominoSquare(t *testing.T) {
	p := tiling.Problem{
		Geometry: geometry.Square,
		Tiles:    []tiling.Tile{{Cells: monomino}},
		Width:    2,
		Height:   2,
	}
	res, err := tiling.Solve(p, sat.NewGini())
	require.NoError(t, err)
	requireExactCover(t, p.Region(), res)
	require.Len(t, res.Placements, 4)
	assert.Equal(t, []int{4}, res.Usage)
	for _, pl := range res.Placements {
		assert.GreaterOrEqual(t, pl.Transform, 0)
		assert.Less(t, pl.Transform, 8)
		require.Len(t, pl.Cells, 1)
		assert.Equal(t, pl.Offset, pl.Cells[0].Sub(geometry.Coord{}), "monomino placements are pure translations")
	}
	// 8 orientations × 4 cells, one variable each; no edge variables.
	assert.Equal(t, 32, res.Stats.NumVariables)
}

// TestScenarioB_DominoSquare tiles a 2×2 square region with dominoes.
func TestScenarioB_DominoSquare(t *testing.T) {
	p := tiling.Problem{
		Geometry: geometry.Square,
		Tiles:    []tiling.Tile{{Cells: domino}},
		Width:    2,
		Height:   2,
	}

	t.Run("Inside", func(t *testing.T) {
		res, err := tiling.Solve(p, sat.NewGini(), tiling.WithoutOverhang())
		require.NoError(t, err)
		requireExactCover(t, p.Region(), res)
		require.Len(t, res.Placements, 2)
		assert.Empty(t, tiling.CheckOverlaps(res.Placements))
	})

	t.Run("Overhang", func(t *testing.T) {
		// Overhanging dominoes are legal, so 2 to 4 may be used; the region
		// itself must still be covered exactly once.
		res, err := tiling.Solve(p, sat.NewGini())
		require.NoError(t, err)
		requireExactCover(t, p.Region(), res)
		assert.GreaterOrEqual(t, len(res.Placements), 2)
		assert.LessOrEqual(t, len(res.Placements), 4)
	})
}

// TestScenarioC_EdgeMarks tiles with tiles marking one edge on every cell
// and checks that the solution's walls agree on both sides.
func TestScenarioC_EdgeMarks(t *testing.T) {
	cases := []struct {
		name string
		g    geometry.Geometry
		tile tiling.Tile
		w, h int
	}{
		{
			name: "SquareDominoInnerWall",
			g:    geometry.Square,
			tile: tiling.Tile{Cells: domino, Edges: tiling.EdgeState{
				{Q: 0, R: 0}: {true, false, false, false},
				{Q: 1, R: 0}: {false, false, true, false},
			}},
			w: 4, h: 2,
		},
		{
			name: "SquareMonomino",
			g:    geometry.Square,
			tile: tiling.Tile{Cells: monomino, Edges: tiling.EdgeState{
				{Q: 0, R: 0}: {true, false, false, false},
			}},
			w: 2, h: 2,
		},
		{
			name: "HexMonomino",
			g:    geometry.Hex,
			tile: tiling.Tile{Cells: monomino, Edges: tiling.EdgeState{
				{Q: 0, R: 0}: {false, false, true, false, false, false},
			}},
			w: 2, h: 2,
		},
		{
			name: "TrianglePair",
			g:    geometry.Triangle,
			tile: tiling.Tile{Cells: domino, Edges: tiling.EdgeState{
				{Q: 0, R: 0}: {true, false, false},
				{Q: 1, R: 0}: {true, false, false},
			}},
			w: 2, h: 2,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tiling.Problem{Geometry: tc.g, Tiles: []tiling.Tile{tc.tile}, Width: tc.w, Height: tc.h}
			res, err := tiling.Solve(p, sat.NewGini())
			require.NoError(t, err)
			requireExactCover(t, p.Region(), res)
			assert.Empty(t, tiling.CheckEdgeAdjacencyConsistency(tc.g, p.Tiles, res.Placements))
			assert.Greater(t, res.Stats.NumVariables, len(res.Placements), "wall variables allocated")
		})
	}
}

// TestSolve_InconsistentMarksUnsat marks the shared inner wall of a domino on
// one side only: every placement pins that wall both ways, so none can be used.
func TestSolve_InconsistentMarksUnsat(t *testing.T) {
	tile := tiling.Tile{Cells: domino, Edges: tiling.EdgeState{
		{Q: 0, R: 0}: {true, false, false, false},
		{Q: 1, R: 0}: {false, false, false, false},
	}}
	p := tiling.Problem{Geometry: geometry.Square, Tiles: []tiling.Tile{tile}, Width: 2, Height: 2}
	res, err := tiling.Solve(p, sat.NewGini())
	require.NoError(t, err)
	assert.False(t, res.Satisfiable)
	assert.Empty(t, res.Placements)
}

// TestSolve_ExactCoverAcrossLattices solves a few tilings per lattice and
// checks the exact-cover property.
func TestSolve_ExactCoverAcrossLattices(t *testing.T) {
	cases := []struct {
		name  string
		g     geometry.Geometry
		cells []geometry.Coord
		w, h  int
	}{
		{"SquareDomino4x3", geometry.Square, domino, 4, 3},
		{"SquareEll4x4", geometry.Square, []geometry.Coord{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 2, R: 0}, {Q: 0, R: 1}}, 4, 4},
		{"HexPair2x2", geometry.Hex, domino, 2, 2},
		{"HexTriple3x2", geometry.Hex, []geometry.Coord{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 2, R: 0}}, 3, 2},
		{"TrianglePair4x2", geometry.Triangle, domino, 4, 2},
		{"TriangleMono3x3", geometry.Triangle, monomino, 3, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tiling.Problem{Geometry: tc.g, Tiles: []tiling.Tile{{Cells: tc.cells}}, Width: tc.w, Height: tc.h}
			res, err := tiling.Solve(p, sat.NewGini(), tiling.WithoutOverhang())
			require.NoError(t, err)
			requireExactCover(t, p.Region(), res)
			cells := 0
			for _, pl := range res.Placements {
				cells += len(pl.Cells)
			}
			assert.Equal(t, tc.w*tc.h, cells)
		})
	}
}

// TestSolve_OddAreaDominoUnsat needs overhang to cover 9 cells with dominoes.
func TestSolve_OddAreaDominoUnsat(t *testing.T) {
	p := tiling.Problem{Geometry: geometry.Square, Tiles: []tiling.Tile{{Cells: domino}}, Width: 3, Height: 3}

	res, err := tiling.Solve(p, sat.NewGini(), tiling.WithoutOverhang())
	require.NoError(t, err)
	assert.False(t, res.Satisfiable)

	res, err = tiling.Solve(p, sat.NewGini())
	require.NoError(t, err)
	requireExactCover(t, p.Region(), res)
}

// TestSolve_UncoverableCellsEmitEmptyClauses uses a tile larger than the
// region without overhang: there are no placements, every region cell gets
// an empty coverage clause and the solver reports UNSAT.
func TestSolve_UncoverableCellsEmitEmptyClauses(t *testing.T) {
	bar := []geometry.Coord{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 2, R: 0}}
	p := tiling.Problem{Geometry: geometry.Square, Tiles: []tiling.Tile{{Cells: bar}}, Width: 2, Height: 2}
	res, err := tiling.Solve(p, sat.NewGini(), tiling.WithoutOverhang())
	require.NoError(t, err)
	assert.False(t, res.Satisfiable)
	assert.Equal(t, sat.Stats{NumVariables: 0, NumClauses: 4}, res.Stats)
}

// TestSolve_InvalidRegionFailsFast returns UNSAT with zero stats before any
// variable is allocated.
func TestSolve_InvalidRegionFailsFast(t *testing.T) {
	for _, dims := range [][2]int{{0, 2}, {2, 0}, {-3, 4}} {
		s := sat.NewGini()
		called := false
		p := tiling.Problem{Geometry: geometry.Square, Tiles: []tiling.Tile{{Cells: monomino}}, Width: dims[0], Height: dims[1]}
		res, err := tiling.Solve(p, s, tiling.WithStatsCallback(func(sat.Stats) { called = true }))
		require.NoError(t, err)
		assert.False(t, res.Satisfiable)
		assert.Equal(t, sat.Stats{}, res.Stats)
		assert.Zero(t, s.VariableCount())
		assert.False(t, called)
	}
}

// TestSolve_EmptyTiles drops empty tiles and reports UNSAT when none remain.
func TestSolve_EmptyTiles(t *testing.T) {
	s := sat.NewGini()
	p := tiling.Problem{Geometry: geometry.Hex, Tiles: []tiling.Tile{{}, {Cells: nil}}, Width: 2, Height: 2}
	res, err := tiling.Solve(p, s)
	require.NoError(t, err)
	assert.False(t, res.Satisfiable)
	assert.Empty(t, res.Placements)
	assert.Equal(t, []int{0, 0}, res.Usage)
	assert.Zero(t, s.VariableCount())

	p.Tiles = []tiling.Tile{{}, {Cells: monomino}}
	res, err = tiling.Solve(p, sat.NewGini())
	require.NoError(t, err)
	requireExactCover(t, p.Region(), res)
	assert.Equal(t, []int{0, 4}, res.Usage)
}

// TestSolve_MultiTileUsage mixes monominoes and dominoes on a 1×3 strip.
func TestSolve_MultiTileUsage(t *testing.T) {
	p := tiling.Problem{
		Geometry: geometry.Square,
		Tiles:    []tiling.Tile{{Cells: monomino}, {Cells: domino}},
		Width:    3,
		Height:   1,
	}
	res, err := tiling.Solve(p, sat.NewGini(), tiling.WithoutOverhang())
	require.NoError(t, err)
	requireExactCover(t, p.Region(), res)
	require.Len(t, res.Usage, 2)
	assert.Equal(t, 3, res.Usage[0]+2*res.Usage[1])
	for _, pl := range res.Placements {
		assert.Len(t, pl.Cells, len(p.Tiles[pl.TileType].Cells))
	}
}

// TestSolve_StatsCallback fires exactly once, before the solver runs.
func TestSolve_StatsCallback(t *testing.T) {
	s := newRecordingSolver()
	var got []sat.Stats
	p := tiling.Problem{Geometry: geometry.Square, Tiles: []tiling.Tile{{Cells: domino}}, Width: 2, Height: 2}
	res, err := tiling.Solve(p, s, tiling.WithStatsCallback(func(st sat.Stats) {
		require.False(t, s.solved, "callback must fire before Solve")
		got = append(got, st)
	}))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, res.Stats, got[0])
	assert.Equal(t, 1, s.calls)
	assert.Positive(t, got[0].NumClauses)
}

// TestSolve_InputErrors covers the sentinel errors.
func TestSolve_InputErrors(t *testing.T) {
	base := tiling.Problem{Geometry: geometry.Square, Width: 2, Height: 2}

	p := base
	p.Tiles = []tiling.Tile{{Cells: monomino}}
	_, err := tiling.Solve(p, nil)
	assert.True(t, errors.Is(err, tiling.ErrNilSolver))

	p.Tiles = []tiling.Tile{{Cells: []geometry.Coord{{Q: 0, R: 0}, {Q: 0, R: 0}}}}
	_, err = tiling.Solve(p, sat.NewGini())
	assert.True(t, errors.Is(err, tiling.ErrDuplicateCell))

	p.Tiles = []tiling.Tile{{Cells: monomino, Edges: tiling.EdgeState{{Q: 0, R: 0}: {true}}}}
	_, err = tiling.Solve(p, sat.NewGini())
	assert.True(t, errors.Is(err, tiling.ErrEdgeStateLength))
}

// TestSolve_SolverErrorPropagates wraps resource exhaustion from the backend.
func TestSolve_SolverErrorPropagates(t *testing.T) {
	p := tiling.Problem{Geometry: geometry.Square, Tiles: []tiling.Tile{{Cells: domino}}, Width: 3, Height: 3}
	_, err := tiling.Solve(p, sat.NewGini(sat.WithClauseLimit(5)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, sat.ErrResourceExhausted))
}
