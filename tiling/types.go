package tiling

import (
	"errors"

	"github.com/katalvlaran/tilemaze/geometry"
	"github.com/katalvlaran/tilemaze/placement"
	"github.com/katalvlaran/tilemaze/sat"
)

// Sentinel errors for tiling operations.
var (
	// ErrNilSolver indicates that no sat.Solver was supplied.
	ErrNilSolver = errors.New("tiling: solver is nil")

	// ErrDuplicateCell indicates a tile lists the same cell twice.
	ErrDuplicateCell = errors.New("tiling: duplicate tile cell")

	// ErrEdgeStateLength indicates an EdgeState entry whose length differs
	// from the geometry's edge count.
	ErrEdgeStateLength = errors.New("tiling: edge state length does not match geometry")
)

// EdgeState holds the authored edge marks of a tile, keyed by the authored
// (untransformed) cell; each slice has one flag per local edge. Cells
// without an entry are treated as fully unmarked.
type EdgeState map[geometry.Coord][]bool

// Mark reports whether edge e of cell c is marked.
func (es EdgeState) Mark(c geometry.Coord, e int) bool {
	marks := es[c]
	return e < len(marks) && marks[e]
}

// Tile is one tile shape. Edges is nil when the tile carries no edge marks.
type Tile struct {
	Cells []geometry.Coord
	Edges EdgeState
}

// Problem describes one tiling request.
type Problem struct {
	Geometry geometry.Geometry
	Tiles    []Tile
	Width    int
	Height   int
}

// Region returns the target rectangle of p.
func (p Problem) Region() geometry.Region {
	return geometry.Region{Width: p.Width, Height: p.Height}
}

// Result is the outcome of Solve.
type Result struct {
	// Satisfiable reports whether a tiling exists.
	Satisfiable bool

	// Placements are the used placements, in enumeration order.
	Placements []placement.Placement

	// Usage[i] counts used placements of Problem.Tiles[i].
	Usage []int

	// Stats is the size of the encoded instance.
	Stats sat.Stats
}

// OverlapViolation reports a cell covered by two used placements.
type OverlapViolation struct {
	Cell geometry.Coord
	A, B int // placement IDs
}

// EdgeViolation reports a wall on which two used placements disagree.
type EdgeViolation struct {
	Wall           geometry.Wall // canonical
	A, B           int           // placement IDs
	ValueA, ValueB bool
}
