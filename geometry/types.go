package geometry

import (
	"errors"
	"fmt"
)

// Sentinel errors for geometry operations.
var (
	// ErrUnknownGeometry indicates a lattice name that ParseKind does not recognise.
	ErrUnknownGeometry = errors.New("geometry: unknown geometry")

	// ErrInvalidRegion indicates a region with a non-positive width or height.
	ErrInvalidRegion = errors.New("geometry: region dimensions must be positive")
)

// Coord is a lattice coordinate. Its meaning depends on the Geometry:
// column/row for Square and Triangle, axial q/r for Hex.
type Coord struct {
	Q, R int
}

// Add returns c translated by o.
func (c Coord) Add(o Offset) Coord {
	return Coord{Q: c.Q + o.DQ, R: c.R + o.DR}
}

// Sub returns the offset that carries b onto c.
func (c Coord) Sub(b Coord) Offset {
	return Offset{DQ: c.Q - b.Q, DR: c.R - b.R}
}

// Less orders coordinates lexicographically by Q, then R.
// This is the order used to pick canonical wall names.
func (c Coord) Less(o Coord) bool {
	if c.Q != o.Q {
		return c.Q < o.Q
	}
	return c.R < o.R
}

// String formats c as "(q,r)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// Offset is a coordinate delta. Neighbour tables and translations use it.
type Offset struct {
	DQ, DR int
}

// Neg returns the opposite offset.
func (o Offset) Neg() Offset {
	return Offset{DQ: -o.DQ, DR: -o.DR}
}

// Even reports whether DQ+DR is even, the parity condition a translation
// must satisfy on lattices with two cell types.
func (o Offset) Even() bool {
	return (o.DQ+o.DR)%2 == 0
}

// CellType identifies which neighbour table a cell uses.
// It lies in [0, Geometry.NumCellTypes()).
type CellType int

// Wall names one side of a cell: the cell and one of its local edge indices.
type Wall struct {
	Cell Coord
	Edge int
}

// String formats w as "(q,r)#e".
func (w Wall) String() string {
	return fmt.Sprintf("%s#%d", w.Cell, w.Edge)
}

// Less orders walls by cell, then by edge index.
func (w Wall) Less(o Wall) bool {
	if w.Cell != o.Cell {
		return w.Cell.Less(o.Cell)
	}
	return w.Edge < o.Edge
}

// Kind tags one of the supported lattices.
type Kind uint8

const (
	// KindSquare is the square lattice.
	KindSquare Kind = iota
	// KindHex is the hexagonal lattice in axial coordinates.
	KindHex
	// KindTriangle is the triangular lattice with alternating up/down cells.
	KindTriangle
)

// String returns the lower-case lattice name.
func (k Kind) String() string {
	switch k {
	case KindSquare:
		return "square"
	case KindHex:
		return "hex"
	case KindTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}
