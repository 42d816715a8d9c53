// Package placement enumerates every position of a tile on a lattice that can
// touch a rectangular region: each of the 2R orientations from package
// transform, combined with every integer translation in a search window
// bounded by the largest orientation bounding box.
//
// A Placement keeps two parallel cell lists: Cells holds the absolute
// positions and OriginalCells the authored, untransformed cells they came
// from. Edge marks are authored on the original cells; encoders look them up
// there and re-project them through the transform's forward edge permutation.
//
// Placements may hang over the region edge. That overhang is expected, not an
// error; coverage is only required inside the region.
package placement

import (
	"fmt"

	"github.com/katalvlaran/tilemaze/geometry"
)

// Placement is one candidate position of a tile.
type Placement struct {
	// ID is unique within one enumeration run.
	ID int

	// Transform is the transform index in [0, 2R).
	Transform int

	// TileType is the index of the tile in the caller's tile list.
	TileType int

	// Offset is the translation applied to the normalized orientation.
	Offset geometry.Offset

	// Cells are the absolute coordinates covered.
	Cells []geometry.Coord

	// OriginalCells[i] is the authored cell that became Cells[i].
	OriginalCells []geometry.Coord
}

// Covers reports whether p covers c.
// Complexity: O(n) for n cells.
func (p Placement) Covers(c geometry.Coord) bool {
	return p.IndexOf(c) >= 0
}

// IndexOf returns the index of c in p.Cells, or -1.
func (p Placement) IndexOf(c geometry.Coord) int {
	for i, pc := range p.Cells {
		if pc == c {
			return i
		}
	}
	return -1
}

// String renders the placement compactly for logs and test failures.
func (p Placement) String() string {
	return fmt.Sprintf("placement#%d{tile=%d t=%d off=(%d,%d) cells=%v}",
		p.ID, p.TileType, p.Transform, p.Offset.DQ, p.Offset.DR, p.Cells)
}

// Translate returns cells shifted by off. On lattices with two cell types an
// odd offset would corrupt cell typing; that is a programming error and panics.
func Translate(g geometry.Geometry, cells []geometry.Coord, off geometry.Offset) []geometry.Coord {
	if g.NumCellTypes() == 2 && !off.Even() {
		panic(fmt.Sprintf("placement: parity-illegal translation (%d,%d) on %s", off.DQ, off.DR, g))
	}
	out := make([]geometry.Coord, len(cells))
	for i, c := range cells {
		out[i] = c.Add(off)
	}
	return out
}
