package transform

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tilemaze/geometry"
)

// Orientation is one transformed, translation-normalized image of a tile.
type Orientation struct {
	// Index is the transform index in [0, 2R).
	Index int

	// Cells are the normalized coordinates, sorted by R then Q.
	Cells []geometry.Coord

	// OriginalIndices[i] is the position in the input list of the cell that
	// became Cells[i].
	OriginalIndices []int

	// Width and Height are the bounding-box extents of Cells.
	Width, Height int
}

// Apply transforms c by transform t without normalizing.
// It panics if t is outside [0, 2R).
func Apply(g geometry.Geometry, t int, c geometry.Coord) geometry.Coord {
	r := checkIndex(g, t)
	if t >= r {
		c, _ = g.Flip(c)
	}
	for i := 0; i < t%r; i++ {
		c, _ = g.Rotate(c)
	}
	return c
}

// Normalize translates cells so that the minimum Q and minimum R are zero and
// returns the shifted copy together with the offset that was applied.
// On lattices with two cell types an odd offset would change every cell's
// type, so the offset is moved one extra column right to keep it even.
func Normalize(g geometry.Geometry, cells []geometry.Coord) ([]geometry.Coord, geometry.Offset) {
	if len(cells) == 0 {
		return nil, geometry.Offset{}
	}
	minQ, minR := cells[0].Q, cells[0].R
	for _, c := range cells[1:] {
		if c.Q < minQ {
			minQ = c.Q
		}
		if c.R < minR {
			minR = c.R
		}
	}
	off := geometry.Offset{DQ: -minQ, DR: -minR}
	if g.NumCellTypes() == 2 && !off.Even() {
		off.DQ++
	}
	out := make([]geometry.Coord, len(cells))
	for i, c := range cells {
		out[i] = c.Add(off)
	}
	return out, off
}

// Enumerate returns the 2R orientations of cells, in transform-index order:
// rotations 0..R-1 of the base shape, then rotations 0..R-1 of the flipped
// shape. An empty tile yields nil.
//
// Complexity: O(R·n log n) for n cells.
func Enumerate(g geometry.Geometry, cells []geometry.Coord) []Orientation {
	if len(cells) == 0 {
		return nil
	}
	n := g.NumTransforms()
	out := make([]Orientation, 0, n)
	raw := make([]geometry.Coord, len(cells))
	for t := 0; t < n; t++ {
		for i, c := range cells {
			raw[i] = Apply(g, t, c)
		}
		norm, _ := Normalize(g, raw)
		out = append(out, orient(t, norm))
	}
	return out
}

// orient sorts norm into canonical order and records where each cell came from.
func orient(t int, norm []geometry.Coord) Orientation {
	idx := make([]int, len(norm))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ca, cb := norm[idx[a]], norm[idx[b]]
		if ca.R != cb.R {
			return ca.R < cb.R
		}
		return ca.Q < cb.Q
	})
	o := Orientation{
		Index:           t,
		Cells:           make([]geometry.Coord, len(norm)),
		OriginalIndices: idx,
	}
	maxQ, maxR := 0, 0
	minQ := norm[0].Q
	for i, j := range idx {
		c := norm[j]
		o.Cells[i] = c
		if c.Q > maxQ {
			maxQ = c.Q
		}
		if c.Q < minQ {
			minQ = c.Q
		}
		if c.R > maxR {
			maxR = c.R
		}
	}
	o.Width = maxQ - minQ + 1
	o.Height = maxR + 1
	return o
}

func checkIndex(g geometry.Geometry, t int) int {
	r := g.NumRotations()
	if t < 0 || t >= 2*r {
		panic(fmt.Sprintf("transform: index %d out of range [0,%d) for %s", t, 2*r, g))
	}
	return r
}
