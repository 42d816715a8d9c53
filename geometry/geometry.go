package geometry

import (
	"fmt"
	"strings"
)

// Geometry is one of the supported lattices. The zero value is Square.
// Geometry is a small comparable value; pass it by value.
type Geometry struct {
	kind Kind
}

// The supported lattices.
var (
	Square   = Geometry{kind: KindSquare}
	Hex      = Geometry{kind: KindHex}
	Triangle = Geometry{kind: KindTriangle}
)

// ParseKind returns the Geometry named s ("square", "hex", "triangle";
// case-insensitive). Unknown names yield ErrUnknownGeometry.
func ParseKind(s string) (Geometry, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square":
		return Square, nil
	case "hex", "hexagon", "hexagonal":
		return Hex, nil
	case "triangle", "triangular", "tri":
		return Triangle, nil
	default:
		return Geometry{}, fmt.Errorf("%w: %q", ErrUnknownGeometry, s)
	}
}

// Kind returns the lattice tag.
func (g Geometry) Kind() Kind { return g.kind }

// String returns the lattice name.
func (g Geometry) String() string { return g.kind.String() }

// NumRotations returns R: rotating R times is the identity.
func (g Geometry) NumRotations() int {
	return lattices[g.kind].rotations
}

// NumTransforms returns 2·R, the size of the symmetry group used for tiles.
func (g Geometry) NumTransforms() int {
	return 2 * g.NumRotations()
}

// NumCellTypes returns 2 for Triangle and 1 otherwise.
func (g Geometry) NumCellTypes() int {
	return len(lattices[g.kind].neighbors)
}

// NumEdges returns the number of local edges per cell. It is the same for
// every cell type of a lattice.
func (g Geometry) NumEdges() int {
	return len(lattices[g.kind].neighbors[0])
}

// CellType returns the neighbour-table index for c.
// On the triangle lattice it is (q+r) mod 2; elsewhere it is always 0.
func (g Geometry) CellType(c Coord) CellType {
	return lattices[g.kind].cellType(c)
}

// Neighbors returns the ordered neighbour offsets of cell type t.
// The returned slice is a copy; its order defines local edge indices.
func (g Geometry) Neighbors(t CellType) []Offset {
	src := lattices[g.kind].neighbors[t]
	out := make([]Offset, len(src))
	copy(out, src)
	return out
}

// Neighbor returns the cell on the far side of local edge e of c.
// Complexity: O(1).
func (g Geometry) Neighbor(c Coord, e int) Coord {
	return c.Add(lattices[g.kind].neighbors[g.CellType(c)][e])
}

// BackEdge returns the local edge index, on the neighbour across edge e of c,
// that names the same physical wall.
func (g Geometry) BackEdge(c Coord, e int) int {
	l := &lattices[g.kind]
	off := l.neighbors[g.CellType(c)][e]
	n := c.Add(off)
	back := l.edgeIndex(g.CellType(n), off.Neg())
	if back < 0 {
		panic(fmt.Sprintf("geometry: %s edge %d of %s has no back edge", g, e, c))
	}
	return back
}

// Rotate applies one rotation step to c. It returns the image coordinate and
// the permutation of local edges: edge i of c becomes edge perm[i] of the image.
func (g Geometry) Rotate(c Coord) (Coord, []int) {
	l := &lattices[g.kind]
	return l.rotate(c), clonePerm(l.rotatePerm[g.CellType(c)])
}

// Flip applies the lattice reflection to c. Flip is an involution.
func (g Geometry) Flip(c Coord) (Coord, []int) {
	l := &lattices[g.kind]
	return l.flip(c), clonePerm(l.flipPerm[g.CellType(c)])
}

func clonePerm(p []int) []int {
	out := make([]int, len(p))
	copy(out, p)
	return out
}
