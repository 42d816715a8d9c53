package geometry

import "fmt"

// lattice holds the fixed tables of one Geometry kind.
// rotatePerm and flipPerm are derived in init from the coordinate maps.
type lattice struct {
	rotations  int
	neighbors  [][]Offset
	rotate     func(Coord) Coord
	flip       func(Coord) Coord
	cellType   func(Coord) CellType
	rotatePerm [][]int
	flipPerm   [][]int
}

// edgeIndex returns the position of off in the neighbour table of t, or -1.
func (l *lattice) edgeIndex(t CellType, off Offset) int {
	for i, o := range l.neighbors[t] {
		if o == off {
			return i
		}
	}
	return -1
}

var lattices [3]lattice

func init() {
	lattices[KindSquare] = lattice{
		rotations: 4,
		neighbors: [][]Offset{
			{{1, 0}, {0, 1}, {-1, 0}, {0, -1}},
		},
		rotate:   func(c Coord) Coord { return Coord{Q: -c.R, R: c.Q} },
		flip:     func(c Coord) Coord { return Coord{Q: -c.Q, R: c.R} },
		cellType: func(Coord) CellType { return 0 },
	}

	// Axial hex: rotation by 60° is the cube rotation (x,y,z) → (-z,-x,-y).
	lattices[KindHex] = lattice{
		rotations: 6,
		neighbors: [][]Offset{
			{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1}},
		},
		rotate:   func(c Coord) Coord { return Coord{Q: -c.R, R: c.Q + c.R} },
		flip:     func(c Coord) Coord { return Coord{Q: c.R, R: c.Q} },
		cellType: func(Coord) CellType { return 0 },
	}

	// Triangle cells in row r alternate type 0 and type 1 with q.
	// Type 0 borders the row below (r-1), type 1 the row above (r+1).
	// Neighbour orders list outward normals so that one rotation maps the
	// edges of either type by the same permutation.
	lattices[KindTriangle] = lattice{
		rotations: 6,
		neighbors: [][]Offset{
			{{1, 0}, {-1, 0}, {0, -1}},
			{{-1, 0}, {1, 0}, {0, 1}},
		},
		rotate:   rotateTriangle,
		flip:     func(c Coord) Coord { return Coord{Q: c.Q, R: -c.R - 1} },
		cellType: func(c Coord) CellType { return CellType(((c.Q+c.R)%2 + 2) % 2) },
	}

	for k := range lattices {
		l := &lattices[k]
		n := len(l.neighbors)
		l.rotatePerm = make([][]int, n)
		l.flipPerm = make([][]int, n)
		for t := 0; t < n; t++ {
			at := representative(CellType(t))
			l.rotatePerm[t] = l.derivePerm(l.rotate, at)
			l.flipPerm[t] = l.derivePerm(l.flip, at)
		}
	}
}

// rotateTriangle rotates by 60° about the lattice vertex at the origin.
// With i = (q-t-r)/2 the cell is triangle (i, r) of the skew lattice; the
// rotation sends up-triangles to down-triangles and back.
func rotateTriangle(c Coord) Coord {
	t := ((c.Q+c.R)%2 + 2) % 2
	i := (c.Q - t - c.R) / 2
	return Coord{Q: i - c.R - 1, R: i + c.R + t}
}

// representative returns a coordinate of cell type t (valid on every lattice
// that has type t).
func representative(t CellType) Coord {
	return Coord{Q: int(t), R: 0}
}

// derivePerm computes the edge permutation of m at c by mapping each neighbour
// of c and locating the image offset in the image cell's table.
func (l *lattice) derivePerm(m func(Coord) Coord, c Coord) []int {
	t := l.cellType(c)
	img := m(c)
	it := l.cellType(img)
	nb := l.neighbors[t]
	perm := make([]int, len(nb))
	seen := make([]bool, len(l.neighbors[it]))
	for i, off := range nb {
		d := m(c.Add(off)).Sub(img)
		j := l.edgeIndex(it, d)
		if j < 0 || seen[j] {
			panic(fmt.Sprintf("geometry: transform of %v is not a lattice symmetry (edge %d)", c, i))
		}
		seen[j] = true
		perm[i] = j
	}
	return perm
}
