package geometry

// CanonicalWall returns the name of w's physical wall as seen from the
// lexicographically smaller of its two cells. Both sides of a shared wall
// produce the same value, so the result is usable as a map key.
// Complexity: O(k) for k edges per cell.
func (g Geometry) CanonicalWall(w Wall) Wall {
	n := g.Neighbor(w.Cell, w.Edge)
	if w.Cell.Less(n) {
		return w
	}
	return Wall{Cell: n, Edge: g.BackEdge(w.Cell, w.Edge)}
}

// Across returns the cell on the other side of w.
func (g Geometry) Across(w Wall) Coord {
	return g.Neighbor(w.Cell, w.Edge)
}

// Walls returns the k walls of cell c in local edge order.
func (g Geometry) Walls(c Coord) []Wall {
	k := g.NumEdges()
	out := make([]Wall, k)
	for e := 0; e < k; e++ {
		out[e] = Wall{Cell: c, Edge: e}
	}
	return out
}
