package geometry

// DeriveRotatePermAt exposes the rotation permutation derivation at an
// arbitrary cell so tests can check the per-type cache against it.
func DeriveRotatePermAt(g Geometry, c Coord) []int {
	l := &lattices[g.kind]
	return l.derivePerm(l.rotate, c)
}

// DeriveFlipPermAt is the reflection counterpart of DeriveRotatePermAt.
func DeriveFlipPermAt(g Geometry, c Coord) []int {
	l := &lattices[g.kind]
	return l.derivePerm(l.flip, c)
}
