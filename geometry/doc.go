// Package geometry defines the lattices a tiling can live on and the small
// vocabulary every other package speaks: coordinates, cell types, neighbour
// offsets, walls and rectangular regions.
//
// Three lattices are supported, as a closed set of values:
//
//	Square   — 4 rotations, 1 cell type, (q,r) = (column,row)
//	Hex      — 6 rotations, 1 cell type, axial (q,r)
//	Triangle — 6 rotations, 2 cell types, (q,r) = (column,row), type = (q+r) mod 2
//
// Every cell type owns an ordered list of neighbour offsets; the position of
// an offset in that list is the cell's local edge index. Rotate and Flip map a
// coordinate to its image and return a permutation telling where each local
// edge index went:
//
//	c', perm := geometry.Hex.Rotate(c)
//	// edge i of c is edge perm[i] of c'
//
// Permutations are derived from the coordinate maps by neighbour lookup, never
// typed in by hand, so the coordinate and edge views cannot drift apart. On
// the triangle lattice the neighbour orders are chosen so that the single-step
// permutations do not depend on the cell type.
//
// Walls are (cell, local edge) pairs. The same physical wall can be named from
// both adjacent cells; CanonicalWall picks the name owned by the
// lexicographically smaller cell so walls can be used as map keys.
//
// Invariant violations (a permutation that cannot be derived, a translation
// that breaks parity) are programming errors and panic.
package geometry
