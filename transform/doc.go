// Package transform builds the symmetry group of a lattice out of the
// single-step Rotate and Flip of package geometry.
//
// A transform index t lies in [0, 2R) for R = Geometry.NumRotations():
//
//	t <  R : rotate t times
//	t >= R : flip once, then rotate t-R times
//
// Enumerate applies all 2R transforms to a tile and normalizes each image by
// translation. It never merges orientations that cover the same cells: a
// single-cell tile still yields 2R orientations, because the edges of the
// cell point in different directions in each of them and edge constraints
// depend on that.
//
// Edge permutations are derived rather than stored: ForwardEdgePermutation
// composes the single-step permutations along the same flip/rotate sequence
// that Apply uses for coordinates. Forward maps an original local edge to the
// placed edge; InverseEdgePermutation maps back.
package transform
