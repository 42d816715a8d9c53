package transform

import "github.com/katalvlaran/tilemaze/geometry"

// ForwardEdgePermutation returns, for transform t, the map from an original
// local edge index to the local edge index after the transform.
//
// Steps:
//  1. Start from the identity at the origin cell.
//  2. If t >= R, apply one Flip, composing its permutation.
//  3. Apply Rotate t mod R times, composing each step's permutation at the
//     current image of the origin.
func ForwardEdgePermutation(g geometry.Geometry, t int) []int {
	r := checkIndex(g, t)
	perm := Identity(g.NumEdges())
	c := geometry.Coord{}
	step := func(next geometry.Coord, sp []int) {
		for i := range perm {
			perm[i] = sp[perm[i]]
		}
		c = next
	}
	if t >= r {
		step(g.Flip(c))
	}
	for i := 0; i < t%r; i++ {
		step(g.Rotate(c))
	}
	return perm
}

// InverseEdgePermutation returns the inverse of ForwardEdgePermutation(g, t):
// placed edge index → original edge index.
func InverseEdgePermutation(g geometry.Geometry, t int) []int {
	return Invert(ForwardEdgePermutation(g, t))
}

// ForwardTable returns ForwardEdgePermutation for every transform index,
// indexed by t. Encoders use it to avoid recomputing per placement.
func ForwardTable(g geometry.Geometry) [][]int {
	out := make([][]int, g.NumTransforms())
	for t := range out {
		out[t] = ForwardEdgePermutation(g, t)
	}
	return out
}

// Identity returns the identity permutation of size k.
func Identity(k int) []int {
	p := make([]int, k)
	for i := range p {
		p[i] = i
	}
	return p
}

// Invert returns q with q[p[i]] = i.
func Invert(p []int) []int {
	q := make([]int, len(p))
	for i, v := range p {
		q[v] = i
	}
	return q
}

// Compose returns the permutation "a, then b": out[i] = b[a[i]].
func Compose(a, b []int) []int {
	out := make([]int, len(a))
	for i, v := range a {
		out[i] = b[v]
	}
	return out
}

// IsIdentity reports whether p maps every index to itself.
func IsIdentity(p []int) bool {
	for i, v := range p {
		if i != v {
			return false
		}
	}
	return true
}
