package maze

// disjointSet is a union-find over 0..n-1 with path compression and union
// by rank.
type disjointSet struct {
	parent []int
	rank   []int
	sets   int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n), sets: n}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

// find returns the root of u, halving the path on the way up.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}
	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	// Attach the shallower tree under the deeper root.
	if ds.rank[ru] < ds.rank[rv] {
		ds.parent[ru] = rv
	} else {
		ds.parent[rv] = ru
		if ds.rank[ru] == ds.rank[rv] {
			ds.rank[ru]++
		}
	}
	ds.sets--
	return true
}
