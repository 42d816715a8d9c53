package maze

import "fmt"

// Route returns the placement indices on the unique path from `from` to `to`
// through the passages of res, both ends included. n is the number of
// placements res was carved from.
//
// Returns ErrPlacementNotFound if either index, or either end of a passage,
// lies outside [0, n), and ErrNoRoute if they belong to different trees of
// the forest. A nil res has no passages.
// Complexity: O(n) via breadth-first search.
func Route(res *Result, n, from, to int) ([]int, error) {
	if from < 0 || from >= n {
		return nil, fmt.Errorf("%w: %d", ErrPlacementNotFound, from)
	}
	if to < 0 || to >= n {
		return nil, fmt.Errorf("%w: %d", ErrPlacementNotFound, to)
	}

	adj := make([][]int, n)
	var passages []Passage
	if res != nil {
		passages = res.Passages
	}
	for _, p := range passages {
		if p.A < 0 || p.A >= n || p.B < 0 || p.B >= n {
			return nil, fmt.Errorf("%w: passage %d-%d with %d placements", ErrPlacementNotFound, p.A, p.B, n)
		}
		adj[p.A] = append(adj[p.A], p.B)
		adj[p.B] = append(adj[p.B], p.A)
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	parent[from] = from
	queue := []int{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == to {
			break
		}
		for _, v := range adj[u] {
			if parent[v] < 0 {
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}
	if parent[to] < 0 {
		return nil, fmt.Errorf("%w: %d to %d", ErrNoRoute, from, to)
	}

	var path []int
	for v := to; v != from; v = parent[v] {
		path = append(path, v)
	}
	path = append(path, from)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
