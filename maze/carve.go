package maze

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/tilemaze/geometry"
	"github.com/katalvlaran/tilemaze/placement"
)

// Adjacencies builds the placement multigraph of ps. It returns one
// Adjacency per pair of placements sharing at least one wall, sorted by
// (A, B), and every wall of every placement, canonical, deduplicated and
// sorted. Edges between two cells of the same placement are not walls.
//
// Placements are assumed disjoint; when two claim a cell the later one owns it.
// Complexity: O(n·k + W log W) for n cells with k edges and W walls.
func Adjacencies(g geometry.Geometry, ps []placement.Placement) ([]Adjacency, []geometry.Wall) {
	owner := make(map[geometry.Coord]int)
	for i, p := range ps {
		for _, c := range p.Cells {
			owner[c] = i
		}
	}
	return adjacencies(g, ps, owner)
}

func adjacencies(g geometry.Geometry, ps []placement.Placement, owner map[geometry.Coord]int) ([]Adjacency, []geometry.Wall) {
	type pair struct{ a, b int }
	all := make(map[geometry.Wall]struct{})
	shared := make(map[pair][]geometry.Wall)
	for i, p := range ps {
		for _, c := range p.Cells {
			for _, w := range g.Walls(c) {
				j, ok := owner[g.Across(w)]
				if ok && j == i {
					continue
				}
				cw := g.CanonicalWall(w)
				all[cw] = struct{}{}
				// Each shared wall is seen once from either side; keep the lower side.
				if ok && i < j {
					shared[pair{i, j}] = append(shared[pair{i, j}], cw)
				}
			}
		}
	}

	adj := make([]Adjacency, 0, len(shared))
	for k, ws := range shared {
		sortWalls(ws)
		adj = append(adj, Adjacency{A: k.a, B: k.b, Walls: ws})
	}
	sortAdjacencies(adj)

	walls := make([]geometry.Wall, 0, len(all))
	for w := range all {
		walls = append(walls, w)
	}
	sortWalls(walls)
	return adj, walls
}

// Carve computes a random spanning forest over the adjacencies of ps and
// opens one shared wall per tree edge. A nil rng uses the default seed.
//
// Steps:
//  1. Index cells by placement; overlapping placements are rejected.
//  2. Build and sort the adjacency multigraph, then shuffle it with rng.
//  3. Run Kruskal over the shuffled order, stopping at N−1 accepted edges.
//  4. For each accepted edge pick one shared wall with rng and open it.
//  5. Return all walls minus the opened ones.
//
// Complexity: O(A·α(N) + W log W) for A adjacencies, N placements and W walls.
func Carve(g geometry.Geometry, ps []placement.Placement, rng *rand.Rand, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	// 1. Cell ownership.
	owner := make(map[geometry.Coord]int)
	for i, p := range ps {
		for _, c := range p.Cells {
			if prev, ok := owner[c]; ok {
				return nil, fmt.Errorf("%w: cell %v in placements %d and %d", ErrOverlappingPlacements, c, prev, i)
			}
			owner[c] = i
		}
	}

	// 2. Multigraph in a reproducible base order before shuffling.
	adj, walls := adjacencies(g, ps, owner)
	shuffleAdjacencies(adj, rng)

	// 3. Randomized Kruskal.
	n := len(ps)
	ds := newDisjointSet(n)
	res := &Result{}
	opened := make(map[geometry.Wall]struct{})
	for _, a := range adj {
		if len(res.Tree) == n-1 {
			break
		}
		if !ds.union(a.A, a.B) {
			continue
		}
		// 4. Open one shared wall.
		w := a.Walls[rng.Intn(len(a.Walls))]
		opened[w] = struct{}{}
		res.Tree = append(res.Tree, a)
		res.Passages = append(res.Passages, Passage{A: a.A, B: a.B, Wall: w})
	}
	res.Components = ds.sets

	// 5. Standing walls keep their sorted order.
	res.Walls = make([]geometry.Wall, 0, len(walls)-len(opened))
	for _, w := range walls {
		if _, ok := opened[w]; !ok {
			res.Walls = append(res.Walls, w)
		}
	}

	o.Logger.Debug("maze carved",
		"placements", n,
		"adjacencies", len(adj),
		"tree_edges", len(res.Tree),
		"components", res.Components,
		"walls", len(res.Walls))
	return res, nil
}

func sortWalls(ws []geometry.Wall) {
	sort.Slice(ws, func(i, j int) bool { return ws[i].Less(ws[j]) })
}

func sortAdjacencies(adj []Adjacency) {
	sort.Slice(adj, func(i, j int) bool {
		if adj[i].A != adj[j].A {
			return adj[i].A < adj[j].A
		}
		return adj[i].B < adj[j].B
	})
}
