package tiling

import (
	"github.com/katalvlaran/tilemaze/geometry"
	"github.com/katalvlaran/tilemaze/placement"
	"github.com/katalvlaran/tilemaze/transform"
)

// CheckOverlaps reports every cell covered by more than one placement in
// used. Each extra cover is reported against the first placement that
// claimed the cell. An empty result means the placements are disjoint.
func CheckOverlaps(used []placement.Placement) []OverlapViolation {
	owner := make(map[geometry.Coord]int)
	var out []OverlapViolation
	for _, p := range used {
		for _, c := range p.Cells {
			if first, ok := owner[c]; ok {
				out = append(out, OverlapViolation{Cell: c, A: first, B: p.ID})
				continue
			}
			owner[c] = p.ID
		}
	}
	return out
}

// CheckCoverage returns the region cells that no placement in used covers,
// in row-major order.
func CheckCoverage(region geometry.Region, used []placement.Placement) []geometry.Coord {
	covered := make(map[geometry.Coord]struct{})
	for _, p := range used {
		for _, c := range p.Cells {
			covered[c] = struct{}{}
		}
	}
	var out []geometry.Coord
	for _, c := range region.Cells() {
		if _, ok := covered[c]; !ok {
			out = append(out, c)
		}
	}
	return out
}

// CheckEdgeAdjacencyConsistency projects every authored edge mark of every
// used placement onto its placed wall, through the placement's own forward
// edge permutation, and reports each wall on which two different placements
// disagree. Placements of tiles without an EdgeState are skipped.
func CheckEdgeAdjacencyConsistency(g geometry.Geometry, tiles []Tile, used []placement.Placement) []EdgeViolation {
	type side struct {
		id    int
		value bool
	}
	fwd := transform.ForwardTable(g)
	k := g.NumEdges()
	seen := make(map[geometry.Wall]side)
	var out []EdgeViolation
	for _, p := range used {
		if p.TileType < 0 || p.TileType >= len(tiles) || tiles[p.TileType].Edges == nil {
			continue
		}
		edges := tiles[p.TileType].Edges
		perm := fwd[p.Transform]
		for ci, abs := range p.Cells {
			orig := p.OriginalCells[ci]
			for oe := 0; oe < k; oe++ {
				w := g.CanonicalWall(geometry.Wall{Cell: abs, Edge: perm[oe]})
				v := edges.Mark(orig, oe)
				prev, ok := seen[w]
				if !ok {
					seen[w] = side{id: p.ID, value: v}
					continue
				}
				if prev.id != p.ID && prev.value != v {
					out = append(out, EdgeViolation{Wall: w, A: prev.id, B: p.ID, ValueA: prev.value, ValueB: v})
				}
			}
		}
	}
	return out
}
