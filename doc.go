// Package tilemaze turns "cover this rectangle with copies of these tiles"
// into a SAT instance, solves it, and carves a perfect maze out of the
// resulting tiling.
//
// 🚀 What is tilemaze?
//
//	A geometry-agnostic tiling engine plus a maze carver:
//		• Lattices: square, hex (axial) and triangle, behind one Geometry value
//		• Symmetry: 2R rotations/reflections with tracked edge permutations
//		• Placements: every orientation × translation touching the region
//		• Encoding: coverage, non-overlap and edge-mark clauses in CNF
//		• Solving: go-air/gini behind a small Solver interface
//		• Validation: overlap, coverage and edge-consistency checks
//		• Mazes: randomized Kruskal over the placement adjacency multigraph
//
// Packages:
//
//	geometry/    — Coord, Wall, Region and the three lattices
//	transform/   — orientations of a tile and their edge permutations
//	placement/   — translated orientations that touch a region
//	sat/         — Solver contract and the gini adapter
//	tiling/      — encoder, Solve, projection and validators
//	maze/        — adjacency multigraph, Carve and Route
//	problemfile/ — TOML problem descriptions
//
// Quick example (square dominoes on a 2×2 region):
//
//	┌───┬───┐      ┌───────┐
//	│   │   │      │ ───── │
//	├───┼───┤  →   ├───────┤
//	│   │   │      │ ───── │
//	└───┴───┘      └───────┘
//
//	p := tiling.Problem{Geometry: geometry.Square, Tiles: tiles, Width: 2, Height: 2}
//	res, _ := tiling.Solve(p, sat.NewGini())
//	m, _ := maze.Carve(p.Geometry, res.Placements, maze.NewRand(1))
//
//	go get github.com/katalvlaran/tilemaze
package tilemaze
