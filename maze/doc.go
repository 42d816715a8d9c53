// Package maze carves a perfect maze out of a tiling.
//
// The placements of a solved tiling are the maze's rooms. Two placements are
// adjacent when they share at least one physical wall, and the adjacency keeps
// every shared wall rather than a single flag, so a passage can be opened
// through any of them.
//
// Carve computes a random spanning tree over that adjacency multigraph with
// randomized Kruskal:
//  1. Sort the adjacencies by placement pair and shuffle them with the caller's RNG.
//  2. Accept each adjacency that joins two different union-find sets.
//  3. Stop after N−1 accepted adjacencies.
//  4. For each accepted adjacency open one of its shared walls, chosen with the RNG.
//
// The remaining walls are every wall of every placement, canonicalized,
// deduplicated and minus the opened ones. A disconnected adjacency graph
// yields a spanning forest; Result.Components reports how many trees it has.
//
// Randomness is always explicit: pass a *rand.Rand from NewRand for
// reproducible mazes, or nil for the fixed default stream.
package maze
