// Package tiling turns "cover a region with copies of these tiles" into CNF,
// solves it through a sat.Solver and projects the model back to placements.
//
// Encoding (one boolean variable per placement):
//
//  1. Coverage: every region cell gets a clause over the placements that
//     cover it. A cell nobody covers gets the empty clause; the solver, not
//     the encoder, reports the instance unsatisfiable.
//  2. Non-overlap: for every covered cell in the halo (the region grown by
//     the largest orientation extent) and every pair of placements covering
//     it, the clause ¬a ∨ ¬b. This is O(k²) per cell.
//  3. Edge implications, only for tiles with an EdgeState. One variable per
//     canonical wall; every placement pins every local edge of every covered
//     cell to its authored mark: ¬p ∨ w when marked, ¬p ∨ ¬w when not.
//     Unmarked edges are pinned too, roughly doubling the edge clauses.
//
// Solve fires the stats callback exactly once, after encoding and before the
// solver runs. The solver blocks; there are no partial results and no
// cancellation.
//
// CheckOverlaps, CheckEdgeAdjacencyConsistency and CheckCoverage work on a
// list of used placements alone and return findings rather than errors. They
// exist to catch encoder or geometry bugs in tests.
package tiling
