package tiling

import (
	"fmt"

	"github.com/katalvlaran/tilemaze/sat"
)

// Solve encodes p into s, reports the instance size, runs the solver and
// projects the model.
//
// Steps:
//  1. Non-positive dimensions: return an unsatisfiable Result with zero stats
//     before any variable is allocated.
//  2. If every tile is empty, return unsatisfiable with zero placements.
//  3. Encode (see Encode for input errors).
//  4. Fire OnStats once.
//  5. s.Solve(); solver errors are wrapped and returned.
//  6. Project the assignment.
func Solve(p Problem, s sat.Solver, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	empty := &Result{Satisfiable: false, Usage: make([]int, len(p.Tiles))}

	if p.Region().Validate() != nil {
		o.Logger.Debug("rejecting region", "width", p.Width, "height", p.Height)
		return empty, nil
	}
	if s == nil {
		return nil, ErrNilSolver
	}
	if !anyCells(p.Tiles) {
		o.Logger.Debug("all tiles empty", "tiles", len(p.Tiles))
		return empty, nil
	}

	enc, err := Encode(p, s, opts...)
	if err != nil {
		return nil, err
	}
	if o.OnStats != nil {
		o.OnStats(enc.Stats)
	}

	sol, err := s.Solve()
	if err != nil {
		return nil, fmt.Errorf("tiling: solve: %w", err)
	}
	res := Project(enc, sol)
	o.Logger.Debug("solved", "satisfiable", res.Satisfiable,
		"used", len(res.Placements), "usage", res.Usage)
	return res, nil
}

// Project decodes sol against enc: a placement is used iff its variable is
// true. Usage is counted per tile type.
func Project(enc *Encoding, sol sat.Solution) *Result {
	res := &Result{
		Satisfiable: sol.Satisfiable,
		Usage:       make([]int, len(enc.Tiles)),
		Stats:       enc.Stats,
	}
	if !sol.Satisfiable {
		return res
	}
	for i, p := range enc.Placements {
		if !sol.Value(enc.PlacementVars[i]) {
			continue
		}
		res.Placements = append(res.Placements, p)
		res.Usage[p.TileType]++
	}
	return res
}

func anyCells(tiles []Tile) bool {
	for _, t := range tiles {
		if len(t.Cells) > 0 {
			return true
		}
	}
	return false
}
