package tiling_test

import (
	"github.com/katalvlaran/tilemaze/sat"
)

// recordingSolver wraps a real solver and remembers whether Solve has run,
// so tests can check when the stats callback fires.
type recordingSolver struct {
	sat.Solver
	solved bool
	calls  int
}

func newRecordingSolver() *recordingSolver {
	return &recordingSolver{Solver: sat.NewGini()}
}

func (r *recordingSolver) Solve() (sat.Solution, error) {
	r.solved = true
	r.calls++
	return r.Solver.Solve()
}
