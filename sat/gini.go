package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Gini implements Solver on top of a gini CDCL solver.
type Gini struct {
	g    *gini.Gini
	opts Options

	numVars    int
	numClauses int
	maxAdded   int  // largest variable id seen in a clause
	empty      bool // an empty clause was added
}

// NewGini returns a fresh single-use solver.
func NewGini(opts ...Option) *Gini {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Gini{g: gini.New(), opts: o}
}

// NewVariable returns the next 1-based variable id.
func (s *Gini) NewVariable() int {
	s.numVars++
	return s.numVars
}

// AddClause adds the disjunction of lits. Literals must name variables
// obtained from NewVariable; anything else panics.
func (s *Gini) AddClause(lits ...int) {
	s.numClauses++
	if len(lits) == 0 {
		s.empty = true
		return
	}
	for _, l := range lits {
		v := l
		if v < 0 {
			v = -v
		}
		if v == 0 || v > s.numVars {
			panic(fmt.Sprintf("sat: literal %d references unallocated variable (have %d)", l, s.numVars))
		}
		if v > s.maxAdded {
			s.maxAdded = v
		}
		s.g.Add(z.Dimacs2Lit(l))
	}
	s.g.Add(z.LitNull)
}

// VariableCount returns the number of allocated variables.
func (s *Gini) VariableCount() int { return s.numVars }

// ClauseCount returns the number of clauses added, empty ones included.
func (s *Gini) ClauseCount() int { return s.numClauses }

// Solve runs gini and reads back the model.
//
// Steps:
//  1. Enforce ClauseLimit (ErrResourceExhausted).
//  2. An empty clause makes the instance UNSAT without calling gini.
//  3. Solve synchronously, or via GoSolve().Try when a Timeout is set.
//  4. On SAT, read every variable; variables that never occurred in a
//     clause are unconstrained and reported false.
func (s *Gini) Solve() (Solution, error) {
	if s.opts.ClauseLimit > 0 && s.numClauses > s.opts.ClauseLimit {
		return Solution{}, fmt.Errorf("%w: %d clauses > limit %d", ErrResourceExhausted, s.numClauses, s.opts.ClauseLimit)
	}
	if s.empty {
		return Solution{Satisfiable: false}, nil
	}

	var res int
	if s.opts.Timeout > 0 {
		// Try stops the search itself when the deadline passes.
		res = s.g.GoSolve().Try(s.opts.Timeout)
		if res == 0 {
			return Solution{}, fmt.Errorf("%w after %s", ErrTimeout, s.opts.Timeout)
		}
	} else {
		res = s.g.Solve()
	}
	if res != 1 {
		return Solution{Satisfiable: false}, nil
	}

	assign := make(map[int]bool, s.numVars)
	for v := 1; v <= s.numVars; v++ {
		if v > s.maxAdded {
			assign[v] = false
			continue
		}
		assign[v] = s.g.Value(z.Var(v).Pos())
	}
	return Solution{Satisfiable: true, Assignment: assign}, nil
}
