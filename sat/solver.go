package sat

import (
	"errors"
	"time"
)

// Sentinel errors returned by Solve.
var (
	// ErrResourceExhausted is returned when the instance exceeds a configured
	// resource limit.
	ErrResourceExhausted = errors.New("sat: resource limit exceeded")

	// ErrTimeout is returned when the solver did not reach a verdict within
	// the configured time budget.
	ErrTimeout = errors.New("sat: solve timed out")
)

// Solver is an incremental CNF builder with a one-shot Solve.
type Solver interface {
	NewVariable() int
	AddClause(lits ...int)
	VariableCount() int
	ClauseCount() int
	Solve() (Solution, error)
}

// Solution is the verdict of Solve. Assignment holds a value for every
// variable id in [1, VariableCount()] when Satisfiable is true, and is nil
// otherwise.
type Solution struct {
	Satisfiable bool
	Assignment  map[int]bool
}

// Value returns the assigned value of variable v (false when unassigned).
func (s Solution) Value(v int) bool {
	return s.Assignment[v]
}

// Stats is the size of an encoded instance.
type Stats struct {
	NumVariables int
	NumClauses   int
}

// StatsOf reads the current size of s.
func StatsOf(s Solver) Stats {
	return Stats{NumVariables: s.VariableCount(), NumClauses: s.ClauseCount()}
}

// Options configures the gini-backed solver.
//   - ClauseLimit: if positive, Solve fails with ErrResourceExhausted when more
//     clauses than this were added.
//   - Timeout: if positive, Solve gives up after this long with ErrTimeout.
type Options struct {
	ClauseLimit int
	Timeout     time.Duration
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with no limits.
func DefaultOptions() Options {
	return Options{
		ClauseLimit: 0,
		Timeout:     0,
	}
}

// WithClauseLimit caps the number of clauses Solve accepts.
func WithClauseLimit(n int) Option {
	return func(o *Options) { o.ClauseLimit = n }
}

// WithTimeout bounds the wall-clock time Solve may spend.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}
