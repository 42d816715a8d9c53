// Package sat is the boundary between the tiling encoder and a CNF solver.
//
// Solver is the contract the encoder is written against:
//
//	NewVariable() int          fresh 1-based variable id
//	AddClause(lits ...int)     +v means v is true, -v means v is false;
//	                           no literals means an immediate contradiction
//	VariableCount() int
//	ClauseCount() int
//	Solve() (Solution, error)  blocks until SAT/UNSAT; no partial results
//
// NewGini returns a Solver backed by github.com/go-air/gini, a CDCL solver.
// Literals use DIMACS signs and are converted with z.Dimacs2Lit. An empty
// clause is not passed to gini; it marks the instance unsatisfiable up front.
//
// A Solver instance is single-use and must not be shared by two concurrent
// solves.
package sat
