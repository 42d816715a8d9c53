package maze

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/tilemaze/geometry"
)

// Sentinel errors for maze operations.
var (
	// ErrOverlappingPlacements indicates two placements claim the same cell.
	ErrOverlappingPlacements = errors.New("maze: placements overlap")

	// ErrPlacementNotFound indicates a placement index outside [0, n).
	ErrPlacementNotFound = errors.New("maze: placement not found")

	// ErrNoRoute indicates that two placements lie in different components.
	ErrNoRoute = errors.New("maze: no route between placements")
)

// Adjacency is one edge of the placement multigraph. A and B are indices
// into the placement slice with A < B; Walls lists every canonical wall the
// two placements share, sorted.
type Adjacency struct {
	A, B  int
	Walls []geometry.Wall
}

// Passage is an opened wall between placements A and B.
type Passage struct {
	A, B int
	Wall geometry.Wall
}

// Result is a carved maze.
type Result struct {
	// Walls are the canonical walls left standing, sorted.
	Walls []geometry.Wall

	// Passages are the opened walls, one per tree edge, in acceptance order.
	Passages []Passage

	// Tree holds the accepted adjacencies, parallel to Passages.
	Tree []Adjacency

	// Components is the number of trees in the spanning forest.
	Components int
}

// Options configures Carve.
//   - Logger: receives debug-level progress; defaults to a discarding logger.
type Options struct {
	Logger *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// WithLogger routes progress logs to l. A nil l keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
