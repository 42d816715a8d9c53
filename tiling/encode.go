package tiling

import (
	"fmt"

	"github.com/katalvlaran/tilemaze/geometry"
	"github.com/katalvlaran/tilemaze/placement"
	"github.com/katalvlaran/tilemaze/sat"
	"github.com/katalvlaran/tilemaze/transform"
)

// Encoding is the CNF view of a Problem as it was fed to a solver.
type Encoding struct {
	Geometry geometry.Geometry
	Region   geometry.Region
	Tiles    []Tile

	// Placements are all candidates; PlacementVars[i] is the variable of
	// Placements[i]. Placements[i].ID == i.
	Placements    []placement.Placement
	PlacementVars []int

	// WallVars maps canonical walls to their variable. Empty when no tile
	// carries an EdgeState.
	WallVars map[geometry.Wall]int

	// MaxWidth and MaxHeight are the largest orientation extents over all
	// tiles; they size the non-overlap halo.
	MaxWidth, MaxHeight int

	// Stats is the solver size right after encoding.
	Stats sat.Stats
}

// Encode enumerates placements for every non-empty tile of p and adds the
// coverage, non-overlap and edge clauses to s.
//
// Returns ErrNilSolver, geometry.ErrInvalidRegion, ErrDuplicateCell or
// ErrEdgeStateLength for bad input; nothing is added to s in that case.
func Encode(p Problem, s sat.Solver, opts ...Option) (*Encoding, error) {
	o := buildOptions(opts)
	if s == nil {
		return nil, ErrNilSolver
	}
	region := p.Region()
	if err := region.Validate(); err != nil {
		return nil, err
	}
	if err := validateTiles(p); err != nil {
		return nil, err
	}

	e := &Encoding{
		Geometry: p.Geometry,
		Region:   region,
		Tiles:    p.Tiles,
		WallVars: make(map[geometry.Wall]int),
	}

	// 1. Placements, one variable each.
	e.enumerate(o.Overhang)
	e.PlacementVars = make([]int, len(e.Placements))
	for i := range e.Placements {
		e.PlacementVars[i] = s.NewVariable()
	}
	o.Logger.Debug("enumerated placements",
		"geometry", p.Geometry, "placements", len(e.Placements),
		"maxWidth", e.MaxWidth, "maxHeight", e.MaxHeight)

	cover := e.coverIndex()

	// 2. Coverage and non-overlap.
	e.addCoverage(s, cover)
	e.addNonOverlap(s, cover)

	// 3. Edge implications.
	e.addEdges(s)

	e.Stats = sat.StatsOf(s)
	o.Logger.Debug("encoded", "variables", e.Stats.NumVariables,
		"clauses", e.Stats.NumClauses, "walls", len(e.WallVars))
	return e, nil
}

// enumerate fills Placements and the halo extents. Without overhang,
// placements leaving the region are dropped and IDs stay consecutive.
func (e *Encoding) enumerate(overhang bool) {
	for ti, tile := range e.Tiles {
		if len(tile.Cells) == 0 {
			continue
		}
		os := transform.Enumerate(e.Geometry, tile.Cells)
		w, h := placement.MaxExtent(os)
		if w > e.MaxWidth {
			e.MaxWidth = w
		}
		if h > e.MaxHeight {
			e.MaxHeight = h
		}
		ps := placement.FromOrientations(e.Geometry, tile.Cells, os, ti, e.Region, len(e.Placements))
		if overhang {
			e.Placements = append(e.Placements, ps...)
			continue
		}
		for _, p := range ps {
			if !inside(e.Region, p.Cells) {
				continue
			}
			p.ID = len(e.Placements)
			e.Placements = append(e.Placements, p)
		}
	}
}

func inside(region geometry.Region, cells []geometry.Coord) bool {
	for _, c := range cells {
		if !region.Contains(c) {
			return false
		}
	}
	return true
}

// coverIndex maps each covered cell to the indices of the placements covering it.
func (e *Encoding) coverIndex() map[geometry.Coord][]int {
	cover := make(map[geometry.Coord][]int)
	for i, p := range e.Placements {
		for _, c := range p.Cells {
			cover[c] = append(cover[c], i)
		}
	}
	return cover
}

// addCoverage emits one at-least-one clause per region cell. A cell with no
// candidates gets the empty clause.
func (e *Encoding) addCoverage(s sat.Solver, cover map[geometry.Coord][]int) {
	for _, c := range e.Region.Cells() {
		idx := cover[c]
		lits := make([]int, len(idx))
		for j, pi := range idx {
			lits[j] = e.PlacementVars[pi]
		}
		s.AddClause(lits...)
	}
}

// addNonOverlap emits pairwise at-most-one clauses over the halo, row-major.
func (e *Encoding) addNonOverlap(s sat.Solver, cover map[geometry.Coord][]int) {
	lo, hi := e.Region.Grow(e.MaxWidth, e.MaxHeight)
	for r := lo.R; r < hi.R; r++ {
		for q := lo.Q; q < hi.Q; q++ {
			idx := cover[geometry.Coord{Q: q, R: r}]
			for a := 0; a < len(idx); a++ {
				for b := a + 1; b < len(idx); b++ {
					s.AddClause(-e.PlacementVars[idx[a]], -e.PlacementVars[idx[b]])
				}
			}
		}
	}
}

// addEdges pins every local edge of every placed cell of an edge-marked tile.
//
// For placement p, placed cell i and original edge k:
//
//	mark  = Edges[OriginalCells[i]][k]
//	wall  = canonical(Cells[i], forward[p.Transform][k])
//	emit    ¬p ∨ wall   if mark
//	        ¬p ∨ ¬wall  otherwise
func (e *Encoding) addEdges(s sat.Solver) {
	if !e.hasEdges() {
		return
	}
	g := e.Geometry
	fwd := transform.ForwardTable(g)
	k := g.NumEdges()
	for i, p := range e.Placements {
		edges := e.Tiles[p.TileType].Edges
		if edges == nil {
			continue
		}
		pv := e.PlacementVars[i]
		perm := fwd[p.Transform]
		for ci, abs := range p.Cells {
			orig := p.OriginalCells[ci]
			for oe := 0; oe < k; oe++ {
				w := g.CanonicalWall(geometry.Wall{Cell: abs, Edge: perm[oe]})
				wv := e.wallVar(s, w)
				if edges.Mark(orig, oe) {
					s.AddClause(-pv, wv)
				} else {
					s.AddClause(-pv, -wv)
				}
			}
		}
	}
}

func (e *Encoding) hasEdges() bool {
	for _, t := range e.Tiles {
		if t.Edges != nil && len(t.Cells) > 0 {
			return true
		}
	}
	return false
}

// wallVar returns the variable of canonical wall w, allocating it on first use.
func (e *Encoding) wallVar(s sat.Solver, w geometry.Wall) int {
	if v, ok := e.WallVars[w]; ok {
		return v
	}
	v := s.NewVariable()
	e.WallVars[w] = v
	return v
}

// validateTiles rejects duplicate cells and mis-sized edge marks.
func validateTiles(p Problem) error {
	k := p.Geometry.NumEdges()
	for ti, t := range p.Tiles {
		seen := make(map[geometry.Coord]struct{}, len(t.Cells))
		for _, c := range t.Cells {
			if _, dup := seen[c]; dup {
				return fmt.Errorf("%w: tile %d cell %v", ErrDuplicateCell, ti, c)
			}
			seen[c] = struct{}{}
		}
		for c, marks := range t.Edges {
			if len(marks) != k {
				return fmt.Errorf("%w: tile %d cell %v has %d marks, want %d", ErrEdgeStateLength, ti, c, len(marks), k)
			}
		}
	}
	return nil
}
