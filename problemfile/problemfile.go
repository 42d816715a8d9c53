// Package problemfile reads and writes tiling problems as TOML.
//
//	geometry = "triangle"
//	width = 6
//	height = 4
//
//	[[tiles]]
//	cells = [[0, 0], [1, 0]]
//
//	[[tiles.edges]]
//	cell = [0, 0]
//	marks = [true, false, false]
//
// Cells are [q, r] pairs in the lattice's own coordinates. A tile with
// neither edges entries nor marked = true carries no edge constraints;
// marked = true alone pins every edge of the tile to unmarked. Mark lengths
// are checked by the tiling package, not here.
package problemfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/tilemaze/geometry"
	"github.com/katalvlaran/tilemaze/tiling"
)

var (
	// ErrUnknownGeometry indicates a geometry name other than square, hex or triangle.
	ErrUnknownGeometry = errors.New("problemfile: unknown geometry")

	// ErrMalformedCell indicates a cell that is not a [q, r] pair.
	ErrMalformedCell = errors.New("problemfile: malformed cell")

	// ErrDuplicateEdges indicates two edges entries for the same cell of a tile.
	ErrDuplicateEdges = errors.New("problemfile: duplicate edges entry")
)

type file struct {
	Geometry string     `toml:"geometry"`
	Width    int        `toml:"width"`
	Height   int        `toml:"height"`
	Tiles    []tileFile `toml:"tiles"`
}

type tileFile struct {
	Cells  [][]int     `toml:"cells"`
	Marked bool        `toml:"marked,omitempty"`
	Edges  []edgesFile `toml:"edges,omitempty"`
}

type edgesFile struct {
	Cell  []int  `toml:"cell"`
	Marks []bool `toml:"marks"`
}

// Load reads the problem stored at path.
func Load(path string) (tiling.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tiling.Problem{}, err
	}
	return Parse(data)
}

// Parse decodes a TOML problem description.
func Parse(data []byte) (tiling.Problem, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return tiling.Problem{}, fmt.Errorf("problemfile: decode: %w", err)
	}

	g, err := geometry.ParseKind(f.Geometry)
	if err != nil {
		return tiling.Problem{}, fmt.Errorf("%w: %q", ErrUnknownGeometry, f.Geometry)
	}

	p := tiling.Problem{Geometry: g, Width: f.Width, Height: f.Height}
	for ti, tf := range f.Tiles {
		tile, err := decodeTile(tf)
		if err != nil {
			return tiling.Problem{}, fmt.Errorf("tile %d: %w", ti, err)
		}
		p.Tiles = append(p.Tiles, tile)
	}
	return p, nil
}

func decodeTile(tf tileFile) (tiling.Tile, error) {
	var t tiling.Tile
	for i, raw := range tf.Cells {
		c, err := decodeCell(raw)
		if err != nil {
			return tiling.Tile{}, fmt.Errorf("cell %d: %w", i, err)
		}
		t.Cells = append(t.Cells, c)
	}
	if !tf.Marked && len(tf.Edges) == 0 {
		return t, nil
	}
	t.Edges = make(tiling.EdgeState, len(tf.Edges))
	for i, ef := range tf.Edges {
		c, err := decodeCell(ef.Cell)
		if err != nil {
			return tiling.Tile{}, fmt.Errorf("edges %d: %w", i, err)
		}
		if _, dup := t.Edges[c]; dup {
			return tiling.Tile{}, fmt.Errorf("%w: %v", ErrDuplicateEdges, c)
		}
		t.Edges[c] = append([]bool(nil), ef.Marks...)
	}
	return t, nil
}

func decodeCell(raw []int) (geometry.Coord, error) {
	if len(raw) != 2 {
		return geometry.Coord{}, fmt.Errorf("%w: %v", ErrMalformedCell, raw)
	}
	return geometry.Coord{Q: raw[0], R: raw[1]}, nil
}

// Write encodes p as TOML. Edge entries are written in (q, r) cell order.
func Write(w io.Writer, p tiling.Problem) error {
	f := file{Geometry: p.Geometry.String(), Width: p.Width, Height: p.Height}
	for _, t := range p.Tiles {
		tf := tileFile{Cells: make([][]int, 0, len(t.Cells)), Marked: t.Edges != nil}
		for _, c := range t.Cells {
			tf.Cells = append(tf.Cells, []int{c.Q, c.R})
		}
		for _, c := range sortedCells(t.Edges) {
			tf.Edges = append(tf.Edges, edgesFile{Cell: []int{c.Q, c.R}, Marks: t.Edges[c]})
		}
		f.Tiles = append(f.Tiles, tf)
	}
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("problemfile: encode: %w", err)
	}
	return nil
}

func sortedCells(es tiling.EdgeState) []geometry.Coord {
	out := make([]geometry.Coord, 0, len(es))
	for c := range es {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
