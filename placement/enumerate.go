package placement

import (
	"github.com/katalvlaran/tilemaze/geometry"
	"github.com/katalvlaran/tilemaze/transform"
)

// MaxExtent returns the largest bounding-box width and height over os.
func MaxExtent(os []transform.Orientation) (w, h int) {
	for _, o := range os {
		// Width counts from the leftmost cell; a parity-shifted orientation
		// starts one column in, so its right edge is one further out.
		right := o.Width
		if len(o.Cells) > 0 {
			right += minQ(o.Cells)
		}
		if right > w {
			w = right
		}
		if o.Height > h {
			h = o.Height
		}
	}
	return w, h
}

func minQ(cells []geometry.Coord) int {
	m := cells[0].Q
	for _, c := range cells[1:] {
		if c.Q < m {
			m = c.Q
		}
	}
	return m
}

// Enumerate returns every placement of the tile cells (authored coordinates,
// any origin) that intersects region. IDs are consecutive from firstID.
func Enumerate(g geometry.Geometry, cells []geometry.Coord, tileType int, region geometry.Region, firstID int) []Placement {
	return FromOrientations(g, cells, transform.Enumerate(g, cells), tileType, region, firstID)
}

// FromOrientations is Enumerate for callers that already hold the
// orientations of cells (for example to share MaxExtent with an encoder).
//
// Steps:
//  1. Compute the maximum extent (maxW, maxH) over all orientations.
//  2. For each orientation and each translation (dq, dr) in
//     [-maxW, W) × [-maxH, H), row-major:
//     a. skip odd dq+dr on two-type lattices;
//     b. translate and keep the placement iff at least one cell is inside.
//  3. Record the pre-transform cell for each placed cell via OriginalIndices.
//
// The order is deterministic. Complexity: O(2R · (W+maxW)(H+maxH) · n).
func FromOrientations(g geometry.Geometry, cells []geometry.Coord, os []transform.Orientation, tileType int, region geometry.Region, firstID int) []Placement {
	if len(os) == 0 || region.Validate() != nil {
		return nil
	}
	maxW, maxH := MaxExtent(os)
	twoTypes := g.NumCellTypes() == 2

	var out []Placement
	id := firstID
	for _, o := range os {
		for dr := -maxH; dr < region.Height; dr++ {
			for dq := -maxW; dq < region.Width; dq++ {
				off := geometry.Offset{DQ: dq, DR: dr}
				if twoTypes && !off.Even() {
					continue
				}
				abs := Translate(g, o.Cells, off)
				if !intersects(region, abs) {
					continue
				}
				orig := make([]geometry.Coord, len(abs))
				for i, j := range o.OriginalIndices {
					orig[i] = cells[j]
				}
				out = append(out, Placement{
					ID:            id,
					Transform:     o.Index,
					TileType:      tileType,
					Offset:        off,
					Cells:         abs,
					OriginalCells: orig,
				})
				id++
			}
		}
	}
	return out
}

func intersects(region geometry.Region, cells []geometry.Coord) bool {
	for _, c := range cells {
		if region.Contains(c) {
			return true
		}
	}
	return false
}
