package geometry

// Region is the rectangle [0,Width) × [0,Height) in lattice coordinates.
// On the hex lattice this is an axial parallelogram.
type Region struct {
	Width, Height int
}

// NewRegion validates the dimensions and returns the region.
// Returns ErrInvalidRegion if either dimension is not positive.
func NewRegion(width, height int) (Region, error) {
	r := Region{Width: width, Height: height}
	if err := r.Validate(); err != nil {
		return Region{}, err
	}
	return r, nil
}

// Validate reports ErrInvalidRegion for non-positive dimensions.
func (r Region) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return ErrInvalidRegion
	}
	return nil
}

// Contains reports whether c lies inside the region.
// Complexity: O(1).
func (r Region) Contains(c Coord) bool {
	return c.Q >= 0 && c.Q < r.Width && c.R >= 0 && c.R < r.Height
}

// Size returns the number of cells in the region.
func (r Region) Size() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Index maps c to its row-major index R*Width + Q.
func (r Region) Index(c Coord) int {
	return c.R*r.Width + c.Q
}

// Coordinate converts a row-major index back to a coordinate.
func (r Region) Coordinate(idx int) Coord {
	return Coord{Q: idx % r.Width, R: idx / r.Width}
}

// Cells returns every cell of the region in row-major order.
func (r Region) Cells() []Coord {
	out := make([]Coord, 0, r.Size())
	for i := 0; i < r.Size(); i++ {
		out = append(out, r.Coordinate(i))
	}
	return out
}

// Grow returns the region extended by dw columns and dh rows on every side,
// expressed as its minimum and maximum (exclusive) corners.
func (r Region) Grow(dw, dh int) (lo, hi Coord) {
	return Coord{Q: -dw, R: -dh}, Coord{Q: r.Width + dw, R: r.Height + dh}
}
