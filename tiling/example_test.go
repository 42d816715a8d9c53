package tiling_test

import (
	"fmt"

	"github.com/katalvlaran/tilemaze/geometry"
	"github.com/katalvlaran/tilemaze/sat"
	"github.com/katalvlaran/tilemaze/tiling"
)

// ExampleSolve tiles a 4×2 rectangle with dominoes kept inside the region.
func ExampleSolve() {
	p := tiling.Problem{
		Geometry: geometry.Square,
		Tiles:    []tiling.Tile{{Cells: []geometry.Coord{{Q: 0, R: 0}, {Q: 1, R: 0}}}},
		Width:    4,
		Height:   2,
	}
	res, err := tiling.Solve(p, sat.NewGini(), tiling.WithoutOverhang())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("satisfiable:", res.Satisfiable)
	fmt.Println("dominoes:", res.Usage[0])
	fmt.Println("overlaps:", len(tiling.CheckOverlaps(res.Placements)))
	// Output:
	// satisfiable: true
	// dominoes: 4
	// overlaps: 0
}
