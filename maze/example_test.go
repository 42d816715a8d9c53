package maze_test

import (
	"fmt"

	"github.com/katalvlaran/tilemaze/geometry"
	"github.com/katalvlaran/tilemaze/maze"
)

// ExampleCarve joins two square rooms; the only shared wall is opened and
// the six outer walls stay.
func ExampleCarve() {
	ps := rooms([]geometry.Coord{{Q: 0, R: 0}}, []geometry.Coord{{Q: 1, R: 0}})
	res, err := maze.Carve(geometry.Square, ps, maze.NewRand(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("opened:", res.Passages[0].Wall)
	fmt.Println("walls:", len(res.Walls))
	fmt.Println("components:", res.Components)
	// Output:
	// opened: (0,0)#0
	// walls: 6
	// components: 1
}
