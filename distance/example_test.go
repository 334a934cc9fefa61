package distance_test

import (
	"fmt"

	"github.com/katalvlaran/junction/distance"
	"github.com/katalvlaran/junction/point"
)

// ExampleBuild lists the ordered edges of four junction boxes. AB and AC are
// both 5 long; the lower ID pair comes first.
func ExampleBuild() {
	s, _ := point.FromCoordinates([][3]int64{{0, 0, 0}, {3, 4, 0}, {0, 0, 5}, {10, 10, 10}})
	ix, err := distance.Build(s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range ix.Edges() {
		fmt.Println(e)
	}
	// Output:
	// 0-1(5.000)
	// 0-2(5.000)
	// 1-2(7.071)
	// 1-3(13.601)
	// 2-3(15.000)
	// 0-3(17.321)
}
