package sortbucket_test

import (
	"fmt"

	"github.com/RoseZhao/scclust/digraph"
	"github.com/RoseZhao/scclust/sortbucket"
)

// ExampleBuildSort sorts four vertices by how many arcs point at them,
// the ordering the INWARDS_ORDER and EXCLUSION_ORDER seed strategies scan.
func ExampleBuildSort() {
	heads := []digraph.Vid{0, 0, 1, 0}
	g := digraph.Balanced(4, 1, heads)

	s, err := sortbucket.BuildSort(&g, false)
	if err != nil {
		panic(err)
	}
	fmt.Println(s.SortedVertices)
	// Output: [2 3 1 0]
}
