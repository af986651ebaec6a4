package fixture_test

import (
	"fmt"

	"github.com/RoseZhao/scclust/fixture"
)

func ExampleRegular() {
	g, err := fixture.Regular(6, 2, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(g.Row(0)))
	// Output: 2
}
