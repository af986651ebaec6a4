package assign_test

import (
	"fmt"

	"github.com/RoseZhao/scclust/assign"
	"github.com/RoseZhao/scclust/digraph"
	"github.com/RoseZhao/scclust/seeds"
)

// ExampleAssignRemainingLexical completes a 5-cycle clustering: vertex 4
// was left unlabeled by Lexical because its only NNG target was already
// claimed, but it inherits vertex 0's label here since 0 is its priority
// neighbor.
func ExampleAssignRemainingLexical() {
	heads := []digraph.Vid{1, 2, 3, 4, 0}
	nng := digraph.Balanced(5, 1, heads)

	cl, err := seeds.Lexical(&nng, 2)
	if err != nil {
		panic(err)
	}
	if err := assign.AssignRemainingLexical(&cl, &nng); err != nil {
		panic(err)
	}
	fmt.Println(cl.ClusterLabel)
	// Output: [0 0 1 1 0]
}
