package topology

import "github.com/RoseZhao/scclust/digraph"

// Reachable runs a breadth-first search over g's out-arcs starting at
// from, returning the set of vertices reached (from itself included).
// Sentinel head entries (digraph.VidMax) are skipped, so Reachable works
// correctly on a seeds-package exclusion graph mid pre-masking.
func Reachable(g *digraph.Digraph, from digraph.Vid) (map[digraph.Vid]bool, error) {
	if g.IsNull() {
		return nil, ErrNullInput
	}
	if from < 0 || from >= g.Vertices {
		return nil, ErrVertexOutOfRange
	}

	visited := map[digraph.Vid]bool{from: true}
	queue := []digraph.Vid{from}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range g.Row(v) {
			if u == digraph.VidMax || visited[u] {
				continue
			}
			visited[u] = true
			queue = append(queue, u)
		}
	}
	return visited, nil
}

// ConnectedComponents labels every vertex of g with a weak-connectivity
// component id: g is treated as undirected for this purpose, so an arc
// in either direction links its endpoints. Traversal uses an explicit
// stack rather than recursion, since an NNG built over a large dataset
// could otherwise exceed a bounded call stack.
//
// Returns a slice of length g.Vertices mapping vertex -> component id,
// and the total component count.
func ConnectedComponents(g *digraph.Digraph) ([]int, int, error) {
	if g.IsNull() {
		return nil, 0, ErrNullInput
	}

	transposed := digraph.Transpose(g)

	labels := make([]int, g.Vertices)
	for i := range labels {
		labels[i] = -1
	}

	components := 0
	for start := digraph.Vid(0); start < g.Vertices; start++ {
		if labels[start] != -1 {
			continue
		}
		labels[start] = components

		stack := []digraph.Vid{start}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			neighbors := make([]digraph.Vid, 0, len(g.Row(v))+len(transposed.Row(v)))
			neighbors = append(neighbors, g.Row(v)...)
			neighbors = append(neighbors, transposed.Row(v)...)
			for _, u := range neighbors {
				if u == digraph.VidMax || labels[u] != -1 {
					continue
				}
				labels[u] = components
				stack = append(stack, u)
			}
		}
		components++
	}

	return labels, components, nil
}
