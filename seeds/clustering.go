package seeds

import "github.com/RoseZhao/scclust/digraph"

// Unlabeled is the sentinel cluster label meaning "no cluster assigned
// yet." It is negative so it can never collide with a real cluster index
// (cluster indices are 0-based positions into Clustering.Seeds).
const Unlabeled = -1

// Clustering is the result of a seed-finding strategy: a set of seed
// vertices, a partial labeling of the vertex set, and a bitmap tracking
// which vertices have been claimed by some seed's closed neighborhood.
//
// A null Clustering has Seeds == nil. All strategies in this package fail
// closed by returning the null Clustering rather than a partially built
// one.
type Clustering struct {
	Vertices     digraph.Vid
	Seeds        []digraph.Vid
	SeedCapacity int
	Assigned     []bool
	ClusterLabel []int
}

// NullClustering returns the distinguished failure value.
func NullClustering() Clustering {
	return Clustering{}
}

// IsNull reports whether cl is the null Clustering.
func (cl *Clustering) IsNull() bool {
	return cl == nil || cl.Seeds == nil
}

// newClustering allocates a Clustering over n vertices with room for
// initCapacity seeds before the first doubling.
func newClustering(n digraph.Vid, initCapacity int) Clustering {
	if initCapacity <= 0 {
		initCapacity = 1
	}
	labels := make([]int, n)
	for i := range labels {
		labels[i] = Unlabeled
	}
	return Clustering{
		Vertices:     n,
		Seeds:        make([]digraph.Vid, 0, initCapacity),
		SeedCapacity: initCapacity,
		Assigned:     make([]bool, n),
		ClusterLabel: labels,
	}
}

// addSeed appends v to cl.Seeds, doubling SeedCapacity on overflow (capped
// at cl.Vertices, since no clustering can ever need more seed slots than
// there are vertices).
func addSeed(cl *Clustering, v digraph.Vid) {
	if len(cl.Seeds) == cap(cl.Seeds) {
		newCap := cl.SeedCapacity * 2
		if newCap > int(cl.Vertices) {
			newCap = int(cl.Vertices)
		}
		if newCap <= cl.SeedCapacity {
			newCap = cl.SeedCapacity + 1
		}
		grown := make([]digraph.Vid, len(cl.Seeds), newCap)
		copy(grown, cl.Seeds)
		cl.Seeds = grown
		cl.SeedCapacity = newCap
	}
	cl.Seeds = append(cl.Seeds, v)
}
