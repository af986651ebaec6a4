package seeds

import (
	"testing"

	"github.com/RoseZhao/scclust/digraph"
)

func benchNNG(n, k int) digraph.Digraph {
	heads := make([]digraph.Vid, n*k)
	for v := 0; v < n; v++ {
		for i := 0; i < k; i++ {
			heads[v*k+i] = digraph.Vid((v + i + 1) % n)
		}
	}
	return digraph.Balanced(digraph.Vid(n), digraph.Vid(k), heads)
}

func BenchmarkLexical(b *testing.B) {
	for i := 0; i < b.N; i++ {
		nng := benchNNG(2000, 4)
		_, _ = Lexical(&nng, 16)
	}
}

func BenchmarkInwardsUpdating(b *testing.B) {
	for i := 0; i < b.N; i++ {
		nng := benchNNG(2000, 4)
		_, _ = InwardsUpdating(&nng, 16)
	}
}

func BenchmarkExclusionUpdating(b *testing.B) {
	for i := 0; i < b.N; i++ {
		nng := benchNNG(2000, 4)
		_, _ = ExclusionUpdating(&nng, 16)
	}
}
