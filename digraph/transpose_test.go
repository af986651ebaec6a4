package digraph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowSet(dg *Digraph, v Vid) []Vid {
	row := append([]Vid(nil), dg.Row(v)...)
	sort.Ints(row)
	return row
}

func TestTranspose(t *testing.T) {
	// n=4, rows: 0->{1,2}, 1->{0}, 2->{}, 3->{1,3}
	src := Digraph{
		Vertices: 4,
		MaxArcs:  5,
		TailPtr:  []Arcref{0, 2, 3, 3, 5},
		Head:     []Vid{1, 2, 0, 1, 3},
	}

	out := Transpose(&src)
	require.False(t, out.IsNull())

	assert.Equal(t, []Vid{1}, rowSet(&out, 0))
	assert.Equal(t, []Vid{0, 3}, rowSet(&out, 1))
	assert.Equal(t, []Vid{0}, rowSet(&out, 2))
	assert.Equal(t, []Vid{3}, rowSet(&out, 3))
}

func TestTransposeRoundTrip(t *testing.T) {
	src := Digraph{
		Vertices: 4,
		MaxArcs:  5,
		TailPtr:  []Arcref{0, 2, 3, 3, 5},
		Head:     []Vid{1, 2, 0, 1, 3},
	}

	twice := Transpose(&src)
	twice = Transpose(&twice)

	for v := Vid(0); v < src.Vertices; v++ {
		assert.Equal(t, rowSet(&src, v), rowSet(&twice, v), "row %d", v)
	}
}

func TestTransposeNull(t *testing.T) {
	out := Transpose(nil)
	assert.True(t, out.IsNull())
}

func TestTransposeEmptyVertexSet(t *testing.T) {
	src := Empty(0, 0)
	out := Transpose(&src)
	require.False(t, out.IsNull())
	assert.Equal(t, Vid(0), out.Vertices)
}
