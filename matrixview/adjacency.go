package matrixview

import "github.com/RoseZhao/scclust/digraph"

// FromDigraph scatters g's CSR arcs into a dense n x n 0/1 adjacency
// matrix, row by row. Returns ErrNullDigraph if g is null.
func FromDigraph(g *digraph.Digraph) (*Dense, error) {
	if g.IsNull() {
		return nil, ErrNullDigraph
	}
	n := g.Vertices
	if n == 0 {
		return &Dense{r: 0, c: 0}, nil
	}

	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for v := digraph.Vid(0); v < n; v++ {
		for _, u := range g.Row(v) {
			if u == digraph.VidMax {
				continue
			}
			if err := d.Set(v, u, 1); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

// ToDigraph scans d's non-zero entries row-major into a digraph.Digraph,
// the inverse of FromDigraph. Returns ErrNilDense if d is nil,
// ErrNotSquare if d is not square.
func ToDigraph(d *Dense) (*digraph.Digraph, error) {
	if d == nil {
		return nil, ErrNilDense
	}
	if d.r != d.c {
		return nil, ErrNotSquare
	}
	n := d.r

	rows := make([][]digraph.Vid, n)
	total := 0
	for v := 0; v < n; v++ {
		for u := 0; u < n; u++ {
			val, err := d.At(v, u)
			if err != nil {
				return nil, err
			}
			if val != 0 {
				rows[v] = append(rows[v], digraph.Vid(u))
				total++
			}
		}
	}

	g := digraph.Init(digraph.Vid(n), total)
	if g.IsNull() {
		return nil, ErrInvalidDimensions
	}
	g.TailPtr[0] = 0
	off := 0
	for v, row := range rows {
		copy(g.Head[off:], row)
		off += len(row)
		g.TailPtr[v+1] = off
	}
	return &g, nil
}
