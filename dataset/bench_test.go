package dataset

import "testing"

func benchDataset(n, candidatesPer int) *Dataset {
	ds := New()
	for i := 0; i < n; i++ {
		_ = ds.AddPoint(i)
	}
	for i := 0; i < n; i++ {
		for j := 1; j <= candidatesPer; j++ {
			to := (i + j) % n
			if to == i {
				continue
			}
			_ = ds.AddCandidate(i, to, float64(j))
		}
	}
	return ds
}

func BenchmarkBuildNNG(b *testing.B) {
	ds := benchDataset(2000, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ds.BuildNNG(5); err != nil {
			b.Fatal(err)
		}
	}
}
