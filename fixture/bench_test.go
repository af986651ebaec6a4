package fixture

import "testing"

func BenchmarkRegular(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Regular(2000, 10, int64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSparse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Sparse(2000, 10, 0.01, int64(i)); err != nil {
			b.Fatal(err)
		}
	}
}
