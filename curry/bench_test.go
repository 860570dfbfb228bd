package curry_test

import (
	"testing"

	"github.com/katalvlaran/curried/curry"
)

// BenchmarkDerive measures one configuration step on a builder that
// already defers two positions.
func BenchmarkDerive(b *testing.B) {
	base := curry.Must(curry.Must(curry.Must(curry.Create(affine)).Takes(0)).Takes(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = base.WithBound(2, i)
	}
}

// BenchmarkCall measures a full three-argument chain on a reflect target.
func BenchmarkCall(b *testing.B) {
	g := curry.Must(curry.Must(curry.Must(curry.Must(curry.Create(affine)).Takes(2)).Takes(1)).Takes(0)).Build()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Call(i, 2, 3)
	}
}

// BenchmarkDirect is the baseline for BenchmarkCall.
func BenchmarkDirect(b *testing.B) {
	var sink int
	for i := 0; i < b.N; i++ {
		sink = affine(3, 2, i)
	}
	_ = sink
}
