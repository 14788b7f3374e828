// Package mat_test provides benchmarks contrasting the typed fast paths
// with the general 3x3 paths, and pooled against fresh allocation.
package mat_test

import (
	"testing"

	"github.com/katalvlaran/affine/mat"
)

// sinks to defeat dead-code elimination
var (
	sinkM *mat.Matrix3
	sinkF float64
)

func BenchmarkTimesMatrix_TranslationFastPath(b *testing.B) {
	b.ReportAllocs()
	x := mat.Translation(1, 2)
	y := mat.Translation(3, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = x.TimesMatrix(y)
	}
}

func BenchmarkTimesMatrix_GeneralPath(b *testing.B) {
	b.ReportAllocs()
	x := mat.RowMajor(1, 0, 0, 0, 1, 0, 0.1, 0.2, 1)
	y := mat.RowMajor(2, 1, 0, 1, 3, 1, 0.5, 0, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = x.TimesMatrix(y)
	}
}

func BenchmarkInverted_ScalingFastPath(b *testing.B) {
	b.ReportAllocs()
	x := mat.Scaling(2, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := x.Inverted()
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkInverted_GeneralPath(b *testing.B) {
	b.ReportAllocs()
	x := mat.RowMajor(2, 1, 0, 1, 3, 1, 0.5, 0, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := x.Inverted()
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkFromPool_FetchRelease(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := mat.FromPool(1, 0, float64(i), 0, 1, 2, 0, 0, 1)
		sinkF = m.Determinant()
		m.FreeToPool()
	}
}
