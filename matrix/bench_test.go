// Package matrix_test provides benchmarks for the sparse kernels,
// using deterministic random fill with a fixed number of entries per row.
package matrix_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/katalvlaran/spmat/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{1000, 5000, 20000}

// benchPerRow approximates the generator degree.
const benchPerRow = 10

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Sparse
	sinkT *matrix.Triplets
	sinkB bool
	sinkF float64
)

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomSparse(b, n, n, benchPerRow, 1337)
			B := randomSparse(b, n, n, benchPerRow, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Multiply(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiplyParallel(b *testing.B) {
	b.ReportAllocs()
	workers := runtime.GOMAXPROCS(0)
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(b *testing.B) {
			A := randomSparse(b, n, n, benchPerRow, 11)
			B := randomSparse(b, n, n, benchPerRow, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Multiply(A, B, matrix.WithWorkers(workers))
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkMultiplyScan uses small sizes: the scan kernel is quadratic in n per row.
func BenchmarkMultiplyScan(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{100, 300} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomSparse(b, n, n, benchPerRow, 1)
			B := randomSparse(b, n, n, benchPerRow, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.MultiplyScan(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiplyPairs(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{100, 300} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomSparse(b, n, n, benchPerRow, 3).Triplets()
			B := randomSparse(b, n, n, benchPerRow, 4).Triplets()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				t, err := matrix.MultiplyPairs(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkT = t
			}
		})
	}
}

func BenchmarkTraceAndEqual(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomSparse(b, n, n, benchPerRow, 5)
			C := A.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = matrix.TraceOf(A)
				sinkB = matrix.Equal(A, C, matrix.DefaultTolerance)
			}
		})
	}
}
