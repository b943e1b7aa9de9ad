// SPDX-License-Identifier: MIT

// Package sparse_test provides benchmarks for the conversion kernels,
// using deterministic random fill for the source matrices.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsix/sparse"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{128, 512, 2048}

// benchDensity is the nonzero fraction of the generated matrices.
const benchDensity = 0.05

// sinks to defeat dead-code elimination
var (
	sinkCSR   sparse.CSR[int32, float64]
	sinkCOO   sparse.COO[int32, float64]
	sinkDIA   sparse.DIA[int32, float64]
	sinkHYB   sparse.HYB[int32, float64]
	sinkDense *sparse.Dense[float64]
)

// randCOO builds an n×n coordinate matrix with ~density*n*n entries at
// seeded pseudo-random positions (duplicates possible, which the kernels
// tolerate).
func randCOO(b *testing.B, n int, seed int64) *sparse.COO[int32, float64] {
	b.Helper()

	rng := rand.New(rand.NewSource(seed))
	entries := int(benchDensity * float64(n) * float64(n))
	m, err := sparse.NewCOO[int32, float64](n, n, entries)
	if err != nil {
		b.Fatal(err)
	}
	for e := 0; e < entries; e++ {
		if err := m.SetEntry(e, int32(rng.Intn(n)), int32(rng.Intn(n)), rng.Float64()); err != nil {
			b.Fatal(err)
		}
	}

	return m
}

// randCSR compresses a random COO source once, outside the timed loop.
func randCSR(b *testing.B, n int, seed int64) *sparse.CSR[int32, float64] {
	b.Helper()

	var csr sparse.CSR[int32, float64]
	if err := sparse.COOToCSR(&csr, randCOO(b, n, seed)); err != nil {
		b.Fatal(err)
	}

	return &csr
}

func BenchmarkCOOToCSR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randCOO(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := sparse.COOToCSR(&sinkCSR, src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCSRToCOO(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randCSR(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := sparse.CSRToCOO(&sinkCOO, src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCSRToHYB(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randCSR(b, n, 11)
			width := int(benchDensity*float64(n)) + 1
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := sparse.CSRToHYB(&sinkHYB, src, width); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkHYBToCSR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			csr := randCSR(b, n, 22)
			var src sparse.HYB[int32, float64]
			if err := sparse.CSRToHYB(&src, csr, int(benchDensity*float64(n))+1); err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := sparse.HYBToCSR(&sinkCSR, &src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCSRToDIA uses a banded source: random fill would occupy nearly
// every diagonal and measure allocation, not conversion.
func BenchmarkCSRToDIA(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := bandedCSR(b, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := sparse.CSRToDIA(&sinkDIA, src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDIAToCSR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			var src sparse.DIA[int32, float64]
			if err := sparse.CSRToDIA(&src, bandedCSR(b, n, 5)); err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := sparse.DIAToCSR(&sinkCSR, &src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDenseToCSR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src, err := sparse.NewDense[float64](n, n)
			if err != nil {
				b.Fatal(err)
			}
			rng := rand.New(rand.NewSource(7))
			for e := 0; e < int(benchDensity*float64(n)*float64(n)); e++ {
				if err := src.Set(rng.Intn(n), rng.Intn(n), rng.Float64()); err != nil {
					b.Fatal(err)
				}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := sparse.DenseToCSR(&sinkCSR, src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCOOToDense(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randCOO(b, n, 99)
			dst, err := sparse.NewDense[float64](n, n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := sparse.COOToDense(dst, src); err != nil {
					b.Fatal(err)
				}
				sinkDense = dst
			}
		})
	}
}

// bandedCSR builds an n×n matrix with the given number of populated
// diagonals centered on the main one.
func bandedCSR(b *testing.B, n, band int) *sparse.CSR[int32, float64] {
	b.Helper()

	half := band / 2
	coo, err := sparse.NewCOO[int32, float64](n, n, 0)
	if err != nil {
		b.Fatal(err)
	}

	count := 0
	for i := 0; i < n; i++ {
		for k := -half; k <= half; k++ {
			if j := i + k; j >= 0 && j < n {
				count++
			}
		}
	}
	if err := coo.Resize(n, n, count); err != nil {
		b.Fatal(err)
	}
	e := 0
	for i := 0; i < n; i++ {
		for k := -half; k <= half; k++ {
			if j := i + k; j >= 0 && j < n {
				if err := coo.SetEntry(e, int32(i), int32(j), float64(k+half+1)); err != nil {
					b.Fatal(err)
				}
				e++
			}
		}
	}

	var csr sparse.CSR[int32, float64]
	if err := sparse.COOToCSR(&csr, coo); err != nil {
		b.Fatal(err)
	}

	return &csr
}
