// Package chain_test provides benchmarks for the reordering operations.
package chain_test

import (
	"testing"

	"github.com/katalvlaran/lvlist/chain"
)

// benchmarkRepack repacks one chain of length n per iteration. Repack
// allocates nothing, so ReportAllocs should stay at zero.
func benchmarkRepack(b *testing.B, n int) {
	c := chain.FromSlice(seq(n))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.Repack(c)
	}
}

// BenchmarkRepack_1K repacks a 1 000-node chain.
func BenchmarkRepack_1K(b *testing.B) { benchmarkRepack(b, 1_000) }

// BenchmarkRepack_100K repacks a 100 000-node chain.
func BenchmarkRepack_100K(b *testing.B) { benchmarkRepack(b, 100_000) }

// BenchmarkReverse_100K reverses a 100 000-node chain in place.
func BenchmarkReverse_100K(b *testing.B) {
	c := chain.FromSlice(seq(100_000))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.Reverse(c)
	}
}

// BenchmarkFromSlice_100K measures construction cost, one node per value.
func BenchmarkFromSlice_100K(b *testing.B) {
	in := seq(100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = chain.FromSlice(in)
	}
}
