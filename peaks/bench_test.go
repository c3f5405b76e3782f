package peaks_test

import (
	"testing"

	"github.com/katalvlaran/crest/peaks"
	"github.com/katalvlaran/crest/spectra"
)

// benchSeed fixes the spectrum used by every benchmark so runs are
// comparable across modes and machines.
const benchSeed int64 = 42

// equalInts reports whether two index slices are element-for-element equal.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// benchmarkFind runs FindLocalMaxima in the given mode over a synthetic
// spectrum of length n with half-window h. All three modes are verified
// equal on the exact benchmark input before timing starts: comparing
// strategies that disagree would be meaningless.
func benchmarkFind(b *testing.B, n, h int, mode peaks.ScanMode) {
	signal := spectra.BuildSpectrum(n, benchSeed, spectra.WithNoise(0.5))

	ref, err := peaks.FindLocalMaxima(signal, h, peaks.WithMode(peaks.FullScan))
	if err != nil {
		b.Fatalf("FullScan failed: %v", err)
	}
	for _, m := range []peaks.ScanMode{peaks.EarlyExit, peaks.WindowedMax} {
		got, gotErr := peaks.FindLocalMaxima(signal, h, peaks.WithMode(m))
		if gotErr != nil {
			b.Fatalf("mode %d failed: %v", m, gotErr)
		}
		if !equalInts(ref, got) {
			b.Fatalf("mode %d disagrees with FullScan on n=%d h=%d", m, n, h)
		}
	}

	b.ResetTimer() // ignore setup and equivalence-check time
	for i := 0; i < b.N; i++ {
		if _, err = peaks.FindLocalMaxima(signal, h, peaks.WithMode(mode)); err != nil {
			b.Fatalf("FindLocalMaxima failed: %v", err)
		}
	}
}

// BenchmarkFind_FullScanSmall benchmarks the exhaustive scan on a 1k signal.
func BenchmarkFind_FullScanSmall(b *testing.B) {
	benchmarkFind(b, 1_000, 2, peaks.FullScan)
}

// BenchmarkFind_EarlyExitSmall benchmarks the early-exit scan on a 1k signal.
func BenchmarkFind_EarlyExitSmall(b *testing.B) {
	benchmarkFind(b, 1_000, 2, peaks.EarlyExit)
}

// BenchmarkFind_WindowedMaxSmall benchmarks the deque reduction on a 1k signal.
func BenchmarkFind_WindowedMaxSmall(b *testing.B) {
	benchmarkFind(b, 1_000, 2, peaks.WindowedMax)
}

// BenchmarkFind_FullScanMedium benchmarks the exhaustive scan on a 32k signal.
func BenchmarkFind_FullScanMedium(b *testing.B) {
	benchmarkFind(b, 32_768, 16, peaks.FullScan)
}

// BenchmarkFind_EarlyExitMedium benchmarks the early-exit scan on a 32k signal.
func BenchmarkFind_EarlyExitMedium(b *testing.B) {
	benchmarkFind(b, 32_768, 16, peaks.EarlyExit)
}

// BenchmarkFind_WindowedMaxMedium benchmarks the deque reduction on a 32k signal.
func BenchmarkFind_WindowedMaxMedium(b *testing.B) {
	benchmarkFind(b, 32_768, 16, peaks.WindowedMax)
}

// BenchmarkFind_EarlyExitWide stresses a wide half-window, where the
// per-candidate scans do the most work.
func BenchmarkFind_EarlyExitWide(b *testing.B) {
	benchmarkFind(b, 32_768, 256, peaks.EarlyExit)
}

// BenchmarkFind_WindowedMaxWide stresses a wide half-window; the deque
// reduction stays O(n) regardless of h.
func BenchmarkFind_WindowedMaxWide(b *testing.B) {
	benchmarkFind(b, 32_768, 256, peaks.WindowedMax)
}

// BenchmarkSlidingMax benchmarks the windowed-maximum primitive alone.
func BenchmarkSlidingMax(b *testing.B) {
	signal := spectra.BuildSpectrum(32_768, benchSeed)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = peaks.SlidingMax(signal, 16)
	}
}
