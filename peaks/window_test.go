package peaks_test

import (
	"testing"

	"github.com/katalvlaran/crest/peaks"
	"github.com/katalvlaran/crest/spectra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveSlidingMax is the obvious O(n·h) reference used to cross-check the
// deque implementation.
func naiveSlidingMax(signal []float64, h int) []float64 {
	out := make([]float64, len(signal))
	if h <= 0 {
		copy(out, signal)
		return out
	}
	for i := range signal {
		lo, hi := i-h, i+h
		if lo < 0 {
			lo = 0
		}
		if hi > len(signal)-1 {
			hi = len(signal) - 1
		}
		m := signal[lo]
		for j := lo + 1; j <= hi; j++ {
			if signal[j] > m {
				m = signal[j]
			}
		}
		out[i] = m
	}
	return out
}

// TestSlidingMax_TruncatedBoundaries checks hand-computed window maxima,
// including windows truncated at both ends.
func TestSlidingMax_TruncatedBoundaries(t *testing.T) {
	assert.Equal(t, []float64{3, 3, 3}, peaks.SlidingMax([]float64{1, 3, 2}, 1))
	assert.Equal(t, []float64{5, 5, 9, 9, 9}, peaks.SlidingMax([]float64{5, 1, 1, 1, 9}, 2))
	assert.Equal(t, []float64{3, 3, 5, 5, 5}, peaks.SlidingMax([]float64{1, 3, 2, 5, 4}, 1))
}

// TestSlidingMax_ZeroHalfWindowIdentity verifies h<=0 returns a copy of
// the input, not an alias of it.
func TestSlidingMax_ZeroHalfWindowIdentity(t *testing.T) {
	signal := []float64{3, 1, 4, 1, 5}

	for _, h := range []int{0, -1, -100} {
		out := peaks.SlidingMax(signal, h)
		require.Equal(t, signal, out, "h=%d", h)

		out[0] = -99
		assert.Equal(t, 3.0, signal[0], "output must not alias the input")
	}
}

// TestSlidingMax_Empty verifies an empty signal yields an empty slice.
func TestSlidingMax_Empty(t *testing.T) {
	assert.Empty(t, peaks.SlidingMax(nil, 3))
	assert.Empty(t, peaks.SlidingMax([]float64{}, 0))
}

// TestSlidingMax_OversizedWindow verifies that a window covering the whole
// signal reports the global maximum at every position.
func TestSlidingMax_OversizedWindow(t *testing.T) {
	signal := []float64{2, 7, 1, 8, 2, 8}
	want := []float64{8, 8, 8, 8, 8, 8}
	assert.Equal(t, want, peaks.SlidingMax(signal, len(signal)))
}

// TestSlidingMax_MatchesNaive cross-checks the deque implementation
// against the naive per-position scan over a grid of synthetic spectra.
func TestSlidingMax_MatchesNaive(t *testing.T) {
	sizes := []int{1, 2, 17, 128, 513}
	halves := []int{1, 2, 3, 8, 64, 600}

	for _, n := range sizes {
		signal := spectra.BuildSpectrum(n, int64(n), spectra.WithNoise(0.75))
		require.Len(t, signal, n)
		for _, h := range halves {
			assert.Equal(t, naiveSlidingMax(signal, h), peaks.SlidingMax(signal, h), "n=%d h=%d", n, h)
		}
	}
}
