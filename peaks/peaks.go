package peaks

// FindLocalMaxima — windowed local-maximum detection
//
// Description:
//
//	A position i is a local maximum when no element of the closed
//	neighborhood [i-h, i+h] strictly exceeds signal[i]. Positions whose
//	neighborhood would leave the signal are never candidates, so the
//	first and last h positions are always excluded. Ties inside the
//	window do not disqualify a candidate: a flat plateau reports every
//	member whose window sees no strictly larger value.
//
// Algorithm Outline:
//  1. Resolve options (mode, hooks); surface recorded option errors.
//  2. If h < 0 or len(signal) < 2h+1, return an empty result.
//  3. Evaluate candidates i = h .. len(signal)-h-1 with the selected
//     strategy:
//     FullScan    — compare signal[i] against all 2h+1 neighbors.
//     EarlyExit   — same predicate, abort at the first larger neighbor.
//     WindowedMax — precompute SlidingMax once; i is a peak iff its
//     window maximum equals signal[i].
//  4. Append qualifying positions in ascending order and fire OnPeak.
//
// Degenerate inputs (empty signal, oversized or negative half-window)
// yield an empty result; they are not errors.
//
// Complexity:
//
//	Time   = O(n·h) for FullScan/EarlyExit, O(n) for WindowedMax
//	Memory = O(1) extra for FullScan/EarlyExit, O(h) for WindowedMax
//	(plus the returned index slice in all modes)

// FindLocalMaxima returns the 0-based positions of signal that are not
// strictly exceeded anywhere in their closed [i-h, i+h] neighborhood.
// Returns (positions, error); errors arise from invalid options only.
//
// Example:
//
//	idx, err := peaks.FindLocalMaxima(signal, 2, peaks.WithMode(peaks.WindowedMax))
func FindLocalMaxima(signal []float64, halfWindow int, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Degenerate window: no position has a full in-bounds neighborhood.
	if halfWindow < 0 || len(signal) < 2*halfWindow+1 {
		return []int{}, nil
	}

	var out []int
	switch o.Mode {
	case FullScan:
		out = scanFull(signal, halfWindow)
	case EarlyExit:
		out = scanEarlyExit(signal, halfWindow)
	case WindowedMax:
		out = scanWindowedMax(signal, halfWindow)
	default:
		// Unreachable via WithMode, but Options is an exported struct.
		return nil, ErrUnknownMode
	}

	for _, pos := range out {
		o.OnPeak(pos, signal[pos])
	}

	return out, nil
}

// scanFull evaluates every candidate against its entire neighborhood,
// with no early termination. Reference semantics for the other modes.
func scanFull(signal []float64, h int) []int {
	n := len(signal)
	out := []int{}
	for i := h; i < n-h; i++ {
		center := signal[i]
		isPeak := true
		for j := i - h; j <= i+h; j++ {
			if signal[j] > center {
				isPeak = false
			}
		}
		if isPeak {
			out = append(out, i)
		}
	}

	return out
}

// scanEarlyExit is scanFull with the inner loop aborted at the first
// strictly larger neighbor. Output is identical by construction.
func scanEarlyExit(signal []float64, h int) []int {
	n := len(signal)
	out := []int{}
	for i := h; i < n-h; i++ {
		center := signal[i]
		isPeak := true
		for j := i - h; j <= i+h; j++ {
			if signal[j] > center {
				isPeak = false
				break
			}
		}
		if isPeak {
			out = append(out, i)
		}
	}

	return out
}

// scanWindowedMax precomputes the windowed maximum for all positions in
// one pass, then reports each candidate whose value equals its window
// maximum. Boundary positions are skipped rather than padded: they can
// never be candidates.
func scanWindowedMax(signal []float64, h int) []int {
	n := len(signal)
	winMax := SlidingMax(signal, h)

	out := []int{}
	for i := h; i < n-h; i++ {
		// No neighbor strictly exceeds the center iff max == center.
		if winMax[i] == signal[i] {
			out = append(out, i)
		}
	}

	return out
}
