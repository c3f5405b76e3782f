// Package peaks provides production-grade local-maximum detection over
// one-dimensional float64 signals, with three interchangeable scan
// strategies and a standalone sliding windowed-maximum primitive.
//
// What
//
//   - FindLocalMaxima(signal, halfWindow, opts...) returns the 0-based
//     positions whose value is not strictly exceeded anywhere in the closed
//     neighborhood [i-halfWindow, i+halfWindow].
//   - Only positions whose full neighborhood lies inside the signal are
//     candidates; boundary positions are never reported.
//   - Plateau ties all report: every member of a flat top whose window sees
//     no strictly larger value is a peak.
//   - Three scan modes produce identical output:
//   - FullScan    — examine the whole neighborhood for every candidate
//   - EarlyExit   — stop a candidate's scan at the first larger neighbor
//   - WindowedMax — one-pass monotonic-deque windowed maximum, then compare
//   - SlidingMax(signal, halfWindow) exposes the windowed-maximum reduction
//     on its own (truncated windows at the ends).
//   - Supports an observation hook via WithOnPeak, invoked once per peak in
//     ascending position order.
//
// Why
//
//   - Spectral and time-series analysis: find candidate lines, pivots and
//     local extrema without smoothing assumptions.
//   - The three modes are the classic optimization ladder for this problem;
//     keeping all of them, equivalence-checked, makes the package a reliable
//     baseline for benchmarking windowed scans.
//
// Determinism
//
//	The result is a pure function of (signal, halfWindow, mode): no
//	randomness, no global state, no mutation of the input. Calls are safe
//	from concurrent goroutines as long as each caller owns its slice.
//
// Degenerate inputs (never an error)
//
//   - Empty signal, halfWindow < 0, or a signal shorter than 2*halfWindow+1
//     all yield an empty result.
//   - halfWindow == 0 reports every position: each is its own sole neighbor.
//
// Complexity (n = len(signal), h = halfWindow)
//
//   - FullScan:    O(n·h) time, O(1) extra space (plus output)
//   - EarlyExit:   O(n·h) worst case, typically far fewer comparisons
//   - WindowedMax: O(n) time, O(h) extra space for the deque
//
// Usage
//
//	// Default (EarlyExit) mode:
//	idx, err := peaks.FindLocalMaxima(signal, 2)
//
//	// With functional options:
//	idx, err := peaks.FindLocalMaxima(
//	    signal, 2,
//	    peaks.WithMode(peaks.WindowedMax),
//	    peaks.WithOnPeak(func(pos int, v float64) { /* ... */ }),
//	)
//
// Options
//
//   - DefaultOptions(): EarlyExit mode, no-op hook.
//   - WithMode(m):      select the scan strategy.
//   - WithOnPeak(fn):   hook invoked for each reported peak.
//
// Errors
//
//   - ErrUnknownMode     if WithMode received a mode this package does not define.
//   - ErrOptionViolation reserved for future invalid option values.
//
// Errors arise from options only; no signal or halfWindow value errors.
package peaks
