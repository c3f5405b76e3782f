// Package peaks defines tunable options and error definitions for
// local-maximum detection over float64 signals.
package peaks

import (
	"errors"
	"fmt"
)

// Sentinel errors for peak detection.
var (
	// ErrUnknownMode is returned when an unrecognized ScanMode is supplied.
	ErrUnknownMode = errors.New("peaks: unknown scan mode")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("peaks: invalid option supplied")
)

// ScanMode selects the strategy used to evaluate candidate positions.
//
//   - FullScan    — examine every element of the neighborhood for every
//     candidate, even after a disqualifying larger neighbor is found.
//     The reference implementation; O(n·h) comparisons always.
//
//   - EarlyExit   — abandon a candidate's scan at the first strictly
//     larger neighbor. Identical output, fewer comparisons on average.
//
//   - WindowedMax — compute the sliding windowed maximum for the whole
//     signal in one pass (monotonic deque), then report every candidate
//     whose own value equals its window maximum. O(n) time.
//
// All modes are equivalence-checked against each other in tests; output
// never depends on the mode.
type ScanMode int

const (
	// FullScan mode: exhaustive neighborhood scan per candidate.
	FullScan ScanMode = iota

	// EarlyExit mode: per-candidate scan stops at the first larger neighbor.
	EarlyExit

	// WindowedMax mode: one-pass windowed-maximum reduction, then compare.
	WindowedMax
)

// Option configures peak detection via functional arguments.
// If an Option is invalid (e.g. an undefined ScanMode), it is recorded
// internally and surfaced as an error when FindLocalMaxima is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize peak detection.
type Options struct {
	// Mode selects the scan strategy; all modes yield identical output.
	Mode ScanMode

	// OnPeak is called once per reported peak, in ascending position
	// order, with the peak position and its signal value.
	OnPeak func(pos int, value float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - EarlyExit mode (no allocations, fewest comparisons in practice)
//   - no-op OnPeak hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Mode:   EarlyExit,
		OnPeak: func(int, float64) {},
		err:    nil,
	}
}

// WithMode selects the scan strategy. Supplying a mode this package does
// not define is surfaced as ErrUnknownMode when FindLocalMaxima runs.
func WithMode(m ScanMode) Option {
	return func(o *Options) {
		switch m {
		case FullScan, EarlyExit, WindowedMax:
			o.Mode = m
		default:
			o.err = fmt.Errorf("%w: %d", ErrUnknownMode, m)
		}
	}
}

// WithOnPeak registers a callback to run for each reported peak.
func WithOnPeak(fn func(pos int, value float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPeak = fn
		}
	}
}
