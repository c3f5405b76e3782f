// SPDX-License-Identifier: MIT
// Package: crest/spectra
//
// Package spectra builds deterministic synthetic spectra for tests,
// demos, fixtures and benchmarks.
//
// What
//
//   - BuildSpectrum(n, seed, opts...) returns a length-n []float64:
//     a flat baseline, a configurable number of Gaussian peaks with
//     RNG-drawn centers, amplitudes and widths, and optional additive
//     Gaussian noise.
//   - Strict determinism per (n, seed, options): same inputs, same slice,
//     on every platform. No global seed state, no time-based sources.
//
// Why
//
//   - Peak-detection code needs reproducible inputs whose ground truth is
//     easy to reason about. A seeded generator replaces ambient
//     process-wide RNG state with an explicit parameter, so fixtures and
//     golden tests stay stable.
//
// Determinism & substreams
//
//	Peak placement and noise consume independent RNG substreams derived
//	from the base seed via a SplitMix64-style mix, so toggling noise does
//	not shift peak positions.
//
// Options & policy
//
//   - Functional options mutate an internal config; constructors VALIDATE
//     and PANIC on meaningless inputs (WithAmplitude(A<=0), WithRand(nil),
//     ...). The generator itself never panics: invalid resolved parameters
//     or n < 1 yield nil.
//
// Usage
//
//	sig := spectra.BuildSpectrum(1024, 42,
//	    spectra.WithPeakCount(7),
//	    spectra.WithNoise(0.1),
//	)
//
// Complexity
//
//	O(n·k) time for k peaks, O(n) memory.
package spectra
