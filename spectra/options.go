// SPDX-License-Identifier: MIT
// Package: crest/spectra
//
// options.go — functional options for the spectra package.
//
// Contract (strict):
//   • Options are functional (type Option func(*spectraConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     The generator itself MUST NOT panic.
//   • Determinism is explicit: seeding is done via the seed argument of
//     BuildSpectrum or via WithRand.
//   • No hidden globals; everything flows through spectraConfig.

package spectra

import (
	"math/rand" // RNG source override for the generator
)

// Option customizes the generator by mutating a spectraConfig instance
// before synthesis begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*spectraConfig)

// WithRand provides an explicit RNG, overriding the seed argument.
// Panics on nil; prefer the seed argument for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("spectra: WithRand(nil)")
	}
	return func(c *spectraConfig) {
		c.rng = r
	}
}

// WithBaseline sets the flat floor added to every sample.
// Any real value is accepted (including 0 and negatives).
// Complexity: O(1) time, O(1) space.
func WithBaseline(b float64) Option {
	return func(c *spectraConfig) {
		c.baseline = b
	}
}

// WithAmplitude sets the peak amplitude scale A (>0).
// Panics if A <= 0 to avoid degenerate outputs.
// Complexity: O(1) time, O(1) space.
func WithAmplitude(A float64) Option {
	if A <= 0 {
		panic("spectra: WithAmplitude(A<=0)")
	}
	return func(c *spectraConfig) {
		c.amplitude = A
	}
}

// WithPeakCount sets how many Gaussian peaks are placed (>=0).
// Panics on negative counts. Zero yields baseline plus noise only.
// Complexity: O(1) time, O(1) space.
func WithPeakCount(k int) Option {
	if k < 0 {
		panic("spectra: WithPeakCount(k<0)")
	}
	return func(c *spectraConfig) {
		c.peakCount = k
	}
}

// WithPeakWidth sets the Gaussian sigma of each peak, in samples (>0).
// Panics if w <= 0.
// Complexity: O(1) time, O(1) space.
func WithPeakWidth(w float64) Option {
	if w <= 0 {
		panic("spectra: WithPeakWidth(w<=0)")
	}
	return func(c *spectraConfig) {
		c.peakWidth = w
	}
}

// WithNoise sets Gaussian noise sigma (>=0).
// Panics if sigma < 0. Noise draws come from a dedicated RNG substream.
// Complexity: O(1) time, O(1) space.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("spectra: WithNoise(sigma<0)")
	}
	return func(c *spectraConfig) {
		c.noiseSigma = sigma
	}
}
