// SPDX-License-Identifier: MIT
// Package: crest/spectra
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • spectraConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newSpectraConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil    (seed parameter governs unless WithRand is set)
//   • baseline    = 1.0
//   • amplitude   = 10.0
//   • peakCount   = 5
//   • peakWidth   = 4.0    (Gaussian sigma, in samples)
//   • noiseSigma  = 0.25

package spectra

import (
	"math/rand" // RNG for peak placement and noise
)

// spectraConfig aggregates all knobs used by the generator.
// It is passed by VALUE to the generator (immutable to callers).
type spectraConfig struct {
	// RNG override; nil means "derive from the seed argument".
	rng *rand.Rand

	// Flat baseline level added to every sample; any real value.
	baseline float64
	// Peak amplitude scale; > 0.
	amplitude float64
	// Number of Gaussian peaks to place; >= 0.
	peakCount int
	// Gaussian sigma of each peak, in samples; > 0.
	peakWidth float64
	// Additive Gaussian noise stdev; >= 0 (0 means noiseless).
	noiseSigma float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultBaseline   = 1.0  // flat spectrum floor
	defaultAmplitude  = 10.0 // peak amplitude scale
	defaultPeakCount  = 5    // Gaussian peaks per spectrum
	defaultPeakWidth  = 4.0  // Gaussian sigma in samples
	defaultNoiseSigma = 0.25 // additive noise stdev
)

// newSpectraConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newSpectraConfig(opts ...Option) spectraConfig {
	cfg := spectraConfig{
		rng:        nil,
		baseline:   defaultBaseline,
		amplitude:  defaultAmplitude,
		peakCount:  defaultPeakCount,
		peakWidth:  defaultPeakWidth,
		noiseSigma: defaultNoiseSigma,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
