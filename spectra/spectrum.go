// SPDX-License-Identifier: MIT
// Package: crest/spectra
//
// spectrum.go — deterministic Gaussian-peak spectrum generator.
//
// Purpose (single responsibility):
//   • Provide a reproducible 1-D spectrum for tests, demos and fixtures:
//     flat baseline + k Gaussian peaks + optional additive Gaussian noise.
//
// Contract:
//   • BuildSpectrum(n, seed, opts...) returns a slice of length n (or nil
//     on invalid input). Strict determinism per (n, seed, options); no
//     panics; no global state.
//   • O(n·k) time and O(n) memory; tiny constant factors.
//
// Determinism & testing:
//   • Peak placement and noise consume independent RNG substreams, so
//     WithNoise(0) leaves peak positions untouched (golden-friendly).

package spectra

import (
	"math"
)

// Per-peak draw ranges (relative to the configured scale knobs).
const (
	minAmpFrac   = 0.25 // drawn amplitude ∈ [minAmpFrac, 1] × amplitude
	minWidthFrac = 0.5  // drawn sigma ∈ [minWidthFrac, 1.5] × peakWidth
	widthSpan    = 1.0  // span of the width draw above minWidthFrac
)

// gaussPeak holds one drawn peak: center index, amplitude, sigma.
type gaussPeak struct {
	center float64
	amp    float64
	sigma  float64
}

// BuildSpectrum returns a length-n spectrum with baseline, Gaussian peaks
// and optional noise.
//
// Shape:
//   - baseline + Σ_j amp_j · exp(−(i−c_j)² / (2·σ_j²)) + sigma·N(0,1)
//
// Validation:
//   - If n < 1 ⇒ return nil (invalid request).
//   - If resolved parameters are invalid (A≤0, width≤0, k<0, sigma<0)
//     ⇒ return nil.
//
// Complexity:
//   - O(n·k) time, O(n) memory.
func BuildSpectrum(n int, seed int64, opts ...Option) []float64 {
	// Early size check avoids any allocations or RNG setup on invalid input.
	if n < 1 {
		return nil
	}

	// Resolve deterministic generator configuration once.
	cfg := newSpectraConfig(opts...)
	// Defensive parameter validation (all defaults pass).
	if cfg.amplitude <= 0 || cfg.peakWidth <= 0 || cfg.peakCount < 0 || cfg.noiseSigma < 0 {
		return nil
	}

	// Independent substreams: shape draws never shift when noise toggles.
	base := rngBase(cfg, seed)
	shapeRNG := deriveRNG(base, streamShape)
	noiseRNG := deriveRNG(base, streamNoise)

	// Draw all peaks up front so synthesis below is a pure summation.
	peaks := make([]gaussPeak, cfg.peakCount)
	for j := range peaks {
		peaks[j] = gaussPeak{
			center: float64(shapeRNG.Intn(n)),
			amp:    cfg.amplitude * (minAmpFrac + (1-minAmpFrac)*shapeRNG.Float64()),
			sigma:  cfg.peakWidth * (minWidthFrac + widthSpan*shapeRNG.Float64()),
		}
	}

	out := make([]float64, n)
	var (
		v float64 // accumulated sample value
		d float64 // distance from the current peak center
	)
	for i := 0; i < n; i++ {
		v = cfg.baseline
		for _, p := range peaks {
			d = float64(i) - p.center
			v += p.amp * math.Exp(-(d*d)/(2*p.sigma*p.sigma))
		}
		if cfg.noiseSigma > 0 {
			v += cfg.noiseSigma * noiseRNG.NormFloat64()
		}
		out[i] = v
	}

	return out
}
