// Package crest is a small toolkit for finding and studying local maxima
// in one-dimensional numeric signals.
//
// 🚀 What is crest?
//
//	A deterministic, dependency-free library that brings together:
//		• Peak detection: windowed local-maximum search over []float64
//		• Three interchangeable scan strategies (full scan, early exit,
//		  windowed-maximum reduction) with guaranteed identical output
//		• Sliding windowed maximum as a standalone primitive
//		• Reproducible synthetic spectra for tests, demos and benchmarks
//
// ✨ Why choose crest?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, explicit seeds, no globals
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – observation hooks (OnPeak) for custom logic
//
// Under the hood, everything is organized under two subpackages:
//
//	peaks/   — local-maximum detection & sliding windowed maximum
//	spectra/ — deterministic synthetic spectrum generation
//
// Quick ASCII example:
//
//	        ▲
//	      ╱ ╲      ▲
//	     ╱   ╲   ╱ ╲
//	    ╱     ╲_╱   ╲___
//
//	two peaks: every position not strictly exceeded inside its window.
//
// Dive into README.md for full examples and a feature matrix.
//
//	go get github.com/katalvlaran/crest/peaks
package crest
