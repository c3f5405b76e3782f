package spectra_test

import (
	"fmt"

	"github.com/katalvlaran/crest/spectra"
)

// ExampleBuildSpectrum builds a reproducible spectrum: with zero peaks and
// zero noise the result is the exact baseline, and rebuilding from the
// same seed yields the identical slice.
func ExampleBuildSpectrum() {
	flat := spectra.BuildSpectrum(4, 42,
		spectra.WithPeakCount(0),
		spectra.WithNoise(0),
	)
	fmt.Println(flat)

	a := spectra.BuildSpectrum(256, 42)
	b := spectra.BuildSpectrum(256, 42)
	same := len(a) == len(b)
	for i := range a {
		same = same && a[i] == b[i]
	}
	fmt.Println(len(a), same)
	// Output:
	// [1 1 1 1]
	// 256 true
}
