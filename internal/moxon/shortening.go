package moxon

import "math"

// SpeedOfLight is c in km/s, which is numerically the free-space wavelength
// in millimetres at 1 MHz.
const SpeedOfLight = 299792

// thickWireFactor is returned when the wire is so thick relative to the
// wavelength that the logarithmic fit is no longer meaningful.
const thickWireFactor = 0.9

// WavelengthMM returns the free-space wavelength in millimetres.
func WavelengthMM(frequencyMHz float64) float64 {
	return SpeedOfLight / frequencyMHz
}

// ShorteningFactor estimates how much a conductor of the given diameter
// shortens the electrical wavelength at the given frequency. It is an
// empirical fit on the wavelength to diameter ratio M; for M <= 2 it returns
// a fixed 0.9, otherwise 1 - 0.025/log10(M). log10(M) > 0.3 on that branch.
func ShorteningFactor(frequencyMHz, diameterMM float64) float64 {
	m := WavelengthMM(frequencyMHz) / diameterMM
	if m <= 2 {
		return thickWireFactor
	}

	return 1 - 0.025/math.Log10(m)
}
