// Package moxon scales a reference Moxon rectangle design to a new frequency
// and conductor diameter.
//
// The reference dimensions are turned into wavelength ratios, multiplied by
// the target wavelength, and corrected by the ratio between the target and
// reference shortening factors. The same ratio scales the reference impedance.
package moxon

import (
	"context"
	"moxon/pkg/domain"
	"moxon/pkg/logger"
	"moxon/pkg/units"

	"go.uber.org/zap"
)

// calculator is the concrete Geometer scaling from a fixed reference design.
type calculator struct {
	reference Reference
}

// Calculate returns the geometry for the given frequency and diameter. The
// result is in millimetres; at the reference point itself it reproduces the
// reference dimensions exactly.
func (c calculator) Calculate(ctx context.Context, frequencyMHz, diameterMM float64) domain.Geometry {
	ref := c.reference

	lambda := WavelengthMM(frequencyMHz)
	lambdaRef := WavelengthMM(ref.FrequencyMHz)

	kRef := ShorteningFactor(ref.FrequencyMHz, ref.DiameterMM)
	kTarget := ShorteningFactor(frequencyMHz, diameterMM)
	kCorr := kTarget / kRef

	scale := func(refLength float64) float64 {
		return refLength / lambdaRef * lambda * kCorr
	}

	logger.Debug(ctx, "scaling reference design",
		zap.Float64("lambda_mm", lambda),
		zap.Float64("lambda_ref_mm", lambdaRef),
		zap.Float64("k_ref", kRef),
		zap.Float64("k_target", kTarget),
		zap.Float64("k_corr", kCorr),
	)

	return domain.Geometry{
		A:               scale(ref.A),
		B:               scale(ref.B),
		C:               scale(ref.C),
		D:               scale(ref.D),
		E:               scale(ref.E),
		ImpedanceOhm:    ref.ImpedanceOhm * (kTarget / kRef),
		CrossSectionMM2: units.CrossSectionArea(diameterMM),
	}
}

// New creates a Geometer scaling from the given reference design.
func New(reference Reference) Geometer {
	return &calculator{reference: reference}
}
