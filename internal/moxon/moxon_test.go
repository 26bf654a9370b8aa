package moxon_test

import (
	"context"
	"moxon/internal/moxon"
	"moxon/pkg/units"
	"testing"

	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestCalculate_ReferencePointIdentity(t *testing.T) {
	g := moxon.New(moxon.DefaultReference).Calculate(context.Background(), 868, 1.5)

	require.InDelta(t, 124.00, g.A, tolerance)
	require.InDelta(t, 8.5, g.B, tolerance)
	require.InDelta(t, 18.0, g.C, tolerance)
	require.InDelta(t, 19.5, g.D, tolerance)
	require.InDelta(t, 46.00, g.E, tolerance)
	require.Equal(t, 50.0, g.ImpedanceOhm) //nolint: testifylint
	require.InDelta(t, units.CrossSectionArea(1.5), g.CrossSectionMM2, tolerance)
}

func TestCalculate_LowerFrequencyIsLarger(t *testing.T) {
	calc := moxon.New(moxon.DefaultReference)
	ref := calc.Calculate(context.Background(), 868, 1.5)
	g := calc.Calculate(context.Background(), 433.92, 2)

	require.Greater(t, g.A, ref.A)
	require.Greater(t, g.B, ref.B)
	require.Greater(t, g.C, ref.C)
	require.Greater(t, g.D, ref.D)
	require.Greater(t, g.E, ref.E)

	// roughly twice the wavelength, slightly corrected for the thicker wire
	require.InDelta(t, 248.2, g.A, 0.1)
	require.InDelta(t, 50.04, g.ImpedanceOhm, 0.01)
}

func TestCalculate_ThinnerWireIsLonger(t *testing.T) {
	calc := moxon.New(moxon.DefaultReference)
	thin := calc.Calculate(context.Background(), 144, 1)
	thick := calc.Calculate(context.Background(), 144, 6)

	require.Greater(t, thin.A, thick.A)
	require.Greater(t, thin.ImpedanceOhm, thick.ImpedanceOhm)
	require.Less(t, thin.CrossSectionMM2, thick.CrossSectionMM2)
}

func TestCalculate_Positivity(t *testing.T) {
	calc := moxon.New(moxon.DefaultReference)
	frequencies := []float64{0.001, 1.8, 14.1, 50, 144, 433.92, 868, 2400, 10e3, 1e6}
	diameters := []float64{1e-4, 0.1, 1.5, 10, 100, 1e4, 1e7}

	for _, f := range frequencies {
		for _, d := range diameters {
			g := calc.Calculate(context.Background(), f, d)
			for name, v := range map[string]float64{
				"A": g.A, "B": g.B, "C": g.C, "D": g.D, "E": g.E,
				"Z": g.ImpedanceOhm, "area": g.CrossSectionMM2,
			} {
				require.Greater(t, v, 0.0, "%s must be positive for f=%v d=%v", name, f, d)
			}
		}
	}
}

func TestCalculate_ProportionsFollowReference(t *testing.T) {
	g := moxon.New(moxon.DefaultReference).Calculate(context.Background(), 144.3, 3)

	require.InDelta(t, 124.0/46.0, g.A/g.E, tolerance)
	require.InDelta(t, 8.5/19.5, g.B/g.D, tolerance)
	require.InDelta(t, 18.0/124.0, g.C/g.A, tolerance)
}

func TestCalculate_CustomReference(t *testing.T) {
	ref := moxon.Reference{
		FrequencyMHz: 144.5,
		DiameterMM:   2,
		A:            760,
		B:            102,
		C:            22,
		D:            124,
		E:            248,
		ImpedanceOhm: 50,
	}
	g := moxon.New(ref).Calculate(context.Background(), ref.FrequencyMHz, ref.DiameterMM)

	require.InDelta(t, 760, g.A, 1e-6)
	require.InDelta(t, 102, g.B, 1e-6)
	require.InDelta(t, 22, g.C, 1e-6)
	require.InDelta(t, 124, g.D, 1e-6)
	require.InDelta(t, 248, g.E, 1e-6)
	require.Equal(t, 50.0, g.ImpedanceOhm) //nolint: testifylint
}
