package moxon

import (
	"math"
	"moxon/internal/config"
	"moxon/pkg/serrors"
)

// Reference is the calibration point every calculation is scaled from: a
// published Moxon design for one frequency and wire diameter. Dimensions are
// in millimetres.
type Reference struct {
	FrequencyMHz float64
	DiameterMM   float64

	A float64
	B float64
	C float64
	D float64
	E float64

	// ImpedanceOhm is the feed impedance of the reference design.
	ImpedanceOhm float64
}

// DefaultReference is an 868 MHz design built from 1.5 mm wire.
var DefaultReference = Reference{ //nolint: gochecknoglobals
	FrequencyMHz: 868,
	DiameterMM:   1.5,
	A:            124.00,
	B:            8.5,
	C:            18.0,
	D:            19.5,
	E:            46.00,
	ImpedanceOhm: 50,
}

// NewReference builds the reference design from the application config.
func NewReference(cfg *config.Config) Reference {
	return Reference{
		FrequencyMHz: cfg.Reference.FrequencyMHz,
		DiameterMM:   cfg.Reference.DiameterMM,
		A:            cfg.Reference.A,
		B:            cfg.Reference.B,
		C:            cfg.Reference.C,
		D:            cfg.Reference.D,
		E:            cfg.Reference.E,
		ImpedanceOhm: cfg.Reference.ImpedanceOhm,
	}
}

// Validate reports an error when any value of the reference is not a positive number.
func (r Reference) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"frequency", r.FrequencyMHz},
		{"diameter", r.DiameterMM},
		{"A", r.A},
		{"B", r.B},
		{"C", r.C},
		{"D", r.D},
		{"E", r.E},
		{"impedance", r.ImpedanceOhm},
	}
	for _, f := range fields {
		if !(f.value > 0) || math.IsInf(f.value, 1) {
			return serrors.With(serrors.ErrInvalidSelection,
				"reference %s must be a positive number, got %v", f.name, f.value)
		}
	}

	return nil
}
