// Package units provides the conversions used to normalise conductor sizes
// into millimetres: American Wire Gauge, inches and cross-section area.
package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MillimetersPerInch is the exact inch definition.
const MillimetersPerInch = 25.4

// ErrInvalidAWG is returned by ParseAWG when the token is not a gauge number.
var ErrInvalidAWG = errors.New("invalid AWG number")

// AWGToDiameterMM returns the diameter in millimetres of the given AWG gauge.
// Any finite value is accepted; no attempt is made to restrict it to gauges
// that are actually manufactured.
func AWGToDiameterMM(awg float64) float64 {
	return 0.127 * math.Pow(92, (36-awg)/39)
}

// MillimetersToInches converts millimetres to inches.
func MillimetersToInches(mm float64) float64 {
	return mm / MillimetersPerInch
}

// InchesToMillimeters converts inches to millimetres.
func InchesToMillimeters(inch float64) float64 {
	return inch * MillimetersPerInch
}

// CrossSectionArea returns the area in mm² of a round conductor.
func CrossSectionArea(diameterMM float64) float64 {
	return math.Pi * math.Pow(diameterMM/2, 2)
}

// ParseAWG parses a gauge number. Besides plain integers it understands the
// aught sizes, written either as repeated zeros ("00", "000", "0000") or as
// "N/0" ("2/0", "4/0"); both map to 1-N, so 4/0 is gauge -3.
func ParseAWG(token string) (int, error) {
	token = strings.TrimSpace(token)

	if before, ok := strings.CutSuffix(token, "/0"); ok {
		n, err := strconv.Atoi(before)
		if err != nil || n < 1 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAWG, token)
		}

		return 1 - n, nil
	}

	if len(token) > 1 && strings.Trim(token, "0") == "" {
		return 1 - len(token), nil
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAWG, token)
	}

	return n, nil
}
