// Package report turns a calculated geometry into the values shown to the
// user and renders them as the text report.
package report

import (
	"fmt"
	"io"
	"moxon/pkg/domain"
	"moxon/pkg/units"
	"strconv"
	"strings"
)

const (
	heavyRule = "========================================="
	lightRule = "-----------------------------------------"
)

// Dimensions are the antenna lengths expressed in the display unit. They are
// derived from a domain.Geometry, which keeps its millimetre values.
type Dimensions struct {
	Unit domain.OutputUnit

	A float64
	B float64
	C float64
	D float64
	E float64

	// TotalWireLength is 2A + 2B + 2D, the straight wire needed to bend
	// both elements, in the display unit.
	TotalWireLength float64
}

// NewDimensions converts the lengths of g to unit. Impedance and cross-section
// are not part of the result because they are never unit-converted.
func NewDimensions(g domain.Geometry, unit domain.OutputUnit) Dimensions {
	convert := func(mm float64) float64 { return mm }
	if unit == domain.UnitInches {
		convert = units.MillimetersToInches
	} else {
		unit = domain.UnitMillimeters
	}

	d := Dimensions{
		Unit: unit,
		A:    convert(g.A),
		B:    convert(g.B),
		C:    convert(g.C),
		D:    convert(g.D),
		E:    convert(g.E),
	}
	d.TotalWireLength = 2*d.A + 2*d.B + 2*d.D

	return d
}

// Render writes the dimension report for req and g to w.
func Render(w io.Writer, req domain.Request, g domain.Geometry) error {
	d := NewDimensions(g, req.Unit)
	u := string(d.Unit)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", heavyRule)
	fmt.Fprintln(&b, "MOXON ANTENNA DIMENSIONS")
	fmt.Fprintf(&b, "Frequency: %s MHz\n", strconv.FormatFloat(req.FrequencyMHz, 'f', -1, 64))
	fmt.Fprintf(&b, "Wire Diameter: %.3f mm\n", req.DiameterMM)
	fmt.Fprintf(&b, "Wire Cross-section: %.3f mm²\n", g.CrossSectionMM2)
	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintf(&b, "A: %.2f %s\n", d.A, u)
	fmt.Fprintf(&b, "B: %.2f %s\n", d.B, u)
	fmt.Fprintf(&b, "C: %.2f %s (Gap)\n", d.C, u)
	fmt.Fprintf(&b, "D: %.2f %s\n", d.D, u)
	fmt.Fprintf(&b, "E: %.2f %s\n", d.E, u)
	fmt.Fprintln(&b, lightRule)
	fmt.Fprintf(&b, "Total Wire Length: %.2f %s\n", d.TotalWireLength, u)
	fmt.Fprintf(&b, "Estimated Impedance: ~%.1f Ohm\n", g.ImpedanceOhm)
	fmt.Fprintln(&b, heavyRule)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	return nil
}
