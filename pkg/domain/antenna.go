package domain

// OutputUnit selects how lengths are displayed. It never affects the
// calculation itself, which always works in millimetres.
type OutputUnit string

const (
	// UnitMillimeters displays lengths in millimetres.
	UnitMillimeters OutputUnit = "mm"
	// UnitInches displays lengths in inches.
	UnitInches OutputUnit = "in"
)

// DiameterFormat is the representation the conductor diameter was entered in.
// It is only relevant while reading input; the calculation keeps millimetres.
type DiameterFormat string

const (
	// DiameterMillimeters means the diameter is given in millimetres.
	DiameterMillimeters DiameterFormat = "1"
	// DiameterInches means the diameter is given in inches.
	DiameterInches DiameterFormat = "2"
	// DiameterAWG means the diameter is given as an American Wire Gauge number.
	DiameterAWG DiameterFormat = "3"
)

// Request is a validated calculation request assembled by the interactive
// session and passed by value into the calculator.
type Request struct {
	// FrequencyMHz is the design frequency, always > 0.
	FrequencyMHz float64
	// DiameterMM is the conductor diameter in millimetres, always > 0.
	DiameterMM float64
	// Unit is the display unit for the report.
	Unit OutputUnit
}

// Geometry holds the dimensions of a Moxon rectangle in millimetres together
// with the estimated feed impedance and the conductor cross-section.
//
// A is the long side of both elements, B the driven element tail, C the gap
// between the tails, D the reflector tail and E the overall depth.
type Geometry struct {
	A float64
	B float64
	C float64
	D float64
	E float64

	// ImpedanceOhm is the heuristic terminal impedance estimate.
	ImpedanceOhm float64
	// CrossSectionMM2 is the conductor cross-section area.
	CrossSectionMM2 float64
}
