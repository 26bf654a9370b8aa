// Package prompt runs the interactive question and answer session that
// collects a calculation request, then prints the resulting report.
//
// The session is single-shot: the first invalid answer ends it with a
// semantic error from pkg/serrors, there is no re-prompting.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"moxon/internal/moxon"
	"moxon/internal/report"
	"moxon/pkg/domain"
	"moxon/pkg/logger"
	"moxon/pkg/serrors"
	"moxon/pkg/units"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const diameterMenu = `
Choose conductor diameter input format:
1 - Millimeters (mm)
2 - Inches (in)
3 - AWG
`

// Session reads answers line by line from in and writes prompts and the
// report to out.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	geometer moxon.Geometer
}

// NewSession creates a Session computing geometries with geometer.
func NewSession(in io.Reader, out io.Writer, geometer moxon.Geometer) *Session {
	return &Session{
		in:       bufio.NewReader(in),
		out:      out,
		geometer: geometer,
	}
}

// Run asks for the request, calculates the geometry and renders the report.
// Nothing is calculated when the request is invalid.
func (s *Session) Run(ctx context.Context) error {
	req, err := s.ReadRequest(ctx)
	if err != nil {
		return err
	}

	g := s.geometer.Calculate(ctx, req.FrequencyMHz, req.DiameterMM)
	logger.Debug(ctx, "geometry calculated",
		zap.Float64("a_mm", g.A),
		zap.Float64("impedance_ohm", g.ImpedanceOhm),
	)

	return report.Render(s.out, req, g)
}

// ReadRequest asks for frequency, diameter and output unit in that order.
func (s *Session) ReadRequest(ctx context.Context) (domain.Request, error) {
	freq, err := s.askNumber("Enter frequency (MHz): ")
	if err != nil {
		return domain.Request{}, fmt.Errorf("could not read frequency: %w", err)
	}
	if freq <= 0 {
		return domain.Request{}, serrors.With(serrors.ErrInvalidSelection, "frequency must be a positive number")
	}

	diameter, format, err := s.askDiameter()
	if err != nil {
		return domain.Request{}, err
	}
	if !(diameter > 0) || math.IsInf(diameter, 1) {
		return domain.Request{}, serrors.With(serrors.ErrInvalidSelection,
			"diameter must be a positive number, got %v mm", diameter)
	}

	answer, err := s.ask("\nOutput units (1 - mm [default], 2 - inches): ")
	if err != nil {
		return domain.Request{}, err
	}
	unit := domain.UnitMillimeters
	if answer == "2" {
		unit = domain.UnitInches
	}

	req := domain.Request{
		FrequencyMHz: freq,
		DiameterMM:   diameter,
		Unit:         unit,
	}
	logger.Debug(ctx, "request read",
		zap.Float64("frequency_mhz", req.FrequencyMHz),
		zap.Float64("diameter_mm", req.DiameterMM),
		zap.String("diameter_format", string(format)),
		zap.String("unit", string(req.Unit)),
	)

	return req, nil
}

// askDiameter shows the format menu and returns the diameter in millimetres.
func (s *Session) askDiameter() (float64, domain.DiameterFormat, error) {
	if _, err := io.WriteString(s.out, diameterMenu); err != nil {
		return 0, "", fmt.Errorf("could not write prompt: %w", err)
	}
	answer, err := s.ask("Your choice (1/2/3): ")
	if err != nil {
		return 0, "", err
	}

	format := domain.DiameterFormat(answer)
	switch format {
	case domain.DiameterMillimeters:
		mm, err := s.askNumber("Enter diameter (mm): ")
		if err != nil {
			return 0, format, fmt.Errorf("could not read diameter: %w", err)
		}

		return mm, format, nil
	case domain.DiameterInches:
		inch, err := s.askNumber("Enter diameter (inches): ")
		if err != nil {
			return 0, format, fmt.Errorf("could not read diameter: %w", err)
		}

		return units.InchesToMillimeters(inch), format, nil
	case domain.DiameterAWG:
		answer, err := s.ask("Enter AWG number: ")
		if err != nil {
			return 0, format, err
		}
		awg, err := units.ParseAWG(answer)
		if err != nil {
			return 0, format, serrors.Wrap(serrors.ErrInvalidNumericInput, err, "could not read AWG number")
		}

		return units.AWGToDiameterMM(float64(awg)), format, nil
	default:
		return 0, format, serrors.With(serrors.ErrInvalidSelection, "invalid choice %q", answer)
	}
}

// askNumber asks a question whose answer must be a finite number.
func (s *Session) askNumber(question string) (float64, error) {
	answer, err := s.ask(question)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(answer, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, serrors.With(serrors.ErrInvalidNumericInput, "expected a number, got %q", answer)
	}

	return v, nil
}

// ask writes question and returns the next answer line without surrounding
// whitespace. End of input counts as an empty answer.
func (s *Session) ask(question string) (string, error) {
	if _, err := io.WriteString(s.out, question); err != nil {
		return "", fmt.Errorf("could not write prompt: %w", err)
	}

	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("could not read answer: %w", err)
	}

	return strings.TrimSpace(line), nil
}
