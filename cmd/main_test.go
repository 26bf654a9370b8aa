package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, input string, args ...string) result {
	t.Helper()

	// point at a file that does not exist so a config.yml in the working
	// directory cannot leak into the test
	if len(args) == 0 || args[0] != "-c" {
		args = append([]string{"-c", filepath.Join(t.TempDir(), "none.yml")}, args...)
	}

	var stdout, stderr bytes.Buffer
	root := newRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(input))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	code := execute(context.Background(), root)

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestCLI_ReferencePoint(t *testing.T) {
	res := runCLI(t, "868\n1\n1.5\n\n")

	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, "MOXON ANTENNA DIMENSIONS\n")
	require.Contains(t, res.stdout, "A: 124.00 mm\n")
	require.Contains(t, res.stdout, "B: 8.50 mm\n")
	require.Contains(t, res.stdout, "C: 18.00 mm (Gap)\n")
	require.Contains(t, res.stdout, "D: 19.50 mm\n")
	require.Contains(t, res.stdout, "E: 46.00 mm\n")
	require.Contains(t, res.stdout, "Total Wire Length: 304.00 mm\n")
	require.Contains(t, res.stdout, "Estimated Impedance: ~50.0 Ohm\n")
	require.Empty(t, res.stderr)
}

func TestCLI_InchesOutput(t *testing.T) {
	res := runCLI(t, "433.92\n1\n2\n2\n")

	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, "A: 9.77 in\n")
	require.Contains(t, res.stdout, "Wire Cross-section: 3.142 mm²\n")
}

func TestCLI_InvalidInputExitsWithOne(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{name: "invalid diameter mode", input: "868\n9\n", message: `Error: invalid choice "9"`},
		{name: "non-numeric frequency", input: "abc\n", message: "Error: could not read frequency: expected a number"},
		{name: "non-positive frequency", input: "-5\n", message: "Error: frequency must be a positive number"},
		{name: "non-numeric diameter", input: "868\n1\nx\n", message: "Error: could not read diameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, tt.input)

			require.Equal(t, 1, res.code)
			require.Contains(t, res.stderr, tt.message)
			require.NotContains(t, res.stdout, "MOXON ANTENNA DIMENSIONS")
		})
	}
}

func TestCLI_ReferenceFromEnvironment(t *testing.T) {
	t.Setenv("MOXON_REFERENCE_FREQUENCY_MHZ", "144.5")
	t.Setenv("MOXON_REFERENCE_DIAMETER_MM", "2")
	t.Setenv("MOXON_REFERENCE_A", "760")

	res := runCLI(t, "144.5\n1\n2\n\n")

	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, "A: 760.00 mm\n")
}

func TestCLI_InvalidReferenceConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("reference:\n  frequencyMHz: -868\n"), 0o600))

	res := runCLI(t, "868\n1\n1.5\n\n", "-c", path)

	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "reference frequency must be a positive number")
	require.NotContains(t, res.stdout, "Enter frequency")
}

func TestCLI_UnreadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("reference: [broken"), 0o600))

	res := runCLI(t, "", "-c", path)

	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "could not read config")
}

func TestCLI_Version(t *testing.T) {
	res := runCLI(t, "", "version")

	require.Equal(t, 0, res.code)
	require.Equal(t, "moxon 1.1\n", res.stdout)
}

func TestCLI_RejectsArguments(t *testing.T) {
	res := runCLI(t, "", "868")

	require.Equal(t, 1, res.code)
}
