package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Constant stopping power of 2 MeV/mm from 1 to 10 MeV, so the range is
// 500*(E-1) µm.
const flatTable = `header
header
header
header
1000   2  0
2500   2  0
4000   2  0
5500   2  0
7000   2  0
8500   2  0
10000  2  0
`

func tablesDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "H_in_Ta"), []byte(flatTable), 0o600))

	return dir
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Range(t *testing.T) {
	code, out, _ := runCLI(t, "-tables", tablesDir(t), "-material", "Ta", "range", "3", "0.5")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Range [um]")
	assert.Equal(t, []string{"3", "1000"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"0.5", "-"}, strings.Fields(lines[2]))
}

func TestRun_EnergyLoss(t *testing.T) {
	dir := tablesDir(t)

	code, out, _ := runCLI(t, "-tables", dir, "-material", "Ta", "eout", "500", "3", "1.5")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"3", "2"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1.5", "-"}, strings.Fields(lines[2]))

	code, out, _ = runCLI(t, "-tables", dir, "-material", "Ta", "ein", "500", "2")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "3")

	code, out, _ = runCLI(t, "-tables", dir, "-material", "Ta", "thickness", "3", "2")
	require.Equal(t, 0, code)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"3", "2", "500"}, strings.Fields(lines[1]))
}

func TestRun_Spectrum(t *testing.T) {
	dir := tablesDir(t)
	spec := filepath.Join(dir, "spectrum.txt")
	require.NoError(t, os.WriteFile(spec, []byte("# E yield\n5 1\n5.5 1\n6 1\n\n6.5 1\n7 1\n"), 0o600))

	code, out, stderr := runCLI(t, "-tables", dir, "-material", "Ta", "spectrum", "500", spec)
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "Yield")
	assert.Equal(t, []string{"4", "1"}, strings.Fields(lines[1]))

	code, out, stderr = runCLI(t, "-tables", dir, "-material", "Ta", "rspectrum", "500", spec)
	require.Equal(t, 0, code, stderr)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"6", "1"}, strings.Fields(lines[1]))
}

func TestRun_Errors(t *testing.T) {
	dir := tablesDir(t)

	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"no command", []string{"-material", "Ta"}, 2, "Usage"},
		{"unknown command", []string{"-material", "Ta", "bogus"}, 2, "unknown command"},
		{"no material", []string{"-tables", dir, "range", "1"}, 2, "-material"},
		{"missing table", []string{"-tables", dir, "-material", "Al", "range", "1"}, 1, "H_in_Al"},
		{"bad number", []string{"-tables", dir, "-material", "Ta", "range", "abc"}, 2, "not a number"},
		{"too few args", []string{"-tables", dir, "-material", "Ta", "eout", "10"}, 2, "usage"},
		{"missing spectrum", []string{"-tables", dir, "-material", "Ta", "spectrum", "10", filepath.Join(dir, "none")}, 1, "spectrum"},
		{"bad config", []string{"-config", filepath.Join(dir, "none.yaml"), "-material", "Ta", "range", "1"}, 1, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr, tt.msg)
		})
	}
}

func TestRun_List(t *testing.T) {
	code, out, _ := runCLI(t, "-list")
	require.Equal(t, 0, code)

	for _, c := range commands {
		assert.Contains(t, out, c.name)
	}
}

func TestReadSpectrum(t *testing.T) {
	s, err := readSpectrum(strings.NewReader("# comment\n1 10\n\n2 20 ignored\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, s.Energy)
	assert.Equal(t, []float64{10, 20}, s.Yield)

	_, err = readSpectrum(strings.NewReader("1\n"))
	assert.ErrorContains(t, err, "line 1")

	_, err = readSpectrum(strings.NewReader("1 10\n2 x\n"))
	assert.ErrorContains(t, err, "line 2")

	_, err = readSpectrum(strings.NewReader("1 10\n"))
	assert.Error(t, err)
}
