package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-srim/spectrum"
	"github.com/cwbudde/algo-srim/stopping"
	"github.com/spf13/cast"
)

type command struct {
	name    string
	args    string
	help    string
	minArgs int
	run     func(m *stopping.Model, args []string, w io.Writer) error
}

var commands = []command{
	{"range", "E...", "range [um] at each energy [MeV]", 1, runRange},
	{"energy", "R...", "energy [MeV] at each range [um]", 1, runEnergy},
	{"eout", "T E...", "energy after T um of material", 2, runEOut},
	{"ein", "T E...", "energy before T um of material", 2, runEIn},
	{"thickness", "EIN EOUT", "thickness [um] taking EIN down to EOUT", 2, runThickness},
	{"spectrum", "T FILE", "carry an (energy, yield) spectrum across T um", 2, runSpectrum},
	{"rspectrum", "T FILE", "recover the spectrum in front of T um", 2, runReverseSpectrum},
}

func lookup(name string) (command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}

	return command{}, false
}

func (c command) checkArgs(args []string) error {
	if len(args) < c.minArgs {
		return fmt.Errorf("%w: want at least %d arguments, got %d", errUsage, c.minArgs, len(args))
	}

	return nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := cast.ToFloat64E(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errUsage, a)
		}
		out[i] = v
	}

	return out, nil
}

func formatValue(v float64) string {
	if stopping.IsUndefined(v) {
		return "-"
	}

	return fmt.Sprintf("%.6g", v)
}

func writeColumns(w io.Writer, header string, cols ...[]float64) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for i := range cols[0] {
		cells := make([]string, len(cols))
		for j, col := range cols {
			cells[j] = formatValue(col[i])
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return nil
}

func runRange(m *stopping.Model, args []string, w io.Writer) error {
	es, err := parseFloats(args)
	if err != nil {
		return err
	}

	return writeColumns(w, "E [MeV]\tRange [um]", es, m.RangeAll(es))
}

func runEnergy(m *stopping.Model, args []string, w io.Writer) error {
	rs, err := parseFloats(args)
	if err != nil {
		return err
	}

	return writeColumns(w, "Range [um]\tE [MeV]", rs, m.EnergyAll(rs))
}

func runEOut(m *stopping.Model, args []string, w io.Writer) error {
	vals, err := parseFloats(args)
	if err != nil {
		return err
	}

	return writeColumns(w, "E_in [MeV]\tE_out [MeV]", vals[1:], m.EOutAll(vals[1:], vals[0]))
}

func runEIn(m *stopping.Model, args []string, w io.Writer) error {
	vals, err := parseFloats(args)
	if err != nil {
		return err
	}

	return writeColumns(w, "E_out [MeV]\tE_in [MeV]", vals[1:], m.EInAll(vals[1:], vals[0]))
}

func runThickness(m *stopping.Model, args []string, w io.Writer) error {
	vals, err := parseFloats(args[:2])
	if err != nil {
		return err
	}

	th := m.Thickness(vals[0], vals[1])

	return writeColumns(w, "E_in [MeV]\tE_out [MeV]\tThickness [um]", vals[:1], vals[1:2], []float64{th})
}

func runSpectrum(m *stopping.Model, args []string, w io.Writer) error {
	return remap(args, w, m.EOutSpectrum)
}

func runReverseSpectrum(m *stopping.Model, args []string, w io.Writer) error {
	return remap(args, w, m.EInSpectrum)
}

func remap(args []string, w io.Writer, fn func(spectrum.Spectrum, float64) (spectrum.Spectrum, error)) error {
	vals, err := parseFloats(args[:1])
	if err != nil {
		return err
	}

	s, err := readSpectrumFile(args[1])
	if err != nil {
		return err
	}

	out, err := fn(s, vals[0])
	if err != nil {
		return err
	}

	return writeColumns(w, "E [MeV]\tYield [1/MeV]", out.Energy, out.Yield)
}

func readSpectrumFile(path string) (spectrum.Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return spectrum.Spectrum{}, err
	}
	defer f.Close()

	return readSpectrum(f)
}

// readSpectrum parses two whitespace separated columns, energy and yield
// density. Blank lines and lines starting with '#' are skipped.
func readSpectrum(r io.Reader) (spectrum.Spectrum, error) {
	var energy, yield []float64

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return spectrum.Spectrum{}, fmt.Errorf("line %d: want 2 columns, got %d", lineNo, len(fields))
		}

		e, err := cast.ToFloat64E(fields[0])
		if err != nil {
			return spectrum.Spectrum{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		y, err := cast.ToFloat64E(fields[1])
		if err != nil {
			return spectrum.Spectrum{}, fmt.Errorf("line %d: %w", lineNo, err)
		}

		energy = append(energy, e)
		yield = append(yield, y)
	}

	if err := sc.Err(); err != nil {
		return spectrum.Spectrum{}, err
	}

	return spectrum.New(energy, yield)
}
