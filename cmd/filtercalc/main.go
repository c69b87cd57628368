// Command filtercalc computes ion energy loss in thin filters from SRIM
// stopping-power tables.
//
// Usage:
//
//	filtercalc [flags] <command> [args]
//
// Tables are read from <tables>/<ion>_in_<material>. Energies are in MeV,
// ranges and thicknesses in µm. Undefined results (outside the table, or
// ranged out) print as "-".
//
// Examples:
//
//	filtercalc -material Ta range 1 2 3
//	filtercalc -material Ta eout 10 3.0
//	filtercalc -ion D -material Ni ein 67 1.2
//	filtercalc -material Ta thickness 3.0 2.5
//	filtercalc -config srim.yaml -material Al spectrum 25 protons.txt
//	filtercalc -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/algo-srim/catalog"
	"github.com/cwbudde/algo-srim/config"
	"github.com/cwbudde/algo-srim/stopping/table"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
)

var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("filtercalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML configuration file")
	tables := fs.String("tables", "", "tables directory (overrides the configuration)")
	ion := fs.String("ion", "H", "ion name, e.g. H, D, T")
	material := fs.String("material", "", "filter material, e.g. Ta, Ni, Al")
	verbose := fs.Bool("v", false, "log diagnostics to the console")
	list := fs.Bool("list", false, "list available commands")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: filtercalc [flags] <command> [args]\n\n")
		fmt.Fprintf(stderr, "Computes ion energy loss in thin filters from SRIM stopping-power tables.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nCommands:\n")
		printList(stderr)
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		printList(stdout)
		return 0
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	cmd, ok := lookup(rest[0])
	if !ok {
		fmt.Fprintf(stderr, "error: unknown command %q (use -list to see available)\n", rest[0])
		return 2
	}

	if *material == "" {
		fmt.Fprintf(stderr, "error: -material is required\n")
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	if *tables != "" {
		cfg.Tables = *tables
	}

	logger := l.NewNopLoggerWrapper()
	if *verbose {
		logger = l.NewConsoleLoggerWrapper()
	}

	catOpts, err := cfg.CatalogOptions(logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	loader := table.NewLoader(rawfs.NewFSStorage(cfg.Tables), cfg.ReadOptions()...)
	m, err := catalog.New(loader, catOpts...).Model(*ion, *material)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := cmd.checkArgs(rest[1:]); err != nil {
		fmt.Fprintf(stderr, "error: %s: %v\n", cmd.name, err)
		fmt.Fprintf(stderr, "usage: filtercalc [flags] %s %s\n", cmd.name, cmd.args)
		return 2
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	if err := cmd.run(m, rest[1:], tw); err != nil {
		fmt.Fprintf(stderr, "error: %s: %v\n", cmd.name, err)
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "usage: filtercalc [flags] %s %s\n", cmd.name, cmd.args)
			return 2
		}
		return 1
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(stderr, "error: failed to flush output: %v\n", err)
		return 1
	}

	return 0
}

func printList(w io.Writer) {
	entries := append([]command(nil), commands...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range entries {
		_, _ = fmt.Fprintf(tw, "  %s %s\t%s\n", c.name, c.args, c.help)
	}
	_ = tw.Flush()
}
