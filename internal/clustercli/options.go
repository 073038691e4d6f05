package clustercli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/msymeonides/TCRBuilder/internal/version"
)

// Options holds all tcrcluster CLI flags.
type Options struct {
	Clonotypes string // clonotype table
	Cells      string // cell-level cluster assignment table
	OutDir     string

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: annotate clonotypes with their cell-cluster memberships

Version: %s

Usage: %s --clonotypes table.xlsx --cells assignments.xlsx
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Clonotypes, "clonotypes", "", "clonotype table [*]")
	fs.StringVar(&opt.Cells, "cells", "", "cell-level table with Clonotype_ID and Cluster columns [*]")
	fs.StringVar(&opt.OutDir, "outdir", ".", "output directory [.]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-fatal warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if opt.Clonotypes == "" || opt.Cells == "" {
		return opt, errors.New("--clonotypes and --cells are both required")
	}
	return opt, nil
}
