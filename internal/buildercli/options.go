package buildercli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/msymeonides/TCRBuilder/internal/cliutil"
	"github.com/msymeonides/TCRBuilder/internal/version"
)

// Options holds all tcrbuilder CLI flags and arguments.
type Options struct {
	Inputs     []string // clonotype tables (positional, globs allowed)
	OutDir     string
	ConfigFile string

	Species string
	TRBC    string
	Thimble string // executable name or path

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: assemble TCR expression constructs from clonotype tables via thimble

Version: %s

Usage: %s [flags] clonotypes.xlsx [more tables...]
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.OutDir, "outdir", ".", "output directory [.]")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML config file (species, TRBC, homology arms)")
	fs.StringVar(&opt.Species, "species", "", "dataset species passed to thimble (default from config: human)")
	fs.StringVar(&opt.TRBC, "trbc", "", "beta constant region, TRBC1 or TRBC2 (default from config: TRBC2)")
	fs.StringVar(&opt.Thimble, "thimble", "thimble", "thimble executable name or path [thimble]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-fatal warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	inputs, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Inputs = inputs
	if len(opt.Inputs) == 0 {
		return opt, errors.New("at least one clonotype table is required")
	}
	if opt.TRBC != "" && opt.TRBC != "TRBC1" && opt.TRBC != "TRBC2" {
		return opt, fmt.Errorf("--trbc must be TRBC1 or TRBC2, got %q", opt.TRBC)
	}
	return opt, nil
}
