package comparecli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/msymeonides/TCRBuilder/internal/cliutil"
	"github.com/msymeonides/TCRBuilder/internal/version"
)

// Options holds all tcrcompare CLI flags and arguments.
type Options struct {
	Template   string // filename template with {specimen}/{group}
	Dir        string // directory holding the group exports
	OutDir     string
	ConfigFile string

	Threads int // specimens compared concurrently (0 = all CPUs)

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: compare TCR clonotype repertoires between two groups of a specimen

Version: %s

Usage: %s --template "TCR-{specimen}-{group}.xlsx" [directory]
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Template, "template", "", "filename template with {specimen} and {group} placeholders [*]")
	fs.StringVar(&opt.Dir, "dir", ".", "directory holding the group export files [.]")
	fs.StringVar(&opt.OutDir, "outdir", "", "output directory (default: same as --dir)")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML config file (template, identity columns)")
	fs.IntVar(&opt.Threads, "threads", 0, "specimens compared concurrently (0 = all CPUs) [0]")
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

	// A single positional is shorthand for --dir.
	switch len(posArgs) {
	case 0:
	case 1:
		opt.Dir = posArgs[0]
	default:
		return opt, fmt.Errorf("at most one directory argument, got %d", len(posArgs))
	}

	if opt.Template == "" && opt.ConfigFile == "" {
		return opt, errors.New("provide --template or a --config file that sets one")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	if opt.OutDir == "" {
		opt.OutDir = opt.Dir
	}
	return opt, nil
}
