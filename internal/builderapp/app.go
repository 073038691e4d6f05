// Package builderapp drives the tcrbuilder pipeline: clonotype table to
// thimble input, thimble run, then final construct table.
package builderapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/msymeonides/TCRBuilder/internal/builder"
	"github.com/msymeonides/TCRBuilder/internal/buildercli"
	"github.com/msymeonides/TCRBuilder/internal/config"
	"github.com/msymeonides/TCRBuilder/internal/logging"
	"github.com/msymeonides/TCRBuilder/internal/repertoire"
	"github.com/msymeonides/TCRBuilder/internal/tabular"
	"github.com/msymeonides/TCRBuilder/internal/version"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := buildercli.NewFlagSet("tcrbuilder")
	fs.SetOutput(io.Discard)

	opts, err := buildercli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "tcrbuilder version %s\n", version.Version)
		return 0
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Species != "" {
		cfg.Species = opts.Species
	}
	if opts.TRBC != "" {
		cfg.TRBC = opts.TRBC
	}
	// Convert maps fields positionally; only the standard six-column identity
	// layout is convertible to thimble input.
	if len(cfg.IdentityColumns) != 6 {
		_, _ = fmt.Fprintf(stderr, "tcrbuilder requires the six standard identity columns, config has %d\n", len(cfg.IdentityColumns))
		return 2
	}

	log := logging.New(stderr, opts.Quiet)
	defer func() { _ = log.Sync() }()

	runner := builder.Runner{Thimble: opts.Thimble, Species: cfg.Species}
	if err := runner.Check(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	built := 0
	for _, input := range opts.Inputs {
		if parent.Err() != nil {
			break
		}
		if err := buildOne(parent, input, cfg, runner, opts.OutDir, log); err != nil {
			// The conversion TSV stays on disk for inspection; move on to the
			// next table.
			log.Warnw("build failed", "input", input, "error", err.Error())
			continue
		}
		built++
	}
	if built == 0 {
		return 1
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func buildOne(ctx context.Context, input string, cfg config.Config, runner builder.Runner, outDir string, log *zap.SugaredLogger) error {
	t, err := repertoire.Load(input, cfg.IdentityColumns)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	convertedTSV := filepath.Join(outDir, base+"_converted.tsv")
	thimbleTSV := filepath.Join(outDir, base+"_thimble.tsv")
	finalOut := filepath.Join(outDir, base+"_final-assembly"+filepath.Ext(input))

	converted := builder.Convert(t, cfg.TRBC)
	if err := tabular.WriteFile(convertedTSV, converted); err != nil {
		return err
	}
	log.Infow("thimble input written", "input", input, "rows", converted.Len(), "output", convertedTSV)

	if err := runner.Run(ctx, convertedTSV, thimbleTSV); err != nil {
		return err
	}

	assembled, err := tabular.ReadFile(thimbleTSV)
	if err != nil {
		return err
	}
	final := builder.Assembly{
		Basename: base,
		Arm5:     cfg.HomologyArm5,
		Arm3:     cfg.HomologyArm3,
	}.Finalize(assembled)
	if err := tabular.WriteFile(finalOut, final); err != nil {
		return err
	}
	log.Infow("final assembly written", "input", input, "rows", final.Len(), "output", finalOut)
	return nil
}
