// Package compareapp wires discovery, loading, ranking, and report writing
// into the tcrcompare tool. Each specimen is processed independently;
// specimens only share the parsed template and config.
package compareapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/msymeonides/TCRBuilder/internal/compare"
	"github.com/msymeonides/TCRBuilder/internal/comparecli"
	"github.com/msymeonides/TCRBuilder/internal/config"
	"github.com/msymeonides/TCRBuilder/internal/discovery"
	"github.com/msymeonides/TCRBuilder/internal/logging"
	"github.com/msymeonides/TCRBuilder/internal/repertoire"
	"github.com/msymeonides/TCRBuilder/internal/report"
	"github.com/msymeonides/TCRBuilder/internal/tabular"
	"github.com/msymeonides/TCRBuilder/internal/template"
	"github.com/msymeonides/TCRBuilder/internal/version"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := comparecli.NewFlagSet("tcrcompare")
	fs.SetOutput(io.Discard)

	opts, err := comparecli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(stdout, "tcrcompare version %s\n", version.Version)
		return 0
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Template != "" {
		cfg.Template = opts.Template
	}
	if cfg.Template == "" {
		_, _ = fmt.Fprintln(stderr, "no filename template configured")
		return 2
	}

	log := logging.New(stderr, opts.Quiet)
	defer func() { _ = log.Sync() }()

	// Separator inference is the one fatal discovery condition: without a
	// field layout there is nothing to extract.
	tpl, err := template.Parse(cfg.Template)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	n, err := Compare(parent, tpl, cfg, opts, log)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if n == 0 {
		log.Warnw("no comparisons produced; check the template and input files",
			"template", cfg.Template, "dir", opts.Dir)
		return 1
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// Compare discovers specimen pairs under opts.Dir and writes one report per
// pair, returning how many reports were written. Per-specimen problems are
// logged and skipped; only I/O-level failures come back as an error.
func Compare(ctx context.Context, tpl *template.Template, cfg config.Config, opts comparecli.Options, log *zap.SugaredLogger) (int, error) {
	specimens, err := discovery.Discover(tpl, discovery.GlobLister{Dir: opts.Dir})
	if err != nil {
		return 0, err
	}

	pairs, skipped := discovery.Pairs(specimens)
	for _, s := range skipped {
		log.Warnw("skipping specimen: exactly two groups are required",
			"specimen", s.Specimen, "groups", s.Groups)
	}
	if len(pairs) == 0 {
		return 0, nil
	}

	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return 0, err
		}
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	var written atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for _, pair := range pairs {
		pair := pair
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, err := compareOne(pair, cfg, opts.OutDir, log)
			if err != nil {
				return err
			}
			if ok {
				written.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(written.Load()), err
	}
	return int(written.Load()), nil
}

// compareOne runs a single specimen comparison end to end. Schema problems
// and unreadable inputs skip the specimen (false, nil); a failed report
// write is a real error.
func compareOne(pair discovery.Pair, cfg config.Config, outDir string, log *zap.SugaredLogger) (bool, error) {
	a, err := repertoire.Load(pair.FileA, cfg.IdentityColumns)
	if err != nil {
		logLoadFailure(log, pair, pair.GroupA, err)
		return false, nil
	}
	b, err := repertoire.Load(pair.FileB, cfg.IdentityColumns)
	if err != nil {
		logLoadFailure(log, pair, pair.GroupB, err)
		return false, nil
	}

	comps := compare.Reconcile(compare.Rank(a), compare.Rank(b))
	out := report.Build(pair.GroupA, pair.GroupB, cfg.IdentityColumns, comps)

	name := report.OutputName(pair.Specimen, pair.GroupA, pair.GroupB, filepath.Ext(pair.FileA))
	path := filepath.Join(outDir, name)
	if err := tabular.WriteFile(path, out); err != nil {
		return false, err
	}
	log.Infow("comparison written",
		"specimen", pair.Specimen, "groups", pair.GroupA+" vs "+pair.GroupB,
		"rows", out.Len(), "output", path)
	return true, nil
}

func logLoadFailure(log *zap.SugaredLogger, pair discovery.Pair, group string, err error) {
	var missing *repertoire.MissingColumnsError
	if errors.As(err, &missing) {
		log.Warnw("skipping specimen: missing required columns",
			"specimen", pair.Specimen, "group", group, "columns", missing.Columns)
		return
	}
	log.Warnw("skipping specimen: unreadable input",
		"specimen", pair.Specimen, "group", group, "error", err.Error())
}
