// Package clusterapp drives the cluster-frequency annotation tool.
package clusterapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/msymeonides/TCRBuilder/internal/cluster"
	"github.com/msymeonides/TCRBuilder/internal/clustercli"
	"github.com/msymeonides/TCRBuilder/internal/logging"
	"github.com/msymeonides/TCRBuilder/internal/tabular"
	"github.com/msymeonides/TCRBuilder/internal/version"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := clustercli.NewFlagSet("tcrcluster")
	fs.SetOutput(io.Discard)

	opts, err := clustercli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(stdout, "tcrcluster version %s\n", version.Version)
		return 0
	}

	log := logging.New(stderr, opts.Quiet)
	defer func() { _ = log.Sync() }()

	cells, err := tabular.ReadFile(opts.Cells)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	ann, err := cluster.FromTable(cells, opts.Cells)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	clonotypes, err := tabular.ReadFile(opts.Clonotypes)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	out, err := cluster.Annotate(clonotypes, opts.Clonotypes, ann)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	base := strings.TrimSuffix(filepath.Base(opts.Clonotypes), filepath.Ext(opts.Clonotypes))
	path := filepath.Join(opts.OutDir, "TCRCluster_"+base+filepath.Ext(opts.Clonotypes))
	if err := tabular.WriteFile(path, out); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	log.Infow("cluster annotation written", "rows", out.Len(), "output", path)
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
