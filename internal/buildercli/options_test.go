package buildercli

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("tcrbuilder")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgsRequiresInput(t *testing.T) {
	if _, err := parse(t); err == nil {
		t.Error("expected error without input tables")
	}
}

func TestParseArgsExpandsGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.xlsx", "b.xlsx"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	opt, err := parse(t, "--trbc", "TRBC1", filepath.Join(dir, "*.xlsx"))
	if err != nil {
		t.Fatal(err)
	}
	if len(opt.Inputs) != 2 {
		t.Errorf("Inputs = %v", opt.Inputs)
	}
	if opt.TRBC != "TRBC1" {
		t.Errorf("TRBC = %q", opt.TRBC)
	}
}

func TestParseArgsRejectsBadTRBC(t *testing.T) {
	if _, err := parse(t, "--trbc", "TRBC9", "in.xlsx"); err == nil {
		t.Error("expected error for invalid TRBC")
	}
}

func TestParseArgsHelp(t *testing.T) {
	_, err := parse(t, "-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}
