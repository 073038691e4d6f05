package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var s string
	fs.BoolVar(&b, "quiet", false, "")
	fs.StringVar(&s, "outdir", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs,
		[]string{"--quiet", "pos1", "--outdir", "out", "--", "pos2"})
	if len(flagArgs) != 3 {
		t.Fatalf("flagArgs = %v", flagArgs)
	}
	if len(posArgs) != 2 || posArgs[0] != "pos1" || posArgs[1] != "pos2" {
		t.Fatalf("posArgs = %v", posArgs)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.xlsx")
	b := filepath.Join(dir, "b.xlsx")
	_ = os.WriteFile(a, []byte("x"), 0o644)
	_ = os.WriteFile(b, []byte("x"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.xlsx")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.none")}); err == nil {
		t.Fatal("expected error for glob with no matches")
	}
}
