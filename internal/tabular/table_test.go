package tabular

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCellPadsShortRows(t *testing.T) {
	tab := New([]string{"a", "b", "c"})
	tab.Append([]string{"1"})

	if got := tab.Cell(0, "a"); got != "1" {
		t.Errorf("Cell(0,a) = %q", got)
	}
	if got := tab.Cell(0, "c"); got != "" {
		t.Errorf("Cell(0,c) = %q, want empty", got)
	}
	if got := tab.Cell(0, "nope"); got != "" {
		t.Errorf("Cell on unknown column = %q, want empty", got)
	}
	if got := tab.Cell(5, "a"); got != "" {
		t.Errorf("Cell out of range = %q, want empty", got)
	}
}

func TestMissing(t *testing.T) {
	tab := New([]string{"Count", "cdr3_a"})
	got := tab.Missing([]string{"Count", "cdr3_a", "cdr3_b", "v_gene_a"})
	want := []string{"cdr3_b", "v_gene_a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Missing = %v, want %v", got, want)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"42", 42, true},
		{" 7 ", 7, true},
		{"-3", -3, true},
		{"", 0, false},
		{"3.5", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		got, ok := Int(tt.in)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("Int(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
	if got := IntOr("junk", 0); got != 0 {
		t.Errorf("IntOr(junk, 0) = %d", got)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.csv")

	in := New([]string{"x", "y"})
	in.Append([]string{"1", "hello, world"})
	in.Append([]string{"2", "plain"})
	if err := WriteFile(path, in); err != nil {
		t.Fatal(err)
	}

	out, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out.Header, in.Header) || !reflect.DeepEqual(out.Rows, in.Rows) {
		t.Errorf("round trip mismatch: %+v vs %+v", out, in)
	}
}

func TestTSVReadsTabs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.tsv")
	if err := os.WriteFile(path, []byte("a\tb\n1\t2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tab, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 1 || tab.Cell(0, "b") != "2" {
		t.Errorf("unexpected table: %+v", tab)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := ReadFile("x.parquet"); err == nil {
		t.Error("expected unsupported-format error")
	}
	if err := WriteFile("x.parquet", New(nil)); err == nil {
		t.Error("expected unsupported-format error")
	}
}
