package discovery

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msymeonides/TCRBuilder/internal/template"
)

type fakeLister []string

func (f fakeLister) List(string) ([]string, error) { return f, nil }

func mustParse(t *testing.T, raw string) *template.Template {
	t.Helper()
	tpl, err := template.Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q): %v", raw, err)
	}
	return tpl
}

func TestDiscoverGroupsBySpecimen(t *testing.T) {
	tpl := mustParse(t, "S-{specimen}-{group}.csv")
	ls := fakeLister{
		"S-wt-pos.csv",
		"S-wt-neg.csv",
		"S-mut-pos.csv",
		"bogus.csv", // does not decompose; silently dropped
	}

	got, err := Discover(tpl, ls)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]FileSet{
		"wt":  {"pos": "S-wt-pos.csv", "neg": "S-wt-neg.csv"},
		"mut": {"pos": "S-mut-pos.csv"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Discover mismatch (-want +got):\n%s", diff)
	}
}

func TestPairsEnforcesExactlyTwoGroups(t *testing.T) {
	specimens := map[string]FileSet{
		"wt":    {"pos": "a", "neg": "b"},
		"mut":   {"pos": "c"},                          // one group
		"extra": {"pos": "d", "neg": "e", "third": "f"}, // three groups
	}

	pairs, skipped := Pairs(specimens)

	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	p := pairs[0]
	if p.Specimen != "wt" || p.GroupA != "neg" || p.GroupB != "pos" {
		t.Errorf("unexpected pair %+v; groups must be lexicographic", p)
	}
	if p.FileA != "b" || p.FileB != "a" {
		t.Errorf("files do not follow group order: %+v", p)
	}

	if len(skipped) != 2 {
		t.Fatalf("expected 2 skipped specimens, got %d", len(skipped))
	}
	for _, s := range skipped {
		if s.Specimen == "wt" {
			t.Errorf("wt must not be skipped: %+v", s)
		}
	}
}

func TestPairsDeterministicOrder(t *testing.T) {
	specimens := map[string]FileSet{
		"b": {"x": "1", "y": "2"},
		"a": {"x": "3", "y": "4"},
	}
	pairs, _ := Pairs(specimens)
	if len(pairs) != 2 || pairs[0].Specimen != "a" || pairs[1].Specimen != "b" {
		t.Errorf("pairs not sorted by specimen: %+v", pairs)
	}
}
