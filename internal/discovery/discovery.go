// Package discovery finds the per-group export files for each specimen and
// pairs them up for comparison.
package discovery

import (
	"path/filepath"
	"sort"

	"github.com/msymeonides/TCRBuilder/internal/template"
)

// Lister abstracts the directory listing so discovery is testable without a
// real filesystem.
type Lister interface {
	List(pattern string) ([]string, error)
}

// GlobLister lists files matching pattern under Dir.
type GlobLister struct {
	Dir string
}

func (g GlobLister) List(pattern string) ([]string, error) {
	return filepath.Glob(filepath.Join(g.Dir, pattern))
}

// FileSet maps a group label to the file holding that group's repertoire.
type FileSet map[string]string

// Pair is one ready-to-compare specimen: two groups in lexicographic order.
type Pair struct {
	Specimen string
	GroupA   string
	GroupB   string
	FileA    string
	FileB    string
}

// Skip records a specimen excluded from comparison and why.
type Skip struct {
	Specimen string
	Groups   []string
}

// Discover matches the template against the lister and groups the results by
// specimen. Filenames that do not decompose at the expected positions are
// dropped silently; the caller sees only what grouped.
func Discover(tpl *template.Template, ls Lister) (map[string]FileSet, error) {
	files, err := ls.List(tpl.GlobPattern())
	if err != nil {
		return nil, err
	}
	specimens := make(map[string]FileSet)
	for _, f := range files {
		specimen, group, ok := tpl.Extract(filepath.Base(f))
		if !ok {
			continue
		}
		if specimens[specimen] == nil {
			specimens[specimen] = FileSet{}
		}
		specimens[specimen][group] = f
	}
	return specimens, nil
}

// Pairs enforces the exactly-two-groups rule and assigns the deterministic
// (GroupA, GroupB) ordering. Specimens with any other group count come back
// in skipped; the rest proceed. Output order is sorted by specimen.
func Pairs(specimens map[string]FileSet) (pairs []Pair, skipped []Skip) {
	names := make([]string, 0, len(specimens))
	for s := range specimens {
		names = append(names, s)
	}
	sort.Strings(names)

	for _, specimen := range names {
		set := specimens[specimen]
		groups := make([]string, 0, len(set))
		for g := range set {
			groups = append(groups, g)
		}
		sort.Strings(groups)
		if len(groups) != 2 {
			skipped = append(skipped, Skip{Specimen: specimen, Groups: groups})
			continue
		}
		pairs = append(pairs, Pair{
			Specimen: specimen,
			GroupA:   groups[0],
			GroupB:   groups[1],
			FileA:    set[groups[0]],
			FileB:    set[groups[1]],
		})
	}
	return pairs, skipped
}
