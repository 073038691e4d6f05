// Package template resolves the user-supplied filename pattern that names
// each group export, e.g. "PBMC-{specimen}-*-{group}-*_new.xlsx". The
// separator between fields is inferred from the pattern itself.
package template

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	placeholderSpecimen = "{specimen}"
	placeholderGroup    = "{group}"
)

// ErrNoSeparator is the one fatal discovery condition: without a separator
// there is no field layout to extract from.
var ErrNoSeparator = errors.New("could not infer separator from template")

var (
	afterSpecimen = regexp.MustCompile(`\{specimen}(\W)`)
	afterGroup    = regexp.MustCompile(`\{group}(\W)`)
)

// Template is a parsed filename pattern. It is immutable after Parse.
type Template struct {
	raw            string
	sep            string
	specimenIdx    int
	groupIdx       int
	specimenPrefix string // literal text before {specimen} within its field
}

// Parse validates the pattern and locates the specimen and group fields.
func Parse(raw string) (*Template, error) {
	if !strings.Contains(raw, placeholderSpecimen) || !strings.Contains(raw, placeholderGroup) {
		return nil, fmt.Errorf("template %q must contain both %s and %s", raw, placeholderSpecimen, placeholderGroup)
	}
	sep, err := inferSeparator(raw)
	if err != nil {
		return nil, err
	}

	t := &Template{raw: raw, sep: sep, specimenIdx: -1, groupIdx: -1}
	for i, part := range t.splitFields(raw) {
		if strings.Contains(part, placeholderSpecimen) {
			t.specimenIdx = i
			t.specimenPrefix = part[:strings.Index(part, placeholderSpecimen)]
		}
		if strings.Contains(part, placeholderGroup) {
			t.groupIdx = i
		}
	}
	if t.specimenIdx < 0 || t.groupIdx < 0 {
		return nil, fmt.Errorf("template %q: placeholder not alignable on separator %q", raw, sep)
	}
	return t, nil
}

// inferSeparator picks the non-word character immediately following a
// placeholder; failing that, "-" wins over "_" when present anywhere in the
// pattern. Underscore is a word character, so it is only ever inferred
// through the fallback.
func inferSeparator(raw string) (string, error) {
	if m := afterSpecimen.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}
	if m := afterGroup.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}
	if strings.Contains(raw, "-") {
		return "-", nil
	}
	if strings.Contains(raw, "_") {
		return "_", nil
	}
	return "", ErrNoSeparator
}

// splitFields strips the extension and splits on the separator.
func (t *Template) splitFields(name string) []string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.Split(name, t.sep)
}

// Separator reports the inferred field separator.
func (t *Template) Separator() string { return t.sep }

// GlobPattern converts the template into a filesystem glob that matches any
// specimen and group.
func (t *Template) GlobPattern() string {
	g := strings.ReplaceAll(t.raw, placeholderSpecimen, "*")
	return strings.ReplaceAll(g, placeholderGroup, "*")
}

// Extract pulls the (specimen, group) pair out of a filename laid out like
// the template. ok is false when the filename has too few fields.
//
// When the template carries a literal prefix before {specimen} (e.g.
// "wt{specimen}"), a matching prefix is stripped from the extracted value; a
// filename that does not carry the prefix still yields the raw substring.
// That looseness is deliberate: it mirrors how lab exports are renamed by
// hand, and discovery is non-fatal per file anyway.
func (t *Template) Extract(filename string) (specimen, group string, ok bool) {
	parts := t.splitFields(filepath.Base(filename))
	if t.specimenIdx >= len(parts) || t.groupIdx >= len(parts) {
		return "", "", false
	}
	specimen = parts[t.specimenIdx]
	group = parts[t.groupIdx]
	if t.specimenPrefix != "" && strings.HasPrefix(specimen, t.specimenPrefix) {
		specimen = specimen[len(t.specimenPrefix):]
	}
	return specimen, group, specimen != "" && group != ""
}
