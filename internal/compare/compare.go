// Package compare reconciles two independently-ranked repertoires of the
// same specimen into one comparison per clonotype key.
package compare

import (
	"sort"

	"github.com/msymeonides/TCRBuilder/internal/repertoire"
)

// Presence values for a clonotype key.
const (
	PresenceCommon = "common"
	PresenceUnique = "unique"
)

// Entry is one group's view of a clonotype: its row and its abundance rank
// within that group (1 = most abundant).
type Entry struct {
	Row  repertoire.Row
	Rank int
}

// Group holds one group's keyed rows and ranks.
type Group struct {
	byKey map[repertoire.Key]Entry
}

// Rank sorts a validated table by count descending (stable, so ties keep
// input order), assigns ranks 1..N, and keys the rows.
//
// Duplicate keys within a group overwrite earlier occurrences, yet every
// occurrence consumes a rank position during sorting: the recorded rank for
// a duplicated key is that of its last-sorted occurrence. This matches the
// behavior prior runs of the pipeline produced; dedupe upstream if that is
// not what you want.
func Rank(t *repertoire.Table) *Group {
	rows := make([]repertoire.Row, len(t.Rows))
	copy(rows, t.Rows)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })

	g := &Group{byKey: make(map[repertoire.Key]Entry, len(rows))}
	for i, r := range rows {
		g.byKey[r.Key()] = Entry{Row: r, Rank: i + 1}
	}
	return g
}

// Size reports the number of distinct keys in the group.
func (g *Group) Size() int { return len(g.byKey) }

// Lookup returns the group's entry for a key, if present.
func (g *Group) Lookup(k repertoire.Key) (Entry, bool) {
	e, ok := g.byKey[k]
	return e, ok
}

// Comparison is one output record for a clonotype key. For a group the key
// is absent from, ID, count, and rank are all 0 by convention; RankDiff is
// computed unconditionally and only meaningful when both ranks are nonzero.
type Comparison struct {
	IDA, IDB       int
	Presence       string
	Fields         []string // identity field values, from group A when present
	CountA, CountB int
	BothSingletons bool // both counts exactly 1
	RankA, RankB   int
	RankDiff       int // RankB - RankA
}

// Reconcile computes the union of keys across both groups and derives the
// per-key metrics. Iteration over the union is unordered; no output ordering
// is guaranteed.
func Reconcile(a, b *Group) []Comparison {
	union := make(map[repertoire.Key]struct{}, len(a.byKey)+len(b.byKey))
	for k := range a.byKey {
		union[k] = struct{}{}
	}
	for k := range b.byKey {
		union[k] = struct{}{}
	}

	out := make([]Comparison, 0, len(union))
	for k := range union {
		ea, inA := a.byKey[k]
		eb, inB := b.byKey[k]

		c := Comparison{Presence: PresenceUnique}
		if inA && inB {
			c.Presence = PresenceCommon
		}
		if inA {
			c.IDA, c.CountA, c.RankA = ea.Row.ID, ea.Row.Count, ea.Rank
			c.Fields = ea.Row.Fields
		}
		if inB {
			c.IDB, c.CountB, c.RankB = eb.Row.ID, eb.Row.Count, eb.Rank
			if !inA {
				c.Fields = eb.Row.Fields
			}
		}
		c.RankDiff = c.RankB - c.RankA
		c.BothSingletons = c.CountA == 1 && c.CountB == 1
		out = append(out, c)
	}
	return out
}
