// Package report lays comparison results out in the fixed column order the
// downstream analysis expects.
package report

import (
	"fmt"
	"strconv"

	"github.com/msymeonides/TCRBuilder/internal/compare"
	"github.com/msymeonides/TCRBuilder/internal/tabular"
)

// Columns returns the output header for a group pair:
// {a} ID, {b} ID, presence, <identity columns>, {a} count, {b} count,
// count=1 in both, {a} rank, {b} rank, rank diff.
func Columns(groupA, groupB string, identityColumns []string) []string {
	cols := []string{groupA + " ID", groupB + " ID", "presence"}
	cols = append(cols, identityColumns...)
	cols = append(cols,
		groupA+" count", groupB+" count", "count=1 in both",
		groupA+" rank", groupB+" rank", "rank diff")
	return cols
}

// Build projects comparisons into a table in the fixed column order. Row
// order follows the input slice; no sorting or deduplication is applied.
func Build(groupA, groupB string, identityColumns []string, comps []compare.Comparison) *tabular.Table {
	t := tabular.New(Columns(groupA, groupB, identityColumns))
	for _, c := range comps {
		row := make([]string, 0, len(t.Header))
		row = append(row, strconv.Itoa(c.IDA), strconv.Itoa(c.IDB), c.Presence)
		row = append(row, c.Fields...)
		row = append(row,
			strconv.Itoa(c.CountA), strconv.Itoa(c.CountB),
			strconv.FormatBool(c.BothSingletons),
			strconv.Itoa(c.RankA), strconv.Itoa(c.RankB),
			strconv.Itoa(c.RankDiff))
		t.Append(row)
	}
	return t
}

// OutputName is deterministic per specimen and sorted group pair.
func OutputName(specimen, groupA, groupB, ext string) string {
	return fmt.Sprintf("TCRCompare_%s-%s-%s%s", specimen, groupA, groupB, ext)
}
