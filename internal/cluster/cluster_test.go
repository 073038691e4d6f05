package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msymeonides/TCRBuilder/internal/tabular"
)

func cellTable(rows ...[]string) *tabular.Table {
	t := tabular.New([]string{"Clonotype_ID", "Cluster"})
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

func TestMembershipPercentages(t *testing.T) {
	// Cluster c1 has 4 cells, c2 has 2.
	ann, err := FromTable(cellTable(
		[]string{"7", "c1"},
		[]string{"7", "c1"},
		[]string{"8", "c1"},
		[]string{"9", "c1"},
		[]string{"7", "c2"},
		[]string{"8", "c2"},
	), "cells.csv")
	require.NoError(t, err)

	ms := ann.Memberships("7")
	require.Len(t, ms, 2)
	// 7 holds 50% of both clusters; tie breaks on cluster label.
	assert.Equal(t, "c1", ms[0].Cluster)
	assert.InDelta(t, 50.0, ms[0].Percent, 1e-9)
	assert.Equal(t, "c2", ms[1].Cluster)
	assert.InDelta(t, 50.0, ms[1].Percent, 1e-9)

	ms = ann.Memberships("8")
	require.Len(t, ms, 2)
	// 50% of c2 beats 25% of c1.
	assert.Equal(t, "c2", ms[0].Cluster)
	assert.InDelta(t, 50.0, ms[0].Percent, 1e-9)
	assert.Equal(t, "c1", ms[1].Cluster)
	assert.InDelta(t, 25.0, ms[1].Percent, 1e-9)

	assert.Empty(t, ann.Memberships("unknown"))
}

func TestMembershipsCappedAtThree(t *testing.T) {
	rows := [][]string{}
	for _, cl := range []string{"c1", "c2", "c3", "c4", "c5"} {
		rows = append(rows, []string{"1", cl})
	}
	ann, err := FromTable(cellTable(rows...), "cells.csv")
	require.NoError(t, err)
	assert.Len(t, ann.Memberships("1"), MaxMemberships)
}

func TestAnnotate(t *testing.T) {
	ann, err := FromTable(cellTable(
		[]string{"1", "c1"},
		[]string{"1", "c1"},
		[]string{"2", "c1"},
		[]string{"2", "c2"},
	), "cells.csv")
	require.NoError(t, err)

	clonotypes := tabular.New([]string{"Clonotype_ID", "Count"})
	clonotypes.Append([]string{"1", "10"})
	clonotypes.Append([]string{"2", "4"})
	clonotypes.Append([]string{"3", "1"}) // never seen in a cluster

	out, err := Annotate(clonotypes, "clono.csv", ann)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())

	assert.Equal(t, []string{
		"Clonotype_ID", "Count",
		"cluster_1", "pct_1", "cluster_2", "pct_2", "cluster_3", "pct_3",
	}, out.Header)

	// Clonotype 1: 2 of 3 c1 cells.
	assert.Equal(t, []string{"1", "10", "c1", "66.67", "", "", "", ""}, out.Rows[0])
	// Clonotype 2: all of c2, a third of c1.
	assert.Equal(t, []string{"2", "4", "c2", "100.00", "c1", "33.33", "", ""}, out.Rows[1])
	// Unseen clonotype keeps empty membership cells.
	assert.Equal(t, []string{"3", "1", "", "", "", "", "", ""}, out.Rows[2])
}

func TestFromTableMissingColumns(t *testing.T) {
	bad := tabular.New([]string{"Clonotype_ID"})
	_, err := FromTable(bad, "cells.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cluster")
}
