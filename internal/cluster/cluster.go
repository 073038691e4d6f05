// Package cluster annotates clonotypes with the cell clusters they were
// observed in and the share of each cluster's cells they represent.
package cluster

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/msymeonides/TCRBuilder/internal/tabular"
)

// Required columns of the cell-level assignment table.
const (
	ColClonotypeID = "Clonotype_ID"
	ColCluster     = "Cluster"
)

// MaxMemberships caps how many clusters are reported per clonotype. The
// memberships are a fixed-size ordered list, not parallel columns, so the
// cluster label and its percentage can never drift apart.
const MaxMemberships = 3

// Membership is one (cluster, percentage) observation for a clonotype.
type Membership struct {
	Cluster string
	Percent float64 // share of the cluster's cells carrying this clonotype
}

// Annotator tallies cell-to-cluster assignments.
type Annotator struct {
	clusterTotals map[string]int
	members       map[string]map[string]int // clonotype ID -> cluster -> cells
}

// FromTable tallies an assignment table with Clonotype_ID and Cluster
// columns, one row per cell. Rows with an empty clonotype or cluster are
// ignored.
func FromTable(t *tabular.Table, path string) (*Annotator, error) {
	if missing := t.Missing([]string{ColClonotypeID, ColCluster}); len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing required columns %v", path, missing)
	}
	a := &Annotator{
		clusterTotals: make(map[string]int),
		members:       make(map[string]map[string]int),
	}
	for i := 0; i < t.Len(); i++ {
		id := t.Cell(i, ColClonotypeID)
		cl := t.Cell(i, ColCluster)
		if id == "" || cl == "" {
			continue
		}
		a.clusterTotals[cl]++
		if a.members[id] == nil {
			a.members[id] = make(map[string]int)
		}
		a.members[id][cl]++
	}
	return a, nil
}

// Memberships returns up to MaxMemberships entries for a clonotype, highest
// percentage first, ties broken by cluster label ascending.
func (a *Annotator) Memberships(clonotypeID string) []Membership {
	byCluster := a.members[clonotypeID]
	if len(byCluster) == 0 {
		return nil
	}
	out := make([]Membership, 0, len(byCluster))
	for cl, n := range byCluster {
		out = append(out, Membership{
			Cluster: cl,
			Percent: 100 * float64(n) / float64(a.clusterTotals[cl]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].Cluster < out[j].Cluster
	})
	if len(out) > MaxMemberships {
		out = out[:MaxMemberships]
	}
	return out
}

// Annotate joins a clonotype table against the tallied memberships. The
// output keeps Clonotype_ID and Count and appends cluster_N/pct_N pairs;
// cells beyond a clonotype's cluster count stay empty.
func Annotate(clonotypes *tabular.Table, path string, a *Annotator) (*tabular.Table, error) {
	if missing := clonotypes.Missing([]string{ColClonotypeID}); len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing required columns %v", path, missing)
	}

	header := []string{ColClonotypeID, "Count"}
	for i := 1; i <= MaxMemberships; i++ {
		header = append(header, fmt.Sprintf("cluster_%d", i), fmt.Sprintf("pct_%d", i))
	}
	out := tabular.New(header)

	for i := 0; i < clonotypes.Len(); i++ {
		id := clonotypes.Cell(i, ColClonotypeID)
		row := []string{id, clonotypes.Cell(i, "Count")}
		ms := a.Memberships(id)
		for j := 0; j < MaxMemberships; j++ {
			if j < len(ms) {
				row = append(row, ms[j].Cluster, strconv.FormatFloat(ms[j].Percent, 'f', 2, 64))
			} else {
				row = append(row, "", "")
			}
		}
		out.Append(row)
	}
	return out, nil
}
