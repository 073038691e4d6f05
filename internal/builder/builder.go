// Package builder converts clonotype tables into thimble input, runs the
// external assembly tool, and emits the final construct table with HiFi
// homology arms.
package builder

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/msymeonides/TCRBuilder/internal/repertoire"
	"github.com/msymeonides/TCRBuilder/internal/tabular"
)

// thimbleColumns is the fixed input layout thimble expects. Leaders, linker,
// and flanking sequences are left empty; stitchr fills in its defaults.
var thimbleColumns = []string{
	"TCR_name", "TRAV", "TRAJ", "TRA_CDR3",
	"TRBV", "TRBJ", "TRB_CDR3",
	"TRAC", "TRBC",
	"TRA_leader", "TRB_leader",
	"Linker", "Link_order",
	"TRA_5_prime_seq", "TRA_3_prime_seq",
	"TRB_5_prime_seq", "TRB_3_prime_seq",
}

// Convert projects validated clonotype rows into the thimble input layout.
// The clonotype table's identity columns must be the standard six
// (v_gene_a, j_gene_a, cdr3_a, cdr3_b, v_gene_b, j_gene_b) in that order.
func Convert(t *repertoire.Table, trbc string) *tabular.Table {
	out := tabular.New(thimbleColumns)
	for _, r := range t.Rows {
		out.Append([]string{
			fmt.Sprint(r.ID),
			r.Fields[0], r.Fields[1], r.Fields[2], // TRAV TRAJ TRA_CDR3
			r.Fields[4], r.Fields[5], r.Fields[3], // TRBV TRBJ TRB_CDR3
			"TRAC", trbc,
			"", "", "", "", "", "", "", "",
		})
	}
	return out
}

// Runner invokes the external thimble executable. A missing binary or a
// non-zero exit is reported to the caller; there is no retry.
type Runner struct {
	// Thimble is the executable name or path; "thimble" by default.
	Thimble string
	Species string
}

// Check verifies the executable can be found at all, so the failure mode is
// a clear install hint rather than a mid-run error.
func (r Runner) Check() error {
	bin := r.bin()
	if _, err := exec.LookPath(bin); err != nil {
		return fmt.Errorf("%s not found: install stitchr and IMGTgeneDL (pip install stitchr IMGTgeneDL): %w", bin, err)
	}
	return nil
}

// Run executes thimble over a prepared input TSV.
func (r Runner) Run(ctx context.Context, inputTSV, outputTSV string) error {
	cmd := exec.CommandContext(ctx, r.bin(), "-i", inputTSV, "-o", outputTSV, "-s", r.Species)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("thimble run failed: %w: %s", err, out)
	}
	return nil
}

func (r Runner) bin() string {
	if r.Thimble != "" {
		return r.Thimble
	}
	return "thimble"
}

// Assembly holds the homology arms concatenated around each assembled chain.
type Assembly struct {
	Basename string // prefixes every construct name
	Arm5     string
	Arm3     string
}

// Finalize reads thimble's output table and produces the construct table:
// Name, TRA_construct, TRB_construct. A chain thimble could not assemble
// stays empty rather than getting bare arms.
func (a Assembly) Finalize(thimbleOut *tabular.Table) *tabular.Table {
	out := tabular.New([]string{"Name", "TRA_construct", "TRB_construct"})
	for i := 0; i < thimbleOut.Len(); i++ {
		name := fmt.Sprintf("%s_TCR%s", a.Basename, thimbleOut.Cell(i, "TCR_name"))
		out.Append([]string{
			name,
			a.flank(thimbleOut.Cell(i, "TRA_nt")),
			a.flank(thimbleOut.Cell(i, "TRB_nt")),
		})
	}
	return out
}

func (a Assembly) flank(nt string) string {
	if nt == "" {
		return ""
	}
	return a.Arm5 + nt + a.Arm3
}
