package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsix/mmio"
	"github.com/katalvlaran/sparsix/sparse"
)

// newInfoCmd creates the info command, which reports the sparsity profile
// of a Matrix Market file: shape, entry count, row-occupancy statistics,
// distinct diagonal count, and the hybrid split for the configured slot
// capacity.
func newInfoCmd() *cobra.Command {
	var slots int

	cmd := &cobra.Command{
		Use:   "info <input.mtx>",
		Short: "Report the sparsity profile of a Matrix Market file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if cmd.Flags().Changed("slots") {
				cfg.Slots = slots
			}

			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			return runInfo(cmd, in, cfg)
		},
	}

	cmd.Flags().IntVar(&slots, "slots", 0, "per-row capacity for the hybrid split (0 = derive)")

	return cmd
}

// runInfo is the flag-free core of the info command.
func runInfo(cmd *cobra.Command, in io.Reader, cfg Config) error {
	coo, err := mmio.Read(in)
	if err != nil {
		return err
	}

	var csr sparse.CSR[int, float64]
	if err := sparse.COOToCSR(&csr, coo); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "shape: %d x %d\n", csr.Rows(), csr.Cols())
	fmt.Fprintf(out, "entries: %d\n", csr.NumEntries())

	if csr.Rows() > 0 {
		minRow, maxRow := csr.NumEntries(), 0
		for i := 0; i < csr.Rows(); i++ {
			n := int(csr.RowOffsets[i+1] - csr.RowOffsets[i])
			minRow = min(minRow, n)
			maxRow = max(maxRow, n)
		}
		mean := float64(csr.NumEntries()) / float64(csr.Rows())
		fmt.Fprintf(out, "row occupancy: min=%d max=%d mean=%.2f\n", minRow, maxRow, mean)
	}

	fmt.Fprintf(out, "distinct diagonals: %d\n", countDiagonals(coo))

	width := hybWidth(&csr, cfg.Slots)
	var hyb sparse.HYB[int, float64]
	if err := sparse.CSRToHYB(&hyb, &csr, width); err != nil {
		return err
	}
	fmt.Fprintf(out, "hybrid split (slots=%d): ell=%d coo=%d\n",
		width, hyb.ELL.NumEntries(), hyb.COO.NumEntries())

	return nil
}

// countDiagonals returns the number of distinct col-row offsets occupied
// by the matrix, i.e. the diagonal count a DIA conversion would store.
func countDiagonals(m *sparse.COO[int, float64]) int {
	seen := make(map[int]struct{}, m.NumEntries())
	for n := 0; n < m.NumEntries(); n++ {
		seen[m.ColIndices[n]-m.RowIndices[n]] = struct{}{}
	}
	return len(seen)
}
