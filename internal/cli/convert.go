package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsix/mmio"
	"github.com/katalvlaran/sparsix/sparse"
)

// routeFn sends a coordinate matrix through one storage format and back,
// applying the format-specific knobs from cfg.
type routeFn func(src *sparse.COO[int, float64], cfg Config) (*sparse.COO[int, float64], error)

// routes is the format routing table. Every entry runs the real kernels
// for its format, so a convert invocation is an end-to-end exercise of the
// conversion pipeline, not a file copy.
var routes = map[string]routeFn{
	"coo":   routeCOO,
	"csr":   routeCSR,
	"dia":   routeDIA,
	"ell":   routeELL,
	"hyb":   routeHYB,
	"dense": routeDense,
}

func routeCOO(src *sparse.COO[int, float64], _ Config) (*sparse.COO[int, float64], error) {
	var out sparse.COO[int, float64]
	if err := src.ToCOO(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func routeCSR(src *sparse.COO[int, float64], _ Config) (*sparse.COO[int, float64], error) {
	var csr sparse.CSR[int, float64]
	if err := sparse.COOToCSR(&csr, src); err != nil {
		return nil, err
	}
	var out sparse.COO[int, float64]
	if err := sparse.CSRToCOO(&out, &csr); err != nil {
		return nil, err
	}
	return &out, nil
}

func routeDIA(src *sparse.COO[int, float64], cfg Config) (*sparse.COO[int, float64], error) {
	var csr sparse.CSR[int, float64]
	if err := sparse.COOToCSR(&csr, src); err != nil {
		return nil, err
	}
	var dia sparse.DIA[int, float64]
	if err := sparse.CSRToDIA(&dia, &csr, sparse.WithAlignment(cfg.Alignment)); err != nil {
		return nil, err
	}
	var out sparse.COO[int, float64]
	if err := dia.ToCOO(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func routeELL(src *sparse.COO[int, float64], cfg Config) (*sparse.COO[int, float64], error) {
	var csr sparse.CSR[int, float64]
	if err := sparse.COOToCSR(&csr, src); err != nil {
		return nil, err
	}
	var ell sparse.ELL[int, float64]
	if err := sparse.CSRToELL(&ell, &csr, ellWidth(&csr, cfg.Slots)); err != nil {
		return nil, err
	}
	var out sparse.COO[int, float64]
	if err := ell.ToCOO(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func routeHYB(src *sparse.COO[int, float64], cfg Config) (*sparse.COO[int, float64], error) {
	var csr sparse.CSR[int, float64]
	if err := sparse.COOToCSR(&csr, src); err != nil {
		return nil, err
	}
	var hyb sparse.HYB[int, float64]
	if err := sparse.CSRToHYB(&hyb, &csr, hybWidth(&csr, cfg.Slots)); err != nil {
		return nil, err
	}
	var out sparse.COO[int, float64]
	if err := hyb.ToCOO(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// routeDense materializes the matrix, which sums duplicate coordinates
// into single cells; the output is the pruned nonzero set.
func routeDense(src *sparse.COO[int, float64], _ Config) (*sparse.COO[int, float64], error) {
	var dense sparse.Dense[float64]
	if err := sparse.COOToDense(&dense, src); err != nil {
		return nil, err
	}
	var out sparse.COO[int, float64]
	if err := sparse.DenseToCOO(&out, &dense); err != nil {
		return nil, err
	}
	return &out, nil
}

// ellWidth resolves the ELL row capacity: an explicit slots value wins,
// zero derives the widest row so no entry is dropped.
func ellWidth(csr *sparse.CSR[int, float64], slots int) int {
	if slots > 0 {
		return slots
	}
	widest := 0
	for i := 0; i < csr.Rows(); i++ {
		widest = max(widest, int(csr.RowOffsets[i+1]-csr.RowOffsets[i]))
	}
	return widest
}

// hybWidth resolves the HYB split: an explicit slots value wins, zero
// derives the mean row occupancy rounded up so typical rows stay regular.
func hybWidth(csr *sparse.CSR[int, float64], slots int) int {
	if slots > 0 {
		return slots
	}
	if csr.Rows() == 0 {
		return 0
	}
	return (csr.NumEntries() + csr.Rows() - 1) / csr.Rows()
}

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	format      string // intermediate storage format
	alignment   int    // DIA/ELL stride rounding unit
	slots       int    // ELL/HYB per-row capacity; 0 derives it
	denseOutput bool   // emit array form instead of coordinate
	output      string // output file path (stdout if empty)
}

// newConvertCmd creates the convert command.
//
// Flags left at their defaults inherit the values from --config; explicit
// flags win over the file.
func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert <input.mtx>",
		Short: "Route a Matrix Market file through a storage format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if cmd.Flags().Changed("format") {
				cfg.Format = opts.format
			}
			if cmd.Flags().Changed("alignment") {
				cfg.Alignment = opts.alignment
			}
			if cmd.Flags().Changed("slots") {
				cfg.Slots = opts.slots
			}
			if cmd.Flags().Changed("dense-output") {
				cfg.DenseOutput = opts.denseOutput
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			out := cmd.OutOrStdout()
			if opts.output != "" {
				f, err := os.Create(opts.output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			return runConvert(cmd, in, out, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "csr", "storage format: coo, csr, dia, ell, hyb, dense")
	cmd.Flags().IntVar(&opts.alignment, "alignment", sparse.DefaultAlignment, "stride rounding unit for dia/ell/hyb")
	cmd.Flags().IntVar(&opts.slots, "slots", 0, "per-row capacity for ell/hyb (0 = derive)")
	cmd.Flags().BoolVar(&opts.denseOutput, "dense-output", false, "write array form instead of coordinate")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// runConvert is the flag-free core of the convert command, separated so
// tests can drive it with in-memory streams.
func runConvert(cmd *cobra.Command, in io.Reader, out io.Writer, cfg Config) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	src, err := mmio.Read(in)
	if err != nil {
		return err
	}
	logger.Debugf("read %dx%d matrix, %d entries", src.Rows(), src.Cols(), src.NumEntries())

	route, ok := routes[cfg.Format]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownFormat, cfg.Format)
	}
	result, err := route(src, cfg)
	if err != nil {
		return fmt.Errorf("route through %s: %w", cfg.Format, err)
	}

	if cfg.DenseOutput {
		var dense sparse.Dense[float64]
		if err := sparse.COOToDense(&dense, result); err != nil {
			return err
		}
		if err := mmio.WriteDense(out, &dense); err != nil {
			return err
		}
	} else if err := mmio.WriteCOO(out, result); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Converted via %s: %d entries out", cfg.Format, result.NumEntries()))
	return nil
}
