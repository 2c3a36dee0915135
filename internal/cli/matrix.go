package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spikesync/coincidence"
)

// MatrixOutput is the payload of the matrix command.
type MatrixOutput struct {
	Names  []string    `json:"names"`
	Values [][]float64 `json:"values"`
	Mean   float64     `json:"mean"`
}

// String renders one row per train, prefixed by its name, then the mean.
func (o MatrixOutput) String() string {
	width := 0
	for _, n := range o.Names {
		if len(n) > width {
			width = len(n)
		}
	}

	var sb strings.Builder
	for i, row := range o.Values {
		fmt.Fprintf(&sb, "%-*s", width, o.Names[i])
		for _, v := range row {
			fmt.Fprintf(&sb, " %.4f", v)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "mean: %.4f\n", o.Mean)
	return sb.String()
}

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &computeFlags{}

	cmd := &cobra.Command{
		Use:   "matrix <train-file>",
		Short: "Compute the pairwise SYNC matrix of a set of spike trains",
		Long: `Compute the SYNC value of every pair of trains in the file and
print the symmetric matrix together with its off-diagonal mean.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(rootOpts, flags, args[0], cmd)
		},
	}
	flags.bind(cmd)

	return cmd
}

func runMatrix(opts *RootOptions, flags *computeFlags, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := newLogger(opts, cmd.ErrOrStderr())

	set, coOpts, err := loadForCompute(formatter, path, flags)
	if err != nil {
		return err
	}
	logger.Debug("trains loaded", "path", path, "count", len(set.Sequences), "indicator", set.Discrete)

	m, err := coincidence.Matrix(set.Sequences, coOpts...)
	if err != nil {
		return computeFailure(formatter, err)
	}

	out := MatrixOutput{
		Names:  set.Names,
		Values: make([][]float64, m.N()),
		Mean:   m.Mean(),
	}
	for i := range out.Values {
		// i < N, Row cannot fail
		out.Values[i], _ = m.Row(i)
	}
	logger.Debug("matrix computed", "size", m.N(), "mean", out.Mean)

	if err := formatter.Success(out); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}
