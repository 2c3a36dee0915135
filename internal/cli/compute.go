package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spikesync/coincidence"
)

// computeFlags are the coincidence options shared by sync and matrix.
type computeFlags struct {
	Workers       int
	EqualLength   bool
	RequireSpikes bool
}

// bind registers the flags on cmd.
func (c *computeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&c.Workers, "workers", "w", coincidence.DefaultWorkers, "goroutines used for pairwise detection")
	cmd.Flags().BoolVar(&c.EqualLength, "equal-length", false, "reject indicator trains of different lengths")
	cmd.Flags().BoolVar(&c.RequireSpikes, "require-spikes", false, "reject trains without spikes")
}

// options validates the flags and converts them into coincidence options.
func (c *computeFlags) options() ([]coincidence.Option, error) {
	if c.Workers < 1 {
		return nil, fmt.Errorf("--workers must be >= 1, got %d", c.Workers)
	}
	opts := []coincidence.Option{coincidence.WithWorkers(c.Workers)}
	if c.EqualLength {
		opts = append(opts, coincidence.WithEqualLength())
	}
	if c.RequireSpikes {
		opts = append(opts, coincidence.WithRequireSpikes())
	}
	return opts, nil
}

// loadForCompute loads the train file and resolves the coincidence options,
// reporting failures through f.
func loadForCompute(f *OutputFormatter, path string, flags *computeFlags) (*TrainSet, []coincidence.Option, error) {
	opts, err := flags.options()
	if err != nil {
		return nil, nil, f.fail(ExitCommandError, ErrCodeInput, "invalid flags", err)
	}

	set, err := LoadTrains(path)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			return nil, nil, f.fail(ExitCommandError, loadErr.Code, loadErr.Message, loadErr.Err)
		}
		return nil, nil, f.fail(ExitCommandError, ErrCodeLoad, "load trains", err)
	}
	return set, opts, nil
}

// computeFailure maps a coincidence error to an exit code: rejected input is
// a command error, anything else a computation failure.
func computeFailure(f *OutputFormatter, err error) error {
	switch {
	case errors.Is(err, coincidence.ErrInsufficientInput),
		errors.Is(err, coincidence.ErrShapeMismatch),
		errors.Is(err, coincidence.ErrEmptySequence):
		return f.fail(ExitCommandError, ErrCodeInput, "trains rejected", err)
	default:
		return f.fail(ExitFailure, ErrCodeCompute, "synchronization failed", err)
	}
}
