package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spikesync/coincidence"
)

// SyncOutput is the payload of the sync command.
type SyncOutput struct {
	Trains   int            `json:"trains"`
	Profiles []NamedProfile `json:"profiles"`
	Merged   ProfileOutput  `json:"merged"`
	Value    float64        `json:"sync"`
	Distance float64        `json:"distance"`
}

// NamedProfile is one train's averaged coincidence profile.
type NamedProfile struct {
	Name string `json:"name"`
	ProfileOutput
}

// ProfileOutput is the wire form of a coincidence.Profile; display keeps
// the profile's String form for text output.
type ProfileOutput struct {
	Times   []float64 `json:"times"`
	Values  []float64 `json:"values"`
	display string
}

func newProfileOutput(p coincidence.Profile) ProfileOutput {
	return ProfileOutput{Times: p.Times(), Values: p.Values(), display: p.String()}
}

// String renders the text form of the sync result.
func (o SyncOutput) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "trains: %d\n", o.Trains)
	for _, p := range o.Profiles {
		fmt.Fprintf(&sb, "profile %s: %s\n", p.Name, p.display)
	}
	fmt.Fprintf(&sb, "merged: %s\n", o.Merged.display)
	fmt.Fprintf(&sb, "sync: %.4f\n", o.Value)
	fmt.Fprintf(&sb, "distance: %.4f\n", o.Distance)
	return sb.String()
}

// NewSyncCommand creates the sync command.
func NewSyncCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &computeFlags{}

	cmd := &cobra.Command{
		Use:   "sync <train-file>",
		Short: "Compute the SYNC value of a set of spike trains",
		Long: `Compute per-train coincidence profiles, merge them and report the
SYNC value and SYNC distance of all trains in the file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(rootOpts, flags, args[0], cmd)
		},
	}
	flags.bind(cmd)

	return cmd
}

func runSync(opts *RootOptions, flags *computeFlags, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := newLogger(opts, cmd.ErrOrStderr())

	set, coOpts, err := loadForCompute(formatter, path, flags)
	if err != nil {
		return err
	}
	logger.Debug("trains loaded", "path", path, "count", len(set.Sequences), "indicator", set.Discrete)

	res, err := coincidence.Synchronization(set.Sequences, coOpts...)
	if err != nil {
		return computeFailure(formatter, err)
	}
	logger.Debug("synchronization computed", "workers", flags.Workers, "sync", res.Value)

	out := SyncOutput{
		Trains:   len(set.Sequences),
		Profiles: make([]NamedProfile, len(res.Profiles)),
		Merged:   newProfileOutput(res.Merged),
		Value:    res.Value,
		Distance: res.Distance,
	}
	for k, p := range res.Profiles {
		out.Profiles[k] = NamedProfile{Name: set.Names[k], ProfileOutput: newProfileOutput(p)}
	}

	if err := formatter.Success(out); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}
