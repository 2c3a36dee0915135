package cli

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spikesync/builder"
	"github.com/katalvlaran/spikesync/train"
)

// GenerateOptions holds the flags of the generate command.
type GenerateOptions struct {
	Trains   int
	Duration float64
	Rate     float64
	Jitter   float64
	Dropout  float64
	Seed     int64
	Bin      float64 // >0 emits indicator trains with this bin width
	Output   string  // empty writes to stdout
}

// generatedFile mirrors TrainFile; Times is a pointer so an empty train
// survives the round trip as "times: []".
type generatedFile struct {
	Trains []generatedTrain `yaml:"trains" json:"trains"`
}

type generatedTrain struct {
	Name  string     `yaml:"name" json:"name"`
	Times *[]float64 `yaml:"times,flow,omitempty" json:"times,omitempty"`
	Marks []int      `yaml:"marks,flow,omitempty" json:"marks,omitempty"`
}

// String renders the file as YAML for text output.
func (g generatedFile) String() string {
	data, err := yaml.Marshal(g)
	if err != nil {
		return fmt.Sprintf("# marshal error: %v\n", err)
	}
	return string(data)
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic train file",
		Long: `Generate a Poisson reference train plus jittered, thinned copies of it
and write them as a train file readable by sync and matrix.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Trains, "trains", "n", 3, "number of trains (reference included)")
	cmd.Flags().Float64VarP(&opts.Duration, "duration", "d", 10, "duration of the recording")
	cmd.Flags().Float64VarP(&opts.Rate, "rate", "r", builder.DefaultRate, "reference spike rate per time unit")
	cmd.Flags().Float64Var(&opts.Jitter, "jitter", 0.05, "Gaussian jitter sigma of the copies")
	cmd.Flags().Float64Var(&opts.Dropout, "dropout", builder.DefaultDropout, "probability of deleting a spike in a copy")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&opts.Bin, "bin", 0, "emit indicator trains with this bin width (0 = time stamps)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// validate rejects flag values the builder options would panic on.
func (o *GenerateOptions) validate() error {
	switch {
	case o.Trains < 1:
		return fmt.Errorf("--trains must be >= 1, got %d", o.Trains)
	case !(o.Rate > 0) || math.IsInf(o.Rate, 0):
		return fmt.Errorf("--rate must be > 0, got %g", o.Rate)
	case !(o.Jitter >= 0) || math.IsInf(o.Jitter, 0):
		return fmt.Errorf("--jitter must be >= 0, got %g", o.Jitter)
	case !(o.Bin >= 0) || math.IsInf(o.Bin, 0):
		return fmt.Errorf("--bin must be >= 0, got %g", o.Bin)
	}
	return nil
}

// build produces the trains described by o.
func (o *GenerateOptions) build() (generatedFile, error) {
	ref, err := builder.BuildPoisson(o.Duration, o.Seed, builder.WithRate(o.Rate))
	if err != nil {
		return generatedFile{}, err
	}

	trains := make([]train.Timestamps, o.Trains)
	trains[0] = ref
	for k := 1; k < o.Trains; k++ {
		trains[k], err = builder.BuildJittered(ref, o.Seed+int64(k),
			builder.WithJitter(o.Jitter), builder.WithDropout(o.Dropout))
		if err != nil {
			return generatedFile{}, err
		}
	}

	out := generatedFile{Trains: make([]generatedTrain, o.Trains)}
	length := 0
	if o.Bin > 0 {
		length = int(math.Ceil(o.Duration / o.Bin))
	}
	for k, ts := range trains {
		gt := generatedTrain{Name: fmt.Sprintf("train%d", k)}
		if o.Bin > 0 {
			if gt.Marks, err = builder.Rasterize(clampStart(ts), o.Bin, length); err != nil {
				return generatedFile{}, err
			}
		} else {
			times := []float64(ts)
			if times == nil {
				times = []float64{}
			}
			gt.Times = &times
		}
		out.Trains[k] = gt
	}
	return out, nil
}

// clampStart drops spikes jittered below 0; they cannot be binned.
func clampStart(ts train.Timestamps) train.Timestamps {
	k := 0
	for k < len(ts) && ts[k] < 0 {
		k++
	}
	return ts[k:]
}

func runGenerate(rootOpts *RootOptions, opts *GenerateOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)
	logger := newLogger(rootOpts, cmd.ErrOrStderr())

	if err := opts.validate(); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeInput, "invalid flags", err)
	}

	file, err := opts.build()
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeInput, "generate trains", err)
	}
	logger.Debug("trains generated", "count", len(file.Trains), "seed", opts.Seed, "indicator", opts.Bin > 0)

	if opts.Output == "" {
		if err := formatter.Success(file); err != nil {
			return WrapExitError(ExitCommandError, "write output", err)
		}
		return nil
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return formatter.fail(ExitFailure, ErrCodeWrite, "encode train file", err)
	}
	if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeWrite, fmt.Sprintf("write %q", opts.Output), err)
	}
	logger.Info("train file written", "path", opts.Output, "trains", len(file.Trains))
	return nil
}
