package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spikesync/train"
)

// ErrInvalidTrainFile indicates a train file that parsed as YAML but does not
// describe a usable set of trains.
var ErrInvalidTrainFile = errors.New("cli: invalid train file")

// TrainFile is the on-disk layout of a train file.
//
//	trains:
//	  - name: a
//	    times: [0, 3, 6]
//	  - name: b
//	    times: [1, 4]
//
// Each train sets exactly one of times (time-stamp form) or marks (indicator
// form, 1 = spike); all trains of a file use the same form.
type TrainFile struct {
	Trains []TrainSpec `yaml:"trains" json:"trains"`
}

// TrainSpec is one named train.
type TrainSpec struct {
	Name  string    `yaml:"name" json:"name"`
	Times []float64 `yaml:"times,omitempty" json:"times,omitempty"`
	Marks []int     `yaml:"marks,omitempty" json:"marks,omitempty"`
}

// TrainSet is a loaded, validated train file.
type TrainSet struct {
	Names     []string
	Sequences []train.Sequence
	Discrete  bool // indicator form
}

// LoadError is a train file failure with its CLI error code.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadTrains reads and validates the train file at path.
func LoadTrains(path string) (*TrainSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeLoad, Message: fmt.Sprintf("read %q", path), Err: err}
	}

	var file TrainFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Code: ErrCodeLoad, Message: fmt.Sprintf("parse %q", path), Err: err}
	}

	set, err := file.toSet()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeInput, Message: fmt.Sprintf("invalid trains in %q", path), Err: err}
	}
	return set, nil
}

// toSet validates the declared trains and converts them to sequences.
func (f TrainFile) toSet() (*TrainSet, error) {
	if len(f.Trains) == 0 {
		return nil, fmt.Errorf("no trains: %w", ErrInvalidTrainFile)
	}

	set := &TrainSet{
		Names:     make([]string, len(f.Trains)),
		Sequences: make([]train.Sequence, len(f.Trains)),
	}
	seen := make(map[string]bool, len(f.Trains))
	for k, entry := range f.Trains {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("train%d", k)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate train name %q: %w", name, ErrInvalidTrainFile)
		}
		seen[name] = true
		set.Names[k] = name

		hasTimes, hasMarks := entry.Times != nil, entry.Marks != nil
		switch {
		case hasTimes == hasMarks:
			return nil, fmt.Errorf("train %q must set exactly one of times or marks: %w", name, ErrInvalidTrainFile)
		case k > 0 && hasMarks != set.Discrete:
			return nil, fmt.Errorf("train %q mixes times and marks in one file: %w", name, ErrInvalidTrainFile)
		}
		set.Discrete = hasMarks

		if hasMarks {
			set.Sequences[k] = train.Indicator(entry.Marks)
			continue
		}
		ts := train.Timestamps(entry.Times)
		if err := ts.Validate(); err != nil {
			return nil, fmt.Errorf("train %q: %w", name, err)
		}
		set.Sequences[k] = ts
	}

	return set, nil
}
