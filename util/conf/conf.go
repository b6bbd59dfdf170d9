package conf

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DEFAULT_ITERATIONS          = 5
	DEFAULT_FREQ_THRESHOLD      = 20
	DEFAULT_AMBIGUITY_THRESHOLD = 0.97
	DEFAULT_PRECISION           = 3
	DEFAULT_SEED                = 1
)

// Training holds the parameters of a tagger training run
type Training struct {
	Iterations         int     `yaml:"iterations"`
	FreqThreshold      int     `yaml:"frequency threshold"`
	AmbiguityThreshold float64 `yaml:"ambiguity threshold"`
	Precision          int     `yaml:"precision"`
	Seed               int64   `yaml:"seed"`
}

func Default() *Training {
	return &Training{
		Iterations:         DEFAULT_ITERATIONS,
		FreqThreshold:      DEFAULT_FREQ_THRESHOLD,
		AmbiguityThreshold: DEFAULT_AMBIGUITY_THRESHOLD,
		Precision:          DEFAULT_PRECISION,
		Seed:               DEFAULT_SEED,
	}
}

// Validate reports values that cannot drive a training run
func (t *Training) Validate() error {
	if t.Iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", t.Iterations)
	}
	if t.FreqThreshold < 1 {
		return fmt.Errorf("frequency threshold must be positive, got %d", t.FreqThreshold)
	}
	if t.AmbiguityThreshold <= 0 || t.AmbiguityThreshold > 1 {
		return fmt.Errorf("ambiguity threshold must be in (0,1], got %v", t.AmbiguityThreshold)
	}
	if t.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", t.Precision)
	}
	return nil
}

// Read overlays the YAML document on the defaults; keys missing from the
// document keep their default value.
func Read(reader io.Reader) (*Training, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	setup := Default()
	if err := yaml.Unmarshal(data, setup); err != nil {
		return nil, fmt.Errorf("parsing training configuration: %w", err)
	}
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	return setup, nil
}

func ReadFile(filename string) (*Training, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}
