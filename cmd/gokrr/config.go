package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/maxjr82/gokrr/krr"
	"github.com/maxjr82/gokrr/pkg/errors"
)

// JobConfig is the YAML description of a fit job. Every field has a flag
// counterpart; an explicitly set flag wins over the file value.
type JobConfig struct {
	Kernel string  `yaml:"kernel"`
	Lambda float64 `yaml:"lambda"`
	Sigma  float64 `yaml:"sigma"`

	XFile    string `yaml:"x"`
	YFile    string `yaml:"y"`
	TrainIdx string `yaml:"train_idx"`
	TestIdx  string `yaml:"test_idx"`

	PredictFile string `yaml:"predict"`
	Grid        string `yaml:"grid"`

	Standardize bool   `yaml:"standardize"`
	Out         string `yaml:"out"`
	Plot        string `yaml:"plot"`
}

// DefaultJobConfig returns a config with the library's hyperparameter
// defaults and the Gaussian kernel.
func DefaultJobConfig() JobConfig {
	return JobConfig{
		Kernel: "Gaussian",
		Lambda: krr.DefaultLambda,
		Sigma:  krr.DefaultSigma,
	}
}

// LoadJobConfig reads a YAML job file. Unknown keys are rejected so that
// typos surface instead of silently using defaults.
func LoadJobConfig(path string) (JobConfig, error) {
	cfg := DefaultJobConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Validate checks that the config describes a runnable job.
func (c JobConfig) Validate() error {
	if c.XFile == "" || c.YFile == "" {
		return errors.New("both --x and --y (or x/y in the config file) are required")
	}
	if c.PredictFile != "" && c.Grid != "" {
		return errors.New("--predict and --grid are mutually exclusive")
	}
	if c.TestIdx != "" && c.TrainIdx == "" {
		return errors.New("--test-idx requires --train-idx")
	}
	return nil
}

// parseGrid parses a "start:stop:n" grid specification.
func parseGrid(spec string) (start, stop float64, n int, err error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return 0, 0, 0, errors.Newf("invalid grid %q, want start:stop:n", spec)
	}

	start, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, 0, errors.Newf("invalid grid start %q", parts[0])
	}
	stop, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, 0, errors.Newf("invalid grid stop %q", parts[1])
	}
	n, err = strconv.Atoi(parts[2])
	if err != nil || n < 2 {
		return 0, 0, 0, errors.Newf("invalid grid point count %q", parts[2])
	}
	return start, stop, n, nil
}

func (c JobConfig) String() string {
	return fmt.Sprintf("kernel=%s lambda=%g sigma=%g", c.Kernel, c.Lambda, c.Sigma)
}
