// Package config loads graph settings from YAML.
package config

import (
	"fmt"
	"io"
	"math"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-rrgraph/pkg/logging"
	"github.com/dd0wney/cluso-rrgraph/pkg/metrics"
	"github.com/dd0wney/cluso-rrgraph/pkg/rrgraph"
	"github.com/dd0wney/cluso-rrgraph/pkg/validation"
)

// Config is the on-disk graph configuration.
type Config struct {
	Reserve ReserveConfig `yaml:"reserve"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ReserveConfig holds capacity hints for bulk construction.
type ReserveConfig struct {
	Nodes    int `yaml:"nodes" validate:"gte=0"`
	Edges    int `yaml:"edges" validate:"gte=0"`
	Switches int `yaml:"switches" validate:"gte=0"`
	Segments int `yaml:"segments" validate:"gte=0"`
}

// LoggingConfig selects the level and destination of graph logs.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"loglevel"`
	Output string `yaml:"output" validate:"required,oneof=stdout stderr discard"`
}

// MetricsConfig enables the prometheus registry.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"omitempty,max=64"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Output: "stderr"},
		Metrics: MetricsConfig{Namespace: metrics.DefaultNamespace},
	}
}

// Load reads and validates a YAML file. Missing keys keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// maxHandles bounds reserve hints: graph handles are int32.
const maxHandles = math.MaxInt32

var metricPrefix = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate checks struct tags and cross-field rules, reporting every problem.
func (c Config) Validate() error {
	return validation.NewConfigValidator("Config").
		Struct(c).
		MaxInt("Reserve.Nodes", c.Reserve.Nodes, maxHandles).
		MaxInt("Reserve.Edges", c.Reserve.Edges, maxHandles).
		When(c.Metrics.Enabled, func(cv *validation.ConfigValidator) {
			cv.Required("Metrics.Namespace", c.Metrics.Namespace)
		}).
		When(c.Metrics.Namespace != "", func(cv *validation.ConfigValidator) {
			cv.Pattern("Metrics.Namespace", c.Metrics.Namespace, metricPrefix, "a valid metric name prefix")
		}).
		Validate()
}

// Options builds graph options. Logs go to out when it is non-nil,
// otherwise to the configured stream.
func (c Config) Options(out io.Writer) rrgraph.Options {
	opts := rrgraph.Options{
		ReserveNodes:    c.Reserve.Nodes,
		ReserveEdges:    c.Reserve.Edges,
		ReserveSwitches: c.Reserve.Switches,
		ReserveSegments: c.Reserve.Segments,
	}

	level, _ := logging.ParseLevel(c.Logging.Level)
	switch {
	case c.Logging.Output == "discard":
		opts.Logger = logging.NewNopLogger()
	case out != nil:
		opts.Logger = logging.NewJSONLogger(out, level)
	case c.Logging.Output == "stdout":
		opts.Logger = logging.NewJSONLogger(os.Stdout, level)
	default:
		opts.Logger = logging.NewStderrLogger(level)
	}

	if c.Metrics.Enabled {
		opts.Metrics = metrics.NewRegistryWithNamespace(c.Metrics.Namespace)
	}
	return opts
}
