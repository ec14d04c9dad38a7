package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvConfigFile  = "VINCENTY_CONFIG"
	EnvPointsDir   = "VINCENTY_POINTS_DIR"
	EnvOutputName  = "VINCENTY_OUTPUT_NAME"
	EnvOutput      = "VINCENTY_OUTPUT"
	EnvWorkers     = "VINCENTY_WORKERS"
	EnvLogLevel    = "VINCENTY_LOG_LEVEL"
	EnvLogFormat   = "VINCENTY_LOG_FORMAT"
	EnvMetricsFile = "VINCENTY_METRICS_FILE"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of the command line tool.
type Config struct {
	// PointsDir is the directory relative CSV paths are resolved against.
	PointsDir string `yaml:"points_dir"`
	// OutputName is the file name of the interpolation output, written
	// next to the input file.
	OutputName string `yaml:"output_name"`
	// Output selects the summary format: text or json.
	Output string `yaml:"output"`
	// Workers bounds the concurrent direct solves during interpolation.
	Workers     int    `yaml:"workers"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PointsDir:  "examples",
		OutputName: "interpolated_points.csv",
		Output:     "text",
		Workers:    1,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path, local .env files and the process environment, in that order.
func Load(path string, logger *logrus.Logger) (Config, error) {
	cfg := Default()

	LoadEnv(logger)

	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfigFile))
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.FromEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %q: %w", path, err)
	}
	return nil
}

// FromEnv overrides fields with the VINCENTY_* variables that are set.
func (c *Config) FromEnv() {
	c.PointsDir = GetEnv(EnvPointsDir, c.PointsDir)
	c.OutputName = GetEnv(EnvOutputName, c.OutputName)
	c.Output = GetEnv(EnvOutput, c.Output)
	c.Workers = GetEnvInt(EnvWorkers, c.Workers)
	c.LogLevel = GetEnv(EnvLogLevel, c.LogLevel)
	c.LogFormat = GetEnv(EnvLogFormat, c.LogFormat)
	c.MetricsFile = GetEnv(EnvMetricsFile, c.MetricsFile)
}

// Validate reports settings the tool cannot run with.
func (c Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("%w: output must be text or json, got %q", ErrInvalidConfig, c.Output)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if strings.TrimSpace(c.OutputName) == "" {
		return fmt.Errorf("%w: output_name must not be empty", ErrInvalidConfig)
	}
	return nil
}
