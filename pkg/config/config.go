// Package config loads entmon configuration from YAML with optional
// environment overrides.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vios-tools/entmon/pkg/devices"
	"github.com/vios-tools/entmon/pkg/entstat"
)

// Config is the full entmon configuration.
type Config struct {
	Collector CollectorConfig `yaml:"collector"`
	Commands  CommandsConfig  `yaml:"commands"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Log       LogConfig       `yaml:"log"`
}

// CollectorConfig tunes the sampling core.
type CollectorConfig struct {
	// ThresholdSeconds is the minimum interval between entstat invocations
	// per interface.
	ThresholdSeconds float64 `yaml:"threshold_seconds"`

	// SampleTimeoutSeconds bounds one entstat invocation; an interface
	// exceeding it is disabled permanently.
	SampleTimeoutSeconds float64 `yaml:"sample_timeout_seconds"`
}

// SampleTimeout returns the timeout as a duration.
func (c CollectorConfig) SampleTimeout() time.Duration {
	return time.Duration(c.SampleTimeoutSeconds * float64(time.Second))
}

// CommandsConfig points at the AIX diagnostic binaries.
type CommandsConfig struct {
	Entstat string `yaml:"entstat"`
	Lsdev   string `yaml:"lsdev"`
}

// MetricsConfig configures the scrape endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads the YAML file when path is non-empty, overlays ENTMON_*
// environment variables (including any .env file in the working directory),
// applies defaults and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, errors.Wrap(err, "parse config")
		}
	}

	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()
	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ENTMON_THRESHOLD_SECONDS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Collector.ThresholdSeconds = f
		}
	}
	if v := os.Getenv("ENTMON_SAMPLE_TIMEOUT_SECONDS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Collector.SampleTimeoutSeconds = f
		}
	}
	if v := os.Getenv("ENTMON_ENTSTAT"); v != "" {
		c.Commands.Entstat = v
	}
	if v := os.Getenv("ENTMON_LSDEV"); v != "" {
		c.Commands.Lsdev = v
	}
	if v := os.Getenv("ENTMON_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
	if v := os.Getenv("ENTMON_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) applyDefaults() {
	if c.Collector.ThresholdSeconds == 0 {
		c.Collector.ThresholdSeconds = 5.0
	}
	if c.Collector.SampleTimeoutSeconds == 0 {
		c.Collector.SampleTimeoutSeconds = 5.0
	}
	if c.Commands.Entstat == "" {
		c.Commands.Entstat = entstat.DefaultPath
	}
	if c.Commands.Lsdev == "" {
		c.Commands.Lsdev = devices.DefaultLsdevPath
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9118"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) validate() error {
	if c.Collector.ThresholdSeconds < 0 {
		return errors.New("collector.threshold_seconds must not be negative")
	}
	if c.Collector.SampleTimeoutSeconds < 0 {
		return errors.New("collector.sample_timeout_seconds must not be negative")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	return nil
}
