// Package config loads footprint's YAML configuration.
//
// Values are resolved in order: built-in defaults, ~/.footprint/config.yaml
// (or $FOOTPRINT_HOME/config.yaml), an optional overlay file shallow-merged
// on top, then FOOTPRINT_* environment variables. CLI flags are applied last
// by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/footprint"
)

// Output formats accepted by the output.default_format key and --output flag.
const (
	OutputFormatTable  = "table"
	OutputFormatJSON   = "json"
	OutputFormatNDJSON = "ndjson"
)

// Defaults.
const (
	DefaultOutputFormat = OutputFormatTable
	DefaultChartWidth   = 40
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultServerAddr   = ":8080"
	DefaultReadTimeout  = 5 * time.Second
	configFileName      = "config.yaml"
	maxChartWidth       = 200
)

// Environment variables.
const (
	EnvHome         = "FOOTPRINT_HOME"
	EnvConfig       = "FOOTPRINT_CONFIG"
	EnvLogLevel     = "FOOTPRINT_LOG_LEVEL"
	EnvLogFormat    = "FOOTPRINT_LOG_FORMAT"
	EnvOutputFormat = "FOOTPRINT_OUTPUT_FORMAT"
	EnvPrecision    = "FOOTPRINT_PRECISION"
	EnvServerAddr   = "FOOTPRINT_SERVER_ADDR"
)

// Config is the full configuration file.
type Config struct {
	Output  OutputConfig              `yaml:"output" json:"output"`
	Logging LoggingConfig             `yaml:"logging" json:"logging"`
	Factors footprint.EmissionFactors `yaml:"factors" json:"factors"`
	Server  ServerConfig              `yaml:"server" json:"server"`

	configPath string
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	Precision     int    `yaml:"precision" json:"precision"`
	ChartWidth    int    `yaml:"chart_width" json:"chart_width"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// ServerConfig controls `footprint serve`.
type ServerConfig struct {
	Addr        string        `yaml:"addr" json:"addr"`
	ReadTimeout time.Duration `yaml:"read_timeout" json:"read_timeout"`
}

// Default returns a Config holding only built-in defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
			Precision:     footprint.DefaultPrecision,
			ChartWidth:    DefaultChartWidth,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Factors: footprint.DefaultFactors(),
		Server: ServerConfig{
			Addr:        DefaultServerAddr,
			ReadTimeout: DefaultReadTimeout,
		},
	}
}

// New returns defaults overlaid with the config file at ConfigPath, if it
// exists, and the environment. A malformed file is reported on stderr and
// ignored so a broken config never blocks `config init --force`.
func New() *Config {
	cfg := Default()
	if path, err := DefaultConfigPath(); err == nil {
		cfg.configPath = path
	}

	if path := cfg.configPath; path != "" {
		if err := cfg.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", err)
			cfg = Default()
			cfg.configPath = path
		}
	}

	cfg.ApplyEnv()
	return cfg
}

// Load reads path and applies every section it contains onto c.
// Emission factor tables are merged key by key onto the current factors.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	loaded := Default()
	loaded.Factors = footprint.EmissionFactors{}
	if err = yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	factors := c.Factors.Merge(loaded.Factors)
	*c = *loaded
	c.Factors = factors
	c.configPath = path
	return nil
}

// ApplyEnv applies FOOTPRINT_* environment overrides.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.Logging.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutputFormat)); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPrecision)); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Output.Precision = p
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvServerAddr)); v != "" {
		c.Server.Addr = v
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output.DefaultFormat {
	case OutputFormatTable, OutputFormatJSON, OutputFormatNDJSON:
	default:
		errs = append(errs, fmt.Errorf("output.default_format must be one of table, json, ndjson, got %q",
			c.Output.DefaultFormat))
	}
	if c.Output.ChartWidth < 1 || c.Output.ChartWidth > maxChartWidth {
		errs = append(errs, fmt.Errorf("output.chart_width must be between 1 and %d, got %d",
			maxChartWidth, c.Output.ChartWidth))
	}
	if _, err := footprint.NewCalculator(
		footprint.WithFactors(c.Factors),
		footprint.WithPrecision(c.Output.Precision),
	); err != nil {
		errs = append(errs, err)
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.read_timeout must be > 0, got %s", c.Server.ReadTimeout))
	}

	return errors.Join(errs...)
}

// Calculator builds a footprint.Calculator from the configured factors and precision.
func (c *Config) Calculator() (*footprint.Calculator, error) {
	return footprint.NewCalculator(
		footprint.WithFactors(c.Factors),
		footprint.WithPrecision(c.Output.Precision),
	)
}

// ConfigPath returns the file this config was loaded from or will be saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no config path set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// DefaultConfigPath returns config.yaml inside GetConfigDir.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetConfigDir returns $FOOTPRINT_HOME or ~/.footprint.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".footprint"), nil
}
