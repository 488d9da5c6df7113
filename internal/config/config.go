package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the querydsl CLI configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Render  RenderConfig  `yaml:"render"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// RenderConfig controls how rendered queries are written.
type RenderConfig struct {
	Pretty              bool `yaml:"pretty"`
	Indent              int  `yaml:"indent"`
	StrictNegativeBoost bool `yaml:"strict_negative_boost"`
}

// MetricsConfig holds Prometheus textfile settings.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // empty disables the export
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// Load reads config/<env>.yaml. Errors from reading the file wrap the
// underlying os error so callers can test for fs.ErrNotExist.
func Load(env string) (Config, error) {
	return LoadFile(filepath.Join("config", env+".yaml"))
}

// LoadFile reads configuration from an explicit path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, expanding ${VAR} and ${VAR:-default}.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Render.Indent <= 0 {
		c.Render.Indent = 2
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	if c.Render.Indent > 8 {
		return fmt.Errorf("render.indent must be between 1 and 8, got %d", c.Render.Indent)
	}
	return nil
}

// IndentString returns the indent unit for pretty output.
func (c *Config) IndentString() string {
	return strings.Repeat(" ", c.Render.Indent)
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
