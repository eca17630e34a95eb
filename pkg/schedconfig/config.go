package schedconfig

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config specifies all schedsrv/schedctl runtime parameters. It
// supports YAML parsing and includes hand-rolled validation.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `yaml:"addr" json:"addr"`

	// DataDir is the working directory artifactstore reads and writes
	// `*_latest.json`/`archive/*` under.
	DataDir string `yaml:"dataDir" json:"dataDir"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"logLevel" json:"logLevel"`

	// LockTimeout bounds how long a request waits to acquire the
	// working-directory lock before failing.
	LockTimeout time.Duration `yaml:"lockTimeout" json:"lockTimeout"`
}

// ValidLogLevels lists the accepted LogLevel values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration schedsrv/schedctl start from when
// no config file is supplied.
func Default() Config {
	return Config{
		Addr:        ":8080",
		DataDir:     "./data",
		LogLevel:    "info",
		LockTimeout: 10 * time.Second,
	}
}

// LoadConfig reads and validates a YAML configuration file, filling
// any unset field from Default() first.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks all configuration constraints, mirroring the plain
// fmt.Errorf per-field style used throughout the pipeline packages.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.DataDir == "" {
		return errors.New("dataDir must not be empty")
	}
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("logLevel must be one of %v, got %q", ValidLogLevels, c.LogLevel)
	}
	if c.LockTimeout <= 0 {
		return fmt.Errorf("lockTimeout must be positive, got %s", c.LockTimeout)
	}
	return nil
}

func isValidLogLevel(level string) bool {
	for _, v := range ValidLogLevels {
		if v == level {
			return true
		}
	}
	return false
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}
