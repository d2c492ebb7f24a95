package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds the shell configuration consumed by the PTY execution
// subsystem. It is assembled by the surrounding shell once per process and
// treated as read-only afterwards.
type Config struct {
	// Shell is the program used to interpret command lines ("sh -c ...").
	Shell string `envconfig:"PTYEXEC_SHELL" yaml:"shell"`

	// WorkingDir is the directory the child process starts in. Empty means
	// the current working directory of this process.
	WorkingDir string `envconfig:"PTYEXEC_WORKING_DIR" yaml:"working_dir"`

	// SessionID identifies the interactive session for tracing. Generated
	// when unset.
	SessionID string `envconfig:"PTYEXEC_SESSION_ID" yaml:"session_id"`

	// TraceLogFile is the log sink identity handed down to child shims.
	TraceLogFile string `envconfig:"PTYEXEC_TRACE_LOG" yaml:"trace_log"`

	PTY     PTYConfig `yaml:"pty"`
	Logging LogConfig `yaml:"logging"`
}

// PTYConfig holds the PTY-specific toggles.
type PTYConfig struct {
	// Disable turns PTY allocation off entirely; every command runs piped.
	Disable bool `envconfig:"PTYEXEC_DISABLE_PTY" yaml:"disable"`

	// Force allocates a PTY for every invocation regardless of classification.
	Force bool `envconfig:"PTYEXEC_FORCE_PTY" yaml:"force"`

	// Debug enables verbose PTY diagnostics (size detection, resizes,
	// forwarder shutdown).
	Debug bool `envconfig:"PTYEXEC_PTY_DEBUG" yaml:"debug"`

	// PipelineTail classifies the final unredirected segment of a pipeline
	// instead of rejecting piped commands outright.
	PipelineTail bool `envconfig:"PTYEXEC_PIPELINE_LAST" yaml:"pipeline_tail"`
}

// LogConfig holds logging configuration. The level default is applied in
// fillDefaults rather than an envconfig default tag, which would overwrite a
// file-supplied level whenever the variable is unset.
type LogConfig struct {
	Level       string `envconfig:"PTYEXEC_LOG_LEVEL" yaml:"level"`
	Development bool   `envconfig:"PTYEXEC_LOG_DEV" yaml:"development"`
}

// EnvPrefix is the prefix shared by all recognized environment variables,
// e.g. PTYEXEC_DISABLE_PTY, PTYEXEC_FORCE_PTY, PTYEXEC_PTY_DEBUG. The
// envconfig tags spell the variables out in full so the names survive the
// nested config structs unchanged.
const EnvPrefix = "PTYEXEC"

// Load loads configuration from an optional YAML file overlaid with
// environment variables. Environment wins over file, file wins over defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	cfg.fillDefaults()
	return cfg, nil
}

// LoadOrDefault loads configuration or falls back to defaults on error.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns the default configuration.
func Default() *Config {
	cfg := &Config{
		Logging: LogConfig{Level: "info"},
	}
	cfg.fillDefaults()
	return cfg
}

func (c *Config) fillDefaults() {
	if c.Shell == "" {
		if shell, err := DetectShell(); err == nil {
			c.Shell = shell
		}
	}
	if c.SessionID == "" {
		c.SessionID = uuid.New().String()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
