package appconfig

import (
	"os"
	"path/filepath"

	"pkt.systems/termfolio/internal/format"
	"pkt.systems/termfolio/schema"
)

// Config is the top-level application configuration.
type Config struct {
	ConfigVersion int            `mapstructure:"config_version" yaml:"config_version"`
	Content       ContentConfig  `mapstructure:"content" yaml:"content"`
	Terminal      TerminalConfig `mapstructure:"terminal" yaml:"terminal"`
	HTTP          HTTPConfig     `mapstructure:"http" yaml:"http"`
	SSH           SSHConfig      `mapstructure:"ssh" yaml:"ssh"`
	Logging       LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// CurrentConfigVersion marks the supported config version.
const CurrentConfigVersion = 1

// EnvPrefix prefixes environment overrides, e.g. TERMFOLIO_HTTP_ADDR.
const EnvPrefix = "TERMFOLIO"

// ContentConfig selects where portfolio content comes from. With neither
// File nor RemoteURL set the built-in portfolio is served.
type ContentConfig struct {
	File           string `mapstructure:"file" yaml:"file"`
	RemoteURL      string `mapstructure:"remote_url" yaml:"remote_url"`
	RefreshSeconds int    `mapstructure:"refresh_seconds" yaml:"refresh_seconds"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// TerminalConfig controls the interactive terminal.
type TerminalConfig struct {
	DefaultTheme string   `mapstructure:"default_theme" yaml:"default_theme"`
	Prompt       string   `mapstructure:"prompt" yaml:"prompt"`
	HistoryMax   int      `mapstructure:"history_max" yaml:"history_max"`
	Welcome      []string `mapstructure:"welcome" yaml:"welcome"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr     string `mapstructure:"addr" yaml:"addr"`
	BasePath string `mapstructure:"base_path" yaml:"base_path"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Addr               string `mapstructure:"addr" yaml:"addr"`
	HostKeyPath        string `mapstructure:"host_key_path" yaml:"host_key_path"`
	IdleTimeoutMinutes int    `mapstructure:"idle_timeout_minutes" yaml:"idle_timeout_minutes"`
}

// LoggingConfig controls audit logging behavior.
type LoggingConfig struct {
	DisableAuditTrails bool `mapstructure:"disable_audit_trails" yaml:"disable_audit_trails"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Content: ContentConfig{
			TimeoutSeconds: int(schema.DefaultContentTimeout.Seconds()),
		},
		Terminal: TerminalConfig{
			DefaultTheme: string(schema.DefaultTheme),
			Prompt:       format.DefaultPrompt,
			HistoryMax:   200,
			Welcome:      format.DefaultWelcome(),
		},
		HTTP: HTTPConfig{
			Addr:     ":5000",
			BasePath: "",
		},
		SSH: SSHConfig{
			Addr:               ":2222",
			HostKeyPath:        filepath.Join(home, ".termfolio", "ssh_host_key"),
			IdleTimeoutMinutes: 30,
		},
		Logging: LoggingConfig{
			DisableAuditTrails: false,
		},
	}, nil
}

// DefaultConfigPath returns the standard config path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".termfolio", "config.yaml"), nil
}
