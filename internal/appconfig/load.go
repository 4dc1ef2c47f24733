package appconfig

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"pkt.systems/termfolio/internal/content"
	"pkt.systems/termfolio/schema"
)

// Load reads configuration from the provided path. If path is empty,
// DefaultConfigPath is used and a missing file falls back to the defaults.
// TERMFOLIO_* environment variables override file values.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("config_version", cfg.ConfigVersion)
	v.SetDefault("content.file", cfg.Content.File)
	v.SetDefault("content.remote_url", cfg.Content.RemoteURL)
	v.SetDefault("content.refresh_seconds", cfg.Content.RefreshSeconds)
	v.SetDefault("content.timeout_seconds", cfg.Content.TimeoutSeconds)
	v.SetDefault("terminal.default_theme", cfg.Terminal.DefaultTheme)
	v.SetDefault("terminal.prompt", cfg.Terminal.Prompt)
	v.SetDefault("terminal.history_max", cfg.Terminal.HistoryMax)
	v.SetDefault("terminal.welcome", cfg.Terminal.Welcome)
	v.SetDefault("http.addr", cfg.HTTP.Addr)
	v.SetDefault("http.base_path", cfg.HTTP.BasePath)
	v.SetDefault("ssh.addr", cfg.SSH.Addr)
	v.SetDefault("ssh.host_key_path", cfg.SSH.HostKeyPath)
	v.SetDefault("ssh.idle_timeout_minutes", cfg.SSH.IdleTimeoutMinutes)
	v.SetDefault("logging.disable_audit_trails", cfg.Logging.DisableAuditTrails)

	configLoaded := false
	if _, err := os.Stat(path); err == nil || explicit {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		configLoaded = true
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("stat config %s: %w", path, err)
	}

	if configLoaded {
		if !v.InConfig("config_version") {
			return Config{}, fmt.Errorf("config_version is required; expected %d", CurrentConfigVersion)
		}
		if v.GetInt("config_version") != CurrentConfigVersion {
			return Config{}, fmt.Errorf("unsupported config_version %d; expected %d", v.GetInt("config_version"), CurrentConfigVersion)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	expandConfigEnv(&cfg, filepath.Dir(path), configLoaded)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c Config) Validate() error {
	if _, ok := schema.NormalizeThemeName(c.Terminal.DefaultTheme); !ok {
		return fmt.Errorf("terminal.default_theme %q: %w", c.Terminal.DefaultTheme, schema.ErrUnknownTheme)
	}
	if c.Terminal.HistoryMax <= 0 {
		return fmt.Errorf("terminal.history_max must be positive")
	}
	if c.Content.RefreshSeconds < 0 {
		return fmt.Errorf("content.refresh_seconds must not be negative")
	}
	if c.Content.TimeoutSeconds < 0 {
		return fmt.Errorf("content.timeout_seconds must not be negative")
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("ssh.idle_timeout_minutes must not be negative")
	}
	if err := validateHTTPConfig(c.HTTP); err != nil {
		return err
	}
	return validateContentConfig(c.Content)
}

func validateHTTPConfig(cfg HTTPConfig) error {
	basePath := strings.TrimSpace(cfg.BasePath)
	if basePath != "" {
		if strings.Contains(basePath, "://") {
			return fmt.Errorf("http.base_path must be a path prefix, not a URL")
		}
		if strings.ContainsAny(basePath, "?#") {
			return fmt.Errorf("http.base_path must not include query or fragment")
		}
	}
	return nil
}

func validateContentConfig(cfg ContentConfig) error {
	file := strings.TrimSpace(cfg.File)
	remote := strings.TrimSpace(cfg.RemoteURL)
	if file != "" && remote != "" {
		return fmt.Errorf("content.file and content.remote_url are mutually exclusive")
	}
	if remote != "" {
		parsed, err := url.Parse(remote)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("content.remote_url must include scheme and host (e.g. https://example.com)")
		}
	}
	if file != "" {
		if _, err := content.FormatFromPath(file); err != nil {
			return fmt.Errorf("content.file: %w", err)
		}
	}
	return nil
}

// ServiceConfig converts the file settings into core service settings.
func (c Config) ServiceConfig() schema.ServiceConfig {
	theme, _ := schema.NormalizeThemeName(c.Terminal.DefaultTheme)
	return schema.ServiceConfig{
		DefaultTheme:        theme,
		ContentTimeout:      time.Duration(c.Content.TimeoutSeconds) * time.Second,
		RefreshInterval:     time.Duration(c.Content.RefreshSeconds) * time.Second,
		DisableAuditLogging: c.Logging.DisableAuditTrails,
	}
}

// IdleTimeout returns the SSH idle timeout; zero disables it.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.SSH.IdleTimeoutMinutes) * time.Minute
}

// expandConfigEnv expands ${VAR} in paths. A relative content file is
// resolved against the config file's directory when a file was loaded.
func expandConfigEnv(cfg *Config, baseDir string, loaded bool) {
	if cfg == nil {
		return
	}
	cfg.Content.File = expandEnv(cfg.Content.File)
	cfg.Content.RemoteURL = expandEnv(cfg.Content.RemoteURL)
	cfg.SSH.HostKeyPath = expandEnv(cfg.SSH.HostKeyPath)
	if loaded && cfg.Content.File != "" && !filepath.IsAbs(cfg.Content.File) {
		cfg.Content.File = filepath.Join(baseDir, cfg.Content.File)
	}
}

func expandEnv(value string) string {
	if value == "" {
		return value
	}
	return os.Expand(value, func(key string) string {
		if key == "" {
			return ""
		}
		if val, ok := lookupEnv(key); ok {
			return val
		}
		return "$" + key
	})
}

func lookupEnv(key string) (string, bool) {
	if val, ok := os.LookupEnv(key); ok {
		return val, true
	}
	switch key {
	case "UID":
		return fmt.Sprintf("%d", os.Getuid()), true
	case "GID":
		return fmt.Sprintf("%d", os.Getgid()), true
	}
	return "", false
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteDefault writes the default config to the target path.
func WriteDefault(path string, overwrite bool) (string, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", err
		}
		path = defaultPath
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config already exists at %s", path)
		}
	}

	cfg, err := DefaultConfig()
	if err != nil {
		return "", err
	}

	data, err := Marshal(cfg)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
