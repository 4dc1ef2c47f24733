package schema

import (
	"fmt"
	"time"
)

// ServiceConfig defines defaults and limits for the core service.
type ServiceConfig struct {
	DefaultTheme ThemeName
	// ContentTimeout bounds a single collection load.
	ContentTimeout time.Duration
	// RefreshInterval revalidates every collection periodically. Zero disables it.
	RefreshInterval time.Duration
	// Profile overrides the built-in static texts field by field.
	Profile Profile
	// DisableAuditLogging disables audit trail debug logs for commands.
	DisableAuditLogging bool
}

// DefaultContentTimeout is the default per-collection load timeout.
const DefaultContentTimeout = 10 * time.Second

// NormalizeServiceConfig applies defaults and validates the config.
func NormalizeServiceConfig(cfg ServiceConfig) (ServiceConfig, error) {
	if cfg.DefaultTheme == "" {
		cfg.DefaultTheme = DefaultTheme
	}
	theme, ok := NormalizeThemeName(string(cfg.DefaultTheme))
	if !ok {
		return ServiceConfig{}, fmt.Errorf("%w: %q", ErrUnknownTheme, cfg.DefaultTheme)
	}
	cfg.DefaultTheme = theme
	if cfg.ContentTimeout <= 0 {
		cfg.ContentTimeout = DefaultContentTimeout
	}
	if cfg.RefreshInterval < 0 {
		return ServiceConfig{}, fmt.Errorf("%w: refresh interval must not be negative", ErrInvalidRequest)
	}
	return cfg, nil
}
