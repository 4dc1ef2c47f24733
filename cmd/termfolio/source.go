package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/internal/appconfig"
	"pkt.systems/termfolio/internal/content"
	"pkt.systems/termfolio/schema"
)

// sourceFlags select the config file and optionally override its content source.
type sourceFlags struct {
	configPath  string
	contentFile string
	remoteURL   string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVar(&f.contentFile, "content", "", "portfolio content file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&f.remoteURL, "remote", "", "read content from another termfolio HTTP API")
}

func (f sourceFlags) load() (appconfig.Config, error) {
	if f.contentFile != "" && f.remoteURL != "" {
		return appconfig.Config{}, errors.New("--content and --remote are mutually exclusive")
	}
	cfg, err := appconfig.Load(f.configPath)
	if err != nil {
		return appconfig.Config{}, err
	}
	switch {
	case f.contentFile != "":
		cfg.Content.File = f.contentFile
		cfg.Content.RemoteURL = ""
	case f.remoteURL != "":
		cfg.Content.RemoteURL = f.remoteURL
		cfg.Content.File = ""
	}
	if err := cfg.Validate(); err != nil {
		return appconfig.Config{}, err
	}
	return cfg, nil
}

// openRepository builds the content repository cfg points at and names it
// for logging.
func openRepository(cfg appconfig.ContentConfig) (content.Repository, string, error) {
	switch {
	case cfg.RemoteURL != "":
		src, err := content.NewHTTPSource(cfg.RemoteURL, nil)
		if err != nil {
			return nil, "", err
		}
		return src, "remote", nil
	case cfg.File != "":
		portfolio, err := content.LoadFile(cfg.File)
		if err != nil {
			return nil, "", err
		}
		return content.NewMemStore(portfolio), "file", nil
	default:
		return content.NewDefaultStore(), "builtin", nil
	}
}

// newReadyService starts a core service over cfg's content and waits for
// the first load of every collection.
func newReadyService(ctx context.Context, cfg appconfig.Config, logger pslog.Logger) (core.Service, error) {
	repo, source, err := openRepository(cfg.Content)
	if err != nil {
		return nil, err
	}
	logger.Debug("content source selected", "source", source, "file", cfg.Content.File, "remote_url", cfg.Content.RemoteURL)
	svc, err := core.NewService(ctx, cfg.ServiceConfig(), core.ServiceDeps{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	if err := svc.WaitReady(ctx); err != nil {
		svc.Close()
		return nil, err
	}
	return svc, nil
}

func resolveTheme(flag string, fallback schema.ThemeName) (schema.ThemeName, error) {
	if flag == "" {
		return fallback, nil
	}
	theme, ok := schema.NormalizeThemeName(flag)
	if !ok {
		return "", fmt.Errorf("%w: %q", schema.ErrUnknownTheme, flag)
	}
	return theme, nil
}

// outputWidth reports the terminal width of w, or 80 when w is not a tty.
func outputWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
