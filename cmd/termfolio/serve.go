package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/termfolio"
	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/httpapi"
	"pkt.systems/termfolio/internal/appconfig"
	"pkt.systems/termfolio/schema"
	"pkt.systems/termfolio/sshserver"
)

//go:embed assets/banner.txt
var serveBanner string

func newServeCmd() *cobra.Command {
	var source sourceFlags
	var noHTTP bool
	var noSSH bool
	var disableAuditTrails bool
	var noBanner bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the SSH terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if noHTTP && noSSH {
				return errors.New("--no-http and --no-ssh leave nothing to serve")
			}
			logMode := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_MODE")))
			showBanner := !noBanner && logMode != "json" && logMode != "structured"
			if showBanner && serveBanner != "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), serveBanner)
			}
			logger := pslog.Ctx(cmd.Context())
			cfg, err := source.load()
			if err != nil {
				return err
			}
			if disableAuditTrails {
				cfg.Logging.DisableAuditTrails = true
			}
			repo, kind, err := openRepository(cfg.Content)
			if err != nil {
				return err
			}
			logger.Info("content source selected", "source", kind, "file", cfg.Content.File, "remote_url", cfg.Content.RemoteURL)

			var opts []termfolio.ServerOption
			if !noHTTP {
				opts = append(opts, termfolio.WithHTTP())
			}
			if !noSSH {
				opts = append(opts, termfolio.WithSSH())
			}
			server, err := termfolio.New(toServerConfig(cfg), termfolio.ServerDeps{
				ServiceDeps: core.ServiceDeps{
					Repository: repo,
					Logger:     logger,
				},
			}, opts...)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			go func() {
				<-ctx.Done()
				stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Stop(stopCtx); err != nil {
					logger.Warn("server stop failed", "err", err)
				}
			}()
			if err := server.Start(ctx); err != nil {
				return err
			}
			return server.Wait()
		},
	}
	source.register(cmd)
	cmd.Flags().BoolVar(&noHTTP, "no-http", false, "do not start the HTTP API")
	cmd.Flags().BoolVar(&noSSH, "no-ssh", false, "do not start the SSH terminal")
	cmd.Flags().BoolVar(&disableAuditTrails, "disable-audit-trails", false, "disable audit trail logging for commands")
	cmd.Flags().BoolVar(&noBanner, "no-banner", false, "disable startup banner")
	return cmd
}

func toServerConfig(cfg appconfig.Config) termfolio.ServerConfig {
	return termfolio.ServerConfig{
		Service: cfg.ServiceConfig(),
		HTTP: httpapi.Config{
			Addr:     cfg.HTTP.Addr,
			BasePath: cfg.HTTP.BasePath,
		},
		SSH: toSSHConfig(cfg),
	}
}

func toSSHConfig(cfg appconfig.Config) sshserver.Config {
	theme, _ := schema.NormalizeThemeName(cfg.Terminal.DefaultTheme)
	return sshserver.Config{
		Addr:        cfg.SSH.Addr,
		HostKeyPath: cfg.SSH.HostKeyPath,
		Prompt:      cfg.Terminal.Prompt,
		Welcome:     cfg.Terminal.Welcome,
		Theme:       theme,
		HistoryMax:  cfg.Terminal.HistoryMax,
		IdleTimeout: cfg.IdleTimeout(),
	}
}
