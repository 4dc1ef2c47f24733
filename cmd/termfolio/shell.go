package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/internal/logx"
	"pkt.systems/termfolio/schema"
	"pkt.systems/termfolio/sshserver"
)

type stdio struct {
	io.Reader
	io.Writer
}

func newShellCmd() *cobra.Command {
	var source sourceFlags
	var themeName string
	var logFile string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Open the portfolio terminal in this terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			inFd := int(os.Stdin.Fd())
			outFd := int(os.Stdout.Fd())
			if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
				return errors.New("shell requires an interactive terminal")
			}
			cfg, err := source.load()
			if err != nil {
				return err
			}
			theme, err := resolveTheme(themeName, cfg.ServiceConfig().DefaultTheme)
			if err != nil {
				return err
			}

			// Logs go to --log-file or nowhere while the screen is in raw mode.
			logger, closeLog, err := shellLogger(logFile)
			if err != nil {
				return err
			}
			defer closeLog()
			sessionID := schema.SessionID(uuid.NewString())
			logger = logx.WithRemote(logger.With("session", sessionID), "local")
			ctx := logx.ContextWithSessionLogger(cmd.Context(), logger, sessionID, "local")
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			svc, err := newReadyService(ctx, cfg, pslog.Ctx(ctx))
			if err != nil {
				return err
			}
			defer svc.Close()

			state, err := term.MakeRaw(inFd)
			if err != nil {
				return err
			}
			defer func() { _ = term.Restore(inFd, state) }()

			width, height, err := term.GetSize(outFd)
			if err != nil {
				width, height = 80, 24
			}
			terminal := sshserver.NewTerminal(stdio{Reader: os.Stdin, Writer: os.Stdout}, svc, sshserver.TerminalConfig{
				SessionID:   sessionID,
				Prompt:      cfg.Terminal.Prompt,
				Welcome:     cfg.Terminal.Welcome,
				Theme:       theme,
				HistoryMax:  cfg.Terminal.HistoryMax,
				Size:        sshserver.Size{Width: width, Height: height},
			})
			err = terminal.Run(ctx, watchResize(ctx, outFd))
			pslog.Ctx(ctx).Info("shell closed", "commands", terminal.Session().Len())
			return err
		},
	}
	source.register(cmd)
	cmd.Flags().StringVar(&themeName, "theme", "", "initial theme")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the shell runs")
	return cmd
}

func shellLogger(path string) (pslog.Logger, func(), error) {
	if path == "" {
		return pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured, MinLevel: pslog.ErrorLevel}), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := pslog.NewWithOptions(f, pslog.Options{Mode: pslog.ModeStructured, NoColor: true, MinLevel: pslog.DebugLevel})
	return logger, func() { _ = f.Close() }, nil
}
