package sshserver

import (
	"context"
	"errors"
	"io"
	"net"

	gliderssh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/internal/logx"
	"pkt.systems/termfolio/internal/transcript"
	"pkt.systems/termfolio/schema"
)

// Server exposes the portfolio terminal over SSH. Every user name is
// accepted and no credentials are asked for.
type Server struct {
	Config
	Listener net.Listener
	Service  transcript.Executor
	logger   pslog.Logger
}

// ListenAndServe starts the SSH server and shuts down on context cancellation.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("ssh server requires a service")
	}
	if s.logger == nil {
		s.logger = pslog.Ctx(ctx)
	}

	signer, created, err := EnsureHostKey(s.HostKeyPath)
	if err != nil {
		return err
	}
	if created {
		s.logger.Info("ssh host key generated", "path", s.HostKeyPath, "fingerprint", HostKeyFingerprint(signer))
	}

	server := &gliderssh.Server{
		Addr:    s.Addr,
		Handler: s.handleSession,
	}
	server.AddHostKey(signer)

	errCh := make(chan error, 1)
	go func() {
		if s.Listener != nil {
			errCh <- server.Serve(s.Listener)
			return
		}
		errCh <- server.ListenAndServe()
	}()
	addr := s.Addr
	if s.Listener != nil {
		addr = s.Listener.Addr().String()
	}
	s.logger.Info("ssh listening", "addr", addr, "fingerprint", HostKeyFingerprint(signer))

	select {
	case <-ctx.Done():
		_ = server.Close()
		return nil
	case err := <-errCh:
		if errors.Is(err, gliderssh.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleSession(sess gliderssh.Session) {
	log := s.logger
	if log == nil {
		log = pslog.Ctx(sess.Context())
	}
	remote := ""
	if addr := sess.RemoteAddr(); addr != nil {
		remote = addr.String()
	}
	sessionID := schema.SessionID(uuid.NewString())
	log = logx.WithRemote(log.With("session", sessionID, "user", sess.User()), remote)
	if sshSession := sess.Context().SessionID(); sshSession != "" {
		log = log.With("ssh_session", sshSession)
	}
	ctx := logx.ContextWithSessionLogger(sess.Context(), log, sessionID, remote)
	log = pslog.Ctx(ctx)

	pty, winCh, ok := sess.Pty()
	if !ok {
		log.Info("ssh session rejected", "reason", "pty required")
		_, _ = io.WriteString(sess, "pty required\n")
		_ = sess.Exit(1)
		return
	}

	log.Info("ssh session opened", "term", pty.Term)
	term := NewTerminal(sess, s.Service, TerminalConfig{
		SessionID:   sessionID,
		Prompt:      s.Prompt,
		Welcome:     s.Welcome,
		Theme:       s.Theme,
		HistoryMax:  s.HistoryMax,
		IdleTimeout: s.IdleTimeout,
		Size:        Size{Width: pty.Window.Width, Height: pty.Window.Height},
	})
	err := term.Run(ctx, windowSizes(ctx, winCh))
	switch {
	case errors.Is(err, ErrIdleTimeout):
		_, _ = io.WriteString(sess, "idle timeout, goodbye\r\n")
	case err != nil:
		log.Warn("ssh session failed", "err", err)
	}
	_ = sess.Exit(0)
	log.Info("ssh session closed", "term", pty.Term, "commands", len(term.Session().History()))
}

// windowSizes adapts gliderlabs window events to terminal sizes.
func windowSizes(ctx context.Context, winCh <-chan gliderssh.Window) <-chan Size {
	out := make(chan Size)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case win, ok := <-winCh:
				if !ok {
					return
				}
				select {
				case out <- Size{Width: win.Width, Height: win.Height}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
