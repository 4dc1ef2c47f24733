// Package termfolio composes the portfolio terminal service with its HTTP
// and SSH front ends.
package termfolio

import (
	"context"
	"errors"
	"net"
	"sync"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/httpapi"
	"pkt.systems/termfolio/schema"
	"pkt.systems/termfolio/sshserver"
)

// Server composes the HTTP and SSH services around one core service.
type Server interface {
	Start(ctx context.Context) error
	Wait() error
	Stop(ctx context.Context) error
}

// ServerConfig configures the compositor.
type ServerConfig struct {
	Service schema.ServiceConfig
	HTTP    httpapi.Config
	SSH     sshserver.Config
}

// ServerDeps captures dependencies required to build the server. The
// listeners are optional and replace the configured addresses.
type ServerDeps struct {
	ServiceDeps  core.ServiceDeps
	HTTPListener net.Listener
	SSHListener  net.Listener
}

// ServerOption toggles compositor components.
type ServerOption func(*serverOptions)

type serverOptions struct {
	enableHTTP bool
	enableSSH  bool
}

// WithHTTP enables the HTTP API server.
func WithHTTP() ServerOption {
	return func(o *serverOptions) { o.enableHTTP = true }
}

// WithSSH enables the SSH terminal server.
func WithSSH() ServerOption {
	return func(o *serverOptions) { o.enableSSH = true }
}

// New validates the configuration and returns a server ready to Start.
func New(cfg ServerConfig, deps ServerDeps, opts ...ServerOption) (Server, error) {
	options := serverOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if !options.enableHTTP && !options.enableSSH {
		return nil, errors.New("no services enabled")
	}
	if deps.ServiceDeps.Repository == nil && deps.ServiceDeps.Cache == nil {
		return nil, errors.New("content repository is required")
	}
	normalized, err := schema.NormalizeServiceConfig(cfg.Service)
	if err != nil {
		return nil, err
	}
	cfg.Service = normalized
	if cfg.SSH.Theme == "" {
		cfg.SSH.Theme = normalized.DefaultTheme
	}
	return &compositeServer{
		cfg:     cfg,
		deps:    deps,
		options: options,
	}, nil
}

type compositeServer struct {
	cfg     ServerConfig
	deps    ServerDeps
	options serverOptions
	logger  pslog.Logger

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	errCh   chan error
	service core.Service
	wg      sync.WaitGroup
	started bool
}

func (s *compositeServer) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		pslog.Ctx(ctx).Warn("server start rejected", "reason", "already started")
		return errors.New("server already started")
	}
	runCtx, cancel := context.WithCancel(ctx)
	service, err := core.NewService(runCtx, s.cfg.Service, s.deps.ServiceDeps)
	if err != nil {
		s.mu.Unlock()
		cancel()
		return err
	}
	s.ctx, s.cancel = runCtx, cancel
	s.service = service
	s.errCh = make(chan error, 2)
	s.started = true
	s.logger = pslog.Ctx(s.ctx)
	s.mu.Unlock()

	log := s.logger
	log.Info(
		"server start",
		"http", s.options.enableHTTP,
		"ssh", s.options.enableSSH,
		"http_addr", s.cfg.HTTP.Addr,
		"http_base_path", s.cfg.HTTP.BasePath,
		"ssh_addr", s.cfg.SSH.Addr,
		"theme", s.cfg.Service.DefaultTheme,
	)
	if s.options.enableHTTP {
		httpSrv := httpapi.NewServer(s.cfg.HTTP, service)
		s.run("http", func(ctx context.Context) error {
			return httpapi.ListenAndServe(ctx, s.cfg.HTTP.Addr, s.deps.HTTPListener, httpSrv.Handler())
		})
	}
	if s.options.enableSSH {
		sshSrv := &sshserver.Server{
			Config:   s.cfg.SSH,
			Listener: s.deps.SSHListener,
			Service:  service,
		}
		s.run("ssh", sshSrv.ListenAndServe)
	}
	return nil
}

func (s *compositeServer) run(name string, serve func(context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := serve(s.ctx); err != nil {
			s.logger.Error(name+" server failed", "err", err)
			s.errCh <- err
		}
	}()
}

func (s *compositeServer) Wait() error {
	s.mu.Lock()
	ctx := s.ctx
	errCh := s.errCh
	started := s.started
	s.mu.Unlock()
	if !started {
		return errors.New("server not started")
	}

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if err != nil {
			pslog.Ctx(ctx).Error("server stopped", "err", err)
			_ = s.Stop(context.Background())
			return err
		}
		return nil
	}
}

func (s *compositeServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	started := s.started
	log := s.logger
	service := s.service
	s.mu.Unlock()
	if !started {
		return nil
	}
	if log == nil {
		log = pslog.Ctx(context.Background())
	}
	log.Info("server stop requested")
	if cancel != nil {
		cancel()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		service.Close()
		close(done)
	}()
	select {
	case <-ctx.Done():
		log.Warn("server stop timed out", "err", ctx.Err())
		return ctx.Err()
	case <-done:
		log.Info("server stopped")
		return nil
	}
}
