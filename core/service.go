package core

import (
	"context"
	"errors"
	"sync"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/internal/command"
	"pkt.systems/termfolio/internal/content"
	"pkt.systems/termfolio/internal/logx"
	"pkt.systems/termfolio/schema"
)

// service implements the core service behavior.
type service struct {
	cfg    schema.ServiceConfig
	repo   content.Repository
	cache  *Cache
	interp *command.Interpreter
	logger pslog.Logger

	mu     sync.Mutex
	closed bool
	bg     sync.WaitGroup
}

// NewService constructs the core service implementation. The returned
// service starts loading content immediately in the background.
func NewService(ctx context.Context, cfg schema.ServiceConfig, deps ServiceDeps) (Service, error) {
	normalized, err := schema.NormalizeServiceConfig(cfg)
	if err != nil {
		return nil, err
	}
	cfg = normalized
	logger := deps.Logger
	if logger == nil {
		logger = pslog.Ctx(ctx)
	}
	cache := deps.Cache
	repo := deps.Repository
	if cache == nil {
		if repo == nil {
			return nil, errors.New("content repository is required")
		}
		cache = NewCache(repo, CacheConfig{
			Timeout:         cfg.ContentTimeout,
			RefreshInterval: cfg.RefreshInterval,
			Logger:          logger,
		})
	} else if repo == nil {
		repo = cache.repo
	}
	cache.Start(ctx)
	return &service{
		cfg:   cfg,
		repo:  repo,
		cache: cache,
		interp: command.NewInterpreter(command.Config{
			Profile:             cfg.Profile,
			DisableAuditLogging: cfg.DisableAuditLogging,
		}),
		logger: logger,
	}, nil
}

func (s *service) Execute(ctx context.Context, req schema.ExecRequest) (schema.ExecResponse, error) {
	req, err := schema.NormalizeExecRequest(req, s.cfg.DefaultTheme)
	if err != nil {
		return schema.ExecResponse{}, err
	}
	log := logx.WithSession(ctx, req.SessionID)
	ctx = logx.ContextWithSessionLogger(ctx, log, req.SessionID, "")
	resp, theme := s.interp.Execute(ctx, req.Line, req.Theme, s.cache.Snapshot())
	if theme != req.Theme {
		logx.WithTheme(log, theme).Info("terminal theme changed")
	}
	if command.Parse(req.Line).Name == "motivation" && resp.Type != schema.ResponseError {
		s.revalidate(ctx, schema.CollectionMotivation)
	}
	return schema.ExecResponse{Response: resp, Theme: theme}, nil
}

// revalidate reloads col in the background so the next read sees a fresh value.
func (s *service) revalidate(ctx context.Context, col schema.Collection) {
	ctx = context.WithoutCancel(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		_ = s.cache.RefreshCollection(ctx, col)
	}()
}

func (s *service) Complete(_ context.Context, prefix string) schema.CompleteResponse {
	return schema.CompleteResponse{Suggestions: command.Suggest(prefix)}
}

func (s *service) Themes() schema.ThemesResponse {
	return schema.ThemesResponse{Themes: schema.AvailableThemes(), Default: s.cfg.DefaultTheme}
}

func (s *service) DefaultTheme() schema.ThemeName {
	return s.cfg.DefaultTheme
}

func (s *service) Content() content.Repository {
	return s.repo
}

func (s *service) Ready() map[schema.Collection]bool {
	return s.cache.Ready()
}

func (s *service) WaitReady(ctx context.Context) error {
	return s.cache.Wait(ctx)
}

// Close stops background content loading and waits for pending reloads.
func (s *service) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cache.Close()
	s.bg.Wait()
}
