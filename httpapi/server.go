package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/schema"
)

const maxRequestBytes = 64 << 10

// Server serves the portfolio JSON API and the terminal endpoints.
type Server struct {
	cfg      Config
	service  core.Service
	basePath string
}

// NewServer constructs an HTTP server.
func NewServer(cfg Config, service core.Service) *Server {
	return &Server{
		cfg:      cfg,
		service:  service,
		basePath: normalizeBasePath(cfg.BasePath),
	}
}

// Handler returns an http.Handler for the server.
func (s *Server) Handler() http.Handler {
	repo := s.service.Content()
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleNotFound)

	mux.HandleFunc("/api/profile", contentHandler("profile", func(ctx context.Context) (any, error) {
		return repo.Profile(ctx)
	}))
	mux.HandleFunc("/api/projects", contentHandler("projects", func(ctx context.Context) (any, error) {
		return repo.Projects(ctx)
	}))
	mux.HandleFunc("/api/skills", contentHandler("skills", func(ctx context.Context) (any, error) {
		return repo.SkillCategories(ctx)
	}))
	mux.HandleFunc("/api/achievements", contentHandler("achievements", func(ctx context.Context) (any, error) {
		return repo.Achievements(ctx)
	}))
	mux.HandleFunc("/api/social-links", contentHandler("social links", func(ctx context.Context) (any, error) {
		return repo.SocialLinks(ctx)
	}))
	mux.HandleFunc("/api/motivation", contentHandler("motivation quote", func(ctx context.Context) (any, error) {
		return repo.RandomMotivationQuote(ctx)
	}))
	mux.HandleFunc("/api/motivation/quotes", contentHandler("motivation quotes", func(ctx context.Context) (any, error) {
		return repo.MotivationQuotes(ctx)
	}))
	mux.HandleFunc("/api/stats", contentHandler("stats", func(ctx context.Context) (any, error) {
		return repo.Stats(ctx)
	}))

	mux.HandleFunc("/api/themes", s.handleThemes)
	mux.HandleFunc("/api/terminal/exec", s.handleExec)
	mux.HandleFunc("/api/terminal/complete", s.handleComplete)
	mux.HandleFunc("/healthz", s.handleHealth)

	return mountBasePath(s.basePath, withRequestLogging(mux))
}

// contentHandler serves one repository collection. Failures are logged and
// reported as "Failed to fetch <noun>".
func contentHandler(noun string, load func(context.Context) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowMethod(w, r, http.MethodGet) {
			return
		}
		value, err := load(r.Context())
		if err != nil {
			pslog.Ctx(r.Context()).Warn("content request failed", "collection", noun, "err", err)
			status := http.StatusInternalServerError
			if errors.Is(err, schema.ErrNotFound) {
				status = http.StatusNotFound
			}
			writeJSON(w, status, map[string]any{"error": "Failed to fetch " + noun})
			return
		}
		writeJSON(w, http.StatusOK, value)
	}
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, s.service.Themes())
}

func (s *Server) handleExec(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req schema.ExecRequest
	if err := decodeJSON(http.MaxBytesReader(w, r.Body, maxRequestBytes), &req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", schema.ErrInvalidRequest, err))
		return
	}
	req.SessionID = schema.SessionID(strings.TrimSpace(r.Header.Get("X-Session-ID")))
	resp, err := s.service.Execute(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if isRequestError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, s.service.Complete(r.Context(), r.URL.Query().Get("prefix")))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	ready := s.service.Ready()
	status := "ok"
	for _, ok := range ready {
		if !ok {
			status = "degraded"
			break
		}
	}
	writeJSON(w, http.StatusOK, schema.HealthResponse{Status: status, Ready: ready})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, errors.New("not found"))
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	return false
}

func isRequestError(err error) bool {
	return errors.Is(err, schema.ErrInvalidRequest) ||
		errors.Is(err, schema.ErrEmptyCommand) ||
		errors.Is(err, schema.ErrUnknownTheme)
}

func decodeJSON(body io.Reader, target any) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		data = []byte(`{"error":"encode response"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}
