package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pkt.systems/termfolio/schema"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPSource reads content from a termfolio HTTP API rooted at a base URL.
type HTTPSource struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPSource validates baseURL and returns a source. A nil client uses a
// client with a 10 second timeout.
func NewHTTPSource(baseURL string, client *http.Client) (*HTTPSource, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("content remote url is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse content remote url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("content remote url %q must use http or https", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &HTTPSource{base: u, client: client}, nil
}

func (s *HTTPSource) Profile(ctx context.Context) (schema.Profile, error) {
	var out schema.Profile
	err := s.get(ctx, "/api/profile", &out)
	return out, err
}

func (s *HTTPSource) Projects(ctx context.Context) ([]schema.Project, error) {
	var out []schema.Project
	err := s.get(ctx, "/api/projects", &out)
	return out, err
}

func (s *HTTPSource) SkillCategories(ctx context.Context) ([]schema.SkillCategory, error) {
	var out []schema.SkillCategory
	err := s.get(ctx, "/api/skills", &out)
	return out, err
}

func (s *HTTPSource) Achievements(ctx context.Context) ([]schema.Achievement, error) {
	var out []schema.Achievement
	err := s.get(ctx, "/api/achievements", &out)
	return out, err
}

func (s *HTTPSource) SocialLinks(ctx context.Context) ([]schema.SocialLink, error) {
	var out []schema.SocialLink
	err := s.get(ctx, "/api/social-links", &out)
	return out, err
}

func (s *HTTPSource) MotivationQuotes(ctx context.Context) ([]schema.MotivationQuote, error) {
	var out []schema.MotivationQuote
	err := s.get(ctx, "/api/motivation/quotes", &out)
	return out, err
}

func (s *HTTPSource) RandomMotivationQuote(ctx context.Context) (schema.MotivationQuote, error) {
	var out schema.MotivationQuote
	err := s.get(ctx, "/api/motivation", &out)
	return out, err
}

func (s *HTTPSource) Stats(ctx context.Context) (schema.Stats, error) {
	var out schema.Stats
	err := s.get(ctx, "/api/stats", &out)
	return out, err
}

func (s *HTTPSource) get(ctx context.Context, path string, out any) error {
	u := *s.base
	u.Path = u.Path + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return statusError(path, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}

func statusError(path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		msg = payload.Error
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	err := fmt.Errorf("GET %s: %s (status %d)", path, msg, resp.StatusCode)
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", schema.ErrNotFound, err)
	}
	return err
}
