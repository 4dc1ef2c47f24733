package content

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	"pkt.systems/termfolio/schema"
)

// MemStore is an in-memory Repository. It is safe for concurrent use.
type MemStore struct {
	mu        sync.RWMutex
	portfolio schema.Portfolio
	intn      func(int) int
}

// MemOption configures a MemStore.
type MemOption func(*MemStore)

// WithIntN overrides the random index source used by RandomMotivationQuote.
// fn must return a value in [0, n).
func WithIntN(fn func(n int) int) MemOption {
	return func(s *MemStore) {
		if fn != nil {
			s.intn = fn
		}
	}
}

// NewMemStore returns a store holding a copy of p.
func NewMemStore(p schema.Portfolio, opts ...MemOption) *MemStore {
	s := &MemStore{
		portfolio: clonePortfolio(p),
		intn:      rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDefaultStore returns a store seeded with the built-in fixtures.
func NewDefaultStore(opts ...MemOption) *MemStore {
	return NewMemStore(Default(), opts...)
}

// Replace swaps the stored portfolio.
func (s *MemStore) Replace(p schema.Portfolio) {
	p = clonePortfolio(p)
	s.mu.Lock()
	s.portfolio = p
	s.mu.Unlock()
}

// Portfolio returns a copy of the stored document.
func (s *MemStore) Portfolio() schema.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePortfolio(s.portfolio)
}

func (s *MemStore) Profile(ctx context.Context) (schema.Profile, error) {
	if err := ctx.Err(); err != nil {
		return schema.Profile{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.portfolio.Profile, nil
}

func (s *MemStore) Projects(ctx context.Context) ([]schema.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProjects(s.portfolio.Projects), nil
}

func (s *MemStore) SkillCategories(ctx context.Context) ([]schema.SkillCategory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSkillCategories(s.portfolio.SkillCategories), nil
}

func (s *MemStore) Achievements(ctx context.Context) ([]schema.Achievement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.portfolio.Achievements), nil
}

func (s *MemStore) SocialLinks(ctx context.Context) ([]schema.SocialLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.portfolio.SocialLinks), nil
}

func (s *MemStore) MotivationQuotes(ctx context.Context) ([]schema.MotivationQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.portfolio.MotivationQuotes), nil
}

// RandomMotivationQuote picks a quote uniformly. An empty quote list yields
// schema.ErrNotFound.
func (s *MemStore) RandomMotivationQuote(ctx context.Context) (schema.MotivationQuote, error) {
	if err := ctx.Err(); err != nil {
		return schema.MotivationQuote{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.portfolio.MotivationQuotes)
	if n == 0 {
		return schema.MotivationQuote{}, fmt.Errorf("motivation quotes: %w", schema.ErrNotFound)
	}
	idx := s.intn(n)
	if idx < 0 || idx >= n {
		idx = 0
	}
	return s.portfolio.MotivationQuotes[idx], nil
}

func (s *MemStore) Stats(ctx context.Context) (schema.Stats, error) {
	if err := ctx.Err(); err != nil {
		return schema.Stats{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneStats(s.portfolio.Stats), nil
}

func clonePortfolio(p schema.Portfolio) schema.Portfolio {
	out := p
	out.Projects = cloneProjects(p.Projects)
	out.SkillCategories = cloneSkillCategories(p.SkillCategories)
	out.Achievements = slices.Clone(p.Achievements)
	out.SocialLinks = slices.Clone(p.SocialLinks)
	out.MotivationQuotes = slices.Clone(p.MotivationQuotes)
	out.Stats = cloneStats(p.Stats)
	return out
}

func cloneProjects(in []schema.Project) []schema.Project {
	if in == nil {
		return nil
	}
	out := make([]schema.Project, len(in))
	for i, p := range in {
		p.Technologies = slices.Clone(p.Technologies)
		out[i] = p
	}
	return out
}

func cloneSkillCategories(in []schema.SkillCategory) []schema.SkillCategory {
	if in == nil {
		return nil
	}
	out := make([]schema.SkillCategory, len(in))
	for i, c := range in {
		c.Skills = slices.Clone(c.Skills)
		out[i] = c
	}
	return out
}

func cloneStats(in schema.Stats) schema.Stats {
	in.Languages = slices.Clone(in.Languages)
	return in
}
