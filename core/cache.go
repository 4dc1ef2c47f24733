package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/internal/content"
	"pkt.systems/termfolio/schema"
)

// CacheConfig tunes content loading.
type CacheConfig struct {
	Timeout         time.Duration
	RefreshInterval time.Duration
	Logger          pslog.Logger
}

// Cache keeps the last successfully loaded value of every content collection
// along with a ready flag. It is safe for concurrent use.
type Cache struct {
	repo    content.Repository
	timeout time.Duration
	refresh time.Duration
	logger  pslog.Logger

	mu        sync.Mutex
	snap      Snapshot
	attempts  map[schema.Collection]bool
	firstDone chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	wg        sync.WaitGroup
}

// NewCache constructs a cache over repo. Nothing is loaded until Start or Refresh.
func NewCache(repo content.Repository, cfg CacheConfig) *Cache {
	if cfg.Timeout <= 0 {
		cfg.Timeout = schema.DefaultContentTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Cache{
		repo:      repo,
		timeout:   cfg.Timeout,
		refresh:   cfg.RefreshInterval,
		logger:    logger,
		snap:      Snapshot{ready: map[schema.Collection]bool{}},
		attempts:  map[schema.Collection]bool{},
		firstDone: make(chan struct{}),
		stop:      make(chan struct{}),
	}
}

// Start loads every collection in the background and, when configured,
// revalidates them on an interval until ctx ends or Close is called.
func (c *Cache) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			_ = c.Refresh(ctx)
		}()
		if c.refresh <= 0 {
			return
		}
		c.wg.Add(1)
		go c.refreshLoop(ctx)
	})
}

func (c *Cache) refreshLoop(ctx context.Context) {
	defer c.wg.Done()
	ticker := time.NewTicker(c.refresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stop:
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				c.logger.Debug("content refresh incomplete", "err", err)
			}
		}
	}
}

// Close stops the refresh loop and waits for in-flight loads.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
	c.wg.Wait()
}

// Refresh reloads every collection concurrently and returns the joined load errors.
func (c *Cache) Refresh(ctx context.Context) error {
	collections := schema.Collections()
	errs := make([]error, len(collections))
	var wg sync.WaitGroup
	for i, col := range collections {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = c.RefreshCollection(ctx, col)
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}

// RefreshCollection reloads a single collection. On failure the previous
// value is kept and a warning is logged.
func (c *Cache) RefreshCollection(ctx context.Context, col schema.Collection) error {
	loadCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	started := time.Now()
	err := c.load(loadCtx, col)
	if err != nil {
		c.logger.Warn("content load failed", "collection", col, "err", err)
	} else {
		c.logger.Debug("content loaded", "collection", col, "duration", time.Since(started))
	}
	c.markAttempted(col)
	if err != nil {
		return fmt.Errorf("load %s: %w", col, err)
	}
	return nil
}

func (c *Cache) load(ctx context.Context, col schema.Collection) error {
	switch col {
	case schema.CollectionProfile:
		v, err := c.repo.Profile(ctx)
		if err != nil {
			return err
		}
		c.update(col, func(s *Snapshot) { s.profile = v })
	case schema.CollectionProjects:
		v, err := c.repo.Projects(ctx)
		if err != nil {
			return err
		}
		c.update(col, func(s *Snapshot) { s.projects = v })
	case schema.CollectionSkills:
		v, err := c.repo.SkillCategories(ctx)
		if err != nil {
			return err
		}
		c.update(col, func(s *Snapshot) { s.skills = v })
	case schema.CollectionAchievements:
		v, err := c.repo.Achievements(ctx)
		if err != nil {
			return err
		}
		c.update(col, func(s *Snapshot) { s.achievements = v })
	case schema.CollectionSocialLinks:
		v, err := c.repo.SocialLinks(ctx)
		if err != nil {
			return err
		}
		c.update(col, func(s *Snapshot) { s.socialLinks = v })
	case schema.CollectionMotivation:
		v, err := c.repo.RandomMotivationQuote(ctx)
		if err != nil {
			return err
		}
		c.update(col, func(s *Snapshot) { s.motivation = v })
	case schema.CollectionStats:
		v, err := c.repo.Stats(ctx)
		if err != nil {
			return err
		}
		c.update(col, func(s *Snapshot) { s.stats = v })
	default:
		return fmt.Errorf("unknown collection %q", col)
	}
	return nil
}

// update publishes a new snapshot; published snapshots are never mutated.
func (c *Cache) update(col schema.Collection, apply func(*Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.snap
	next.ready = make(map[schema.Collection]bool, len(c.snap.ready)+1)
	for k, v := range c.snap.ready {
		next.ready[k] = v
	}
	apply(&next)
	next.ready[col] = true
	c.snap = next
}

func (c *Cache) markAttempted(col schema.Collection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.attempts[col] {
		return
	}
	c.attempts[col] = true
	if len(c.attempts) == len(schema.Collections()) {
		close(c.firstDone)
	}
}

// Wait blocks until every collection has finished its first load attempt.
func (c *Cache) Wait(ctx context.Context) error {
	select {
	case <-c.firstDone:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the current immutable view.
func (c *Cache) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Ready reports per-collection readiness.
func (c *Cache) Ready() map[schema.Collection]bool {
	snap := c.Snapshot()
	out := make(map[schema.Collection]bool, len(schema.Collections()))
	for _, col := range schema.Collections() {
		out[col] = snap.ready[col]
	}
	return out
}

// Snapshot is a read-only view of the cache at one point in time.
type Snapshot struct {
	ready        map[schema.Collection]bool
	profile      schema.Profile
	projects     []schema.Project
	skills       []schema.SkillCategory
	achievements []schema.Achievement
	socialLinks  []schema.SocialLink
	motivation   schema.MotivationQuote
	stats        schema.Stats
}

// Ready reports whether col has loaded.
func (s Snapshot) Ready(col schema.Collection) bool { return s.ready[col] }

// Profile returns the profile and whether it has loaded.
func (s Snapshot) Profile() (schema.Profile, bool) {
	return s.profile, s.ready[schema.CollectionProfile]
}

// Projects returns the projects and whether they have loaded.
func (s Snapshot) Projects() ([]schema.Project, bool) {
	return s.projects, s.ready[schema.CollectionProjects]
}

// SkillCategories returns the skill categories and whether they have loaded.
func (s Snapshot) SkillCategories() ([]schema.SkillCategory, bool) {
	return s.skills, s.ready[schema.CollectionSkills]
}

// Achievements returns the achievements and whether they have loaded.
func (s Snapshot) Achievements() ([]schema.Achievement, bool) {
	return s.achievements, s.ready[schema.CollectionAchievements]
}

// SocialLinks returns the social links and whether they have loaded.
func (s Snapshot) SocialLinks() ([]schema.SocialLink, bool) {
	return s.socialLinks, s.ready[schema.CollectionSocialLinks]
}

// Motivation returns the cached quote and whether it has loaded.
func (s Snapshot) Motivation() (schema.MotivationQuote, bool) {
	return s.motivation, s.ready[schema.CollectionMotivation]
}

// Stats returns the coding stats and whether they have loaded.
func (s Snapshot) Stats() (schema.Stats, bool) {
	return s.stats, s.ready[schema.CollectionStats]
}
