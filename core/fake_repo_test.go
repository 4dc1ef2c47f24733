package core

import (
	"context"
	"errors"
	"sync"

	"pkt.systems/termfolio/internal/content"
	"pkt.systems/termfolio/schema"
)

var errUnavailable = errors.New("unavailable")

// fakeRepo wraps a MemStore and can fail or block individual collections.
type fakeRepo struct {
	*content.MemStore

	mu      sync.Mutex
	failing map[schema.Collection]bool
	calls   map[schema.Collection]int
	block   chan struct{}
}

func newFakeRepo(opts ...content.MemOption) *fakeRepo {
	return &fakeRepo{
		MemStore: content.NewDefaultStore(opts...),
		failing:  map[schema.Collection]bool{},
		calls:    map[schema.Collection]int{},
	}
}

func (r *fakeRepo) setFailing(col schema.Collection, fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failing[col] = fail
}

func (r *fakeRepo) callCount(col schema.Collection) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[col]
}

func (r *fakeRepo) enter(ctx context.Context, col schema.Collection) error {
	r.mu.Lock()
	r.calls[col]++
	fail := r.failing[col]
	block := r.block
	r.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if fail {
		return errUnavailable
	}
	return nil
}

func (r *fakeRepo) Profile(ctx context.Context) (schema.Profile, error) {
	if err := r.enter(ctx, schema.CollectionProfile); err != nil {
		return schema.Profile{}, err
	}
	return r.MemStore.Profile(ctx)
}

func (r *fakeRepo) Projects(ctx context.Context) ([]schema.Project, error) {
	if err := r.enter(ctx, schema.CollectionProjects); err != nil {
		return nil, err
	}
	return r.MemStore.Projects(ctx)
}

func (r *fakeRepo) SkillCategories(ctx context.Context) ([]schema.SkillCategory, error) {
	if err := r.enter(ctx, schema.CollectionSkills); err != nil {
		return nil, err
	}
	return r.MemStore.SkillCategories(ctx)
}

func (r *fakeRepo) Achievements(ctx context.Context) ([]schema.Achievement, error) {
	if err := r.enter(ctx, schema.CollectionAchievements); err != nil {
		return nil, err
	}
	return r.MemStore.Achievements(ctx)
}

func (r *fakeRepo) SocialLinks(ctx context.Context) ([]schema.SocialLink, error) {
	if err := r.enter(ctx, schema.CollectionSocialLinks); err != nil {
		return nil, err
	}
	return r.MemStore.SocialLinks(ctx)
}

func (r *fakeRepo) RandomMotivationQuote(ctx context.Context) (schema.MotivationQuote, error) {
	if err := r.enter(ctx, schema.CollectionMotivation); err != nil {
		return schema.MotivationQuote{}, err
	}
	return r.MemStore.RandomMotivationQuote(ctx)
}

func (r *fakeRepo) Stats(ctx context.Context) (schema.Stats, error) {
	if err := r.enter(ctx, schema.CollectionStats); err != nil {
		return schema.Stats{}, err
	}
	return r.MemStore.Stats(ctx)
}
