// Package content serves portfolio content from memory, files or a remote
// termfolio HTTP API.
package content

import (
	"context"

	"pkt.systems/termfolio/schema"
)

// Repository provides read access to portfolio content.
type Repository interface {
	Profile(ctx context.Context) (schema.Profile, error)
	Projects(ctx context.Context) ([]schema.Project, error)
	SkillCategories(ctx context.Context) ([]schema.SkillCategory, error)
	Achievements(ctx context.Context) ([]schema.Achievement, error)
	SocialLinks(ctx context.Context) ([]schema.SocialLink, error)
	MotivationQuotes(ctx context.Context) ([]schema.MotivationQuote, error)
	RandomMotivationQuote(ctx context.Context) (schema.MotivationQuote, error)
	Stats(ctx context.Context) (schema.Stats, error)
}

// Collect reads every collection from repo into a single portfolio document.
func Collect(ctx context.Context, repo Repository) (schema.Portfolio, error) {
	var (
		p   schema.Portfolio
		err error
	)
	if p.Profile, err = repo.Profile(ctx); err != nil {
		return schema.Portfolio{}, err
	}
	if p.Projects, err = repo.Projects(ctx); err != nil {
		return schema.Portfolio{}, err
	}
	if p.SkillCategories, err = repo.SkillCategories(ctx); err != nil {
		return schema.Portfolio{}, err
	}
	if p.Achievements, err = repo.Achievements(ctx); err != nil {
		return schema.Portfolio{}, err
	}
	if p.SocialLinks, err = repo.SocialLinks(ctx); err != nil {
		return schema.Portfolio{}, err
	}
	if p.MotivationQuotes, err = repo.MotivationQuotes(ctx); err != nil {
		return schema.Portfolio{}, err
	}
	if p.Stats, err = repo.Stats(ctx); err != nil {
		return schema.Portfolio{}, err
	}
	return p, nil
}
