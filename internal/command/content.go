package command

import "pkt.systems/termfolio/schema"

// Content is the read view the interpreter consults. Each accessor reports
// false while its collection is still loading.
type Content interface {
	Profile() (schema.Profile, bool)
	Projects() ([]schema.Project, bool)
	SkillCategories() ([]schema.SkillCategory, bool)
	Achievements() ([]schema.Achievement, bool)
	Motivation() (schema.MotivationQuote, bool)
	Stats() (schema.Stats, bool)
}

// StaticContent is a Content whose collections are always ready.
type StaticContent struct {
	Portfolio schema.Portfolio
	Quote     schema.MotivationQuote
}

func (s StaticContent) Profile() (schema.Profile, bool) { return s.Portfolio.Profile, true }

func (s StaticContent) Projects() ([]schema.Project, bool) { return s.Portfolio.Projects, true }

func (s StaticContent) SkillCategories() ([]schema.SkillCategory, bool) {
	return s.Portfolio.SkillCategories, true
}

func (s StaticContent) Achievements() ([]schema.Achievement, bool) {
	return s.Portfolio.Achievements, true
}

func (s StaticContent) Motivation() (schema.MotivationQuote, bool) { return s.Quote, true }

func (s StaticContent) Stats() (schema.Stats, bool) { return s.Portfolio.Stats, true }

type emptyContent struct{}

func (emptyContent) Profile() (schema.Profile, bool)                 { return schema.Profile{}, false }
func (emptyContent) Projects() ([]schema.Project, bool)              { return nil, false }
func (emptyContent) SkillCategories() ([]schema.SkillCategory, bool) { return nil, false }
func (emptyContent) Achievements() ([]schema.Achievement, bool)      { return nil, false }
func (emptyContent) Motivation() (schema.MotivationQuote, bool)      { return schema.MotivationQuote{}, false }
func (emptyContent) Stats() (schema.Stats, bool)                     { return schema.Stats{}, false }
