package content

import (
	"errors"
	"strings"
	"testing"

	"pkt.systems/termfolio/schema"
)

func TestValidateReportsProblems(t *testing.T) {
	p := Default()
	p.Projects = append(p.Projects, schema.Project{ID: "1", Title: "Dup", Description: "Duplicate id."})
	p.SocialLinks[0].URL = "not a url"
	p.SkillCategories[0].Skills[0].Proficiency = 120
	p.Profile.Whoami = ""

	err := Validate(p)
	if !errors.Is(err, schema.ErrInvalidContent) {
		t.Fatalf("expected ErrInvalidContent, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{
		`projects: duplicate id "1"`,
		"social_links[0].url must be a URL",
		"skills[0].skills[0].proficiency must be at most 100",
		"profile.whoami is required",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestValidateAllowsEmptyCollections(t *testing.T) {
	p := Default()
	p.Projects = nil
	p.MotivationQuotes = []schema.MotivationQuote{}
	if err := Validate(p); err != nil {
		t.Fatalf("empty collections should validate: %v", err)
	}
}
