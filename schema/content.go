package schema

// Profile holds the static texts printed by the terminal.
type Profile struct {
	Name     string `json:"name" yaml:"name" toml:"name" validate:"required"`
	Handle   string `json:"handle" yaml:"handle" toml:"handle" validate:"required"`
	About    string `json:"about" yaml:"about" toml:"about" validate:"required"`
	Whoami   string `json:"whoami" yaml:"whoami" toml:"whoami" validate:"required"`
	Resume   string `json:"resume" yaml:"resume" toml:"resume" validate:"required"`
	LeetCode string `json:"leetcode" yaml:"leetcode" toml:"leetcode"`
	GFG      string `json:"gfg" yaml:"gfg" toml:"gfg"`
}

// Project is one portfolio project.
type Project struct {
	ID           string   `json:"id" yaml:"id" toml:"id" validate:"required"`
	Title        string   `json:"title" yaml:"title" toml:"title" validate:"required"`
	Description  string   `json:"description" yaml:"description" toml:"description" validate:"required"`
	Technologies []string `json:"technologies" yaml:"technologies" toml:"technologies"`
	GithubURL    string   `json:"githubUrl,omitempty" yaml:"github_url,omitempty" toml:"github_url,omitempty" validate:"omitempty,url"`
	LiveURL      string   `json:"liveUrl,omitempty" yaml:"live_url,omitempty" toml:"live_url,omitempty" validate:"omitempty,url"`
	Featured     bool     `json:"featured" yaml:"featured" toml:"featured"`
}

// Skill is a named proficiency percentage.
type Skill struct {
	Name        string `json:"name" yaml:"name" toml:"name" validate:"required"`
	Proficiency int    `json:"proficiency" yaml:"proficiency" toml:"proficiency" validate:"min=0,max=100"`
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Category string  `json:"category" yaml:"category" toml:"category" validate:"required"`
	Skills   []Skill `json:"skills" yaml:"skills" toml:"skills" validate:"dive"`
}

// Achievement is one portfolio achievement.
type Achievement struct {
	ID          string `json:"id" yaml:"id" toml:"id" validate:"required"`
	Title       string `json:"title" yaml:"title" toml:"title" validate:"required"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
}

// SocialLink points at an external profile.
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform" toml:"platform" validate:"required"`
	URL      string `json:"url" yaml:"url" toml:"url" validate:"required,url"`
	Username string `json:"username,omitempty" yaml:"username,omitempty" toml:"username,omitempty"`
}

// MotivationQuote is a quote with an optional author.
type MotivationQuote struct {
	Quote  string `json:"quote" yaml:"quote" toml:"quote" validate:"required"`
	Author string `json:"author,omitempty" yaml:"author,omitempty" toml:"author,omitempty"`
}

// String renders "quote - author", or just the quote when author is empty.
func (q MotivationQuote) String() string {
	if q.Author == "" {
		return q.Quote
	}
	return q.Quote + " - " + q.Author
}

// SkillStats holds the headline skill percentages.
type SkillStats struct {
	ProblemSolving int `json:"problemSolving" yaml:"problem_solving" toml:"problem_solving" validate:"min=0,max=100"`
	MERNStack      int `json:"mernStack" yaml:"mern_stack" toml:"mern_stack" validate:"min=0,max=100"`
	DataStructures int `json:"dataStructures" yaml:"data_structures" toml:"data_structures" validate:"min=0,max=100"`
	Algorithms     int `json:"algorithms" yaml:"algorithms" toml:"algorithms" validate:"min=0,max=100"`
	WebDevelopment int `json:"webDevelopment" yaml:"web_development" toml:"web_development" validate:"min=0,max=100"`
}

// Stats summarises coding activity.
type Stats struct {
	ProblemsSolved int        `json:"problemsSolved" yaml:"problems_solved" toml:"problems_solved" validate:"min=0"`
	EasyProblems   int        `json:"easyProblems" yaml:"easy_problems" toml:"easy_problems" validate:"min=0"`
	MediumProblems int        `json:"mediumProblems" yaml:"medium_problems" toml:"medium_problems" validate:"min=0"`
	HardProblems   int        `json:"hardProblems" yaml:"hard_problems" toml:"hard_problems" validate:"min=0"`
	Languages      []string   `json:"languages" yaml:"languages" toml:"languages"`
	Skills         SkillStats `json:"skills" yaml:"skills" toml:"skills"`
}

// Portfolio is the complete content document.
type Portfolio struct {
	Profile          Profile           `json:"profile" yaml:"profile" toml:"profile"`
	Projects         []Project         `json:"projects" yaml:"projects" toml:"projects" validate:"dive"`
	SkillCategories  []SkillCategory   `json:"skills" yaml:"skills" toml:"skills" validate:"dive"`
	Achievements     []Achievement     `json:"achievements" yaml:"achievements" toml:"achievements" validate:"dive"`
	SocialLinks      []SocialLink      `json:"socialLinks" yaml:"social_links" toml:"social_links" validate:"dive"`
	MotivationQuotes []MotivationQuote `json:"motivationQuotes" yaml:"motivation_quotes" toml:"motivation_quotes" validate:"dive"`
	Stats            Stats             `json:"stats" yaml:"stats" toml:"stats"`
}
