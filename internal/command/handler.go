package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/internal/content"
	"pkt.systems/termfolio/schema"
)

const helpText = `Available commands:
  help       - Show this help message
  ls         - List files and directories
  cat        - Display file contents (e.g., cat about.txt)
  cd         - Change directory (e.g., cd projects)
  open       - Open file (e.g., open resume.pdf)
  resume     - Display resume information
  leetcode   - View LeetCode profile
  gfg        - View GeeksforGeeks profile
  theme      - Toggle terminal theme
  whoami     - Display user information
  motivation - Get a random DSA quote
  stats      - Show coding statistics
  clear      - Clear terminal screen`

const sudoArt = `
    ⚠️  ACCESS DENIED! ⚠️
    
    ╔═══════════════════════════╗
    ║  Nice try! 😉             ║
    ║                           ║
    ║  You don't have           ║
    ║  permission to            ║
    ║  destroy the universe.    ║
    ╚═══════════════════════════╝
    
    System integrity: PROTECTED`

const sudoTrigger = "rm -rf /"

const statsTitle = "Coding Statistics"

// HelpText returns the text printed by the help command.
func HelpText() string { return helpText }

// Config configures the interpreter.
type Config struct {
	// Profile supplies static texts when the content profile is not loaded
	// or leaves a field empty. Zero fields fall back to the built-in profile.
	Profile             schema.Profile
	DisableAuditLogging bool
}

// Interpreter maps terminal lines to responses.
type Interpreter struct {
	cfg Config
}

// NewInterpreter constructs an interpreter.
func NewInterpreter(cfg Config) *Interpreter {
	def := content.DefaultProfile()
	p := &cfg.Profile
	for _, f := range []struct {
		dst      *string
		fallback string
	}{
		{&p.Name, def.Name},
		{&p.Handle, def.Handle},
		{&p.About, def.About},
		{&p.Whoami, def.Whoami},
		{&p.Resume, def.Resume},
		{&p.LeetCode, def.LeetCode},
		{&p.GFG, def.GFG},
	} {
		if strings.TrimSpace(*f.dst) == "" {
			*f.dst = f.fallback
		}
	}
	return &Interpreter{cfg: cfg}
}

// Execute runs line against c and returns the response and the resulting
// theme. It never fails; every problem is reported as an error response.
func (i *Interpreter) Execute(ctx context.Context, line string, theme schema.ThemeName, c Content) (schema.Response, schema.ThemeName) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c == nil {
		c = emptyContent{}
	}
	cmd := Parse(line)
	log := pslog.Ctx(ctx)
	if !i.cfg.DisableAuditLogging {
		log.Debug("audit command", "command_type", "terminal", "command", cmd.Raw)
	}
	log = log.With("command", cmd.Name, "args", len(cmd.Args))
	log.Info("command request")

	switch cmd.Name {
	case "help":
		return schema.TextResponse(helpText), theme
	case "ls":
		return i.handleList(), theme
	case "cat":
		return i.handleCat(cmd, c), theme
	case "cd":
		return i.handleChangeDir(cmd, c), theme
	case "open", "resume":
		return schema.TextResponse(i.profile(c).Resume), theme
	case "leetcode":
		return schema.TextResponse(i.profile(c).LeetCode), theme
	case "gfg":
		return schema.TextResponse(i.profile(c).GFG), theme
	case "theme":
		next := schema.NextTheme(theme)
		return schema.TextResponse("Theme changed to: " + next.DisplayName()), next
	case "whoami":
		return schema.TextResponse(i.profile(c).Whoami), theme
	case "motivation":
		return i.handleMotivation(c), theme
	case "stats":
		return i.handleStats(c), theme
	case "sudo":
		return i.handleSudo(cmd), theme
	case "clear":
		return schema.ClearResponse(), theme
	default:
		log.Warn("command rejected", "reason", "unknown")
		return schema.ErrorResponse(schema.ErrorNotFound,
			fmt.Sprintf("Command not found: %s. Type 'help' for available commands.", cmd.Name)), theme
	}
}

func (i *Interpreter) handleList() schema.Response {
	return schema.ListResponse(
		schema.ListItem{Name: "about.txt", Kind: schema.ItemFile},
		schema.ListItem{Name: "skills/", Kind: schema.ItemFolder},
		schema.ListItem{Name: "projects/", Kind: schema.ItemFolder},
		schema.ListItem{Name: "achievements/", Kind: schema.ItemFolder},
		schema.ListItem{Name: "resume.pdf", Kind: schema.ItemFile},
	)
}

func (i *Interpreter) handleCat(cmd Command, c Content) schema.Response {
	if cmd.Arg(0) == "about.txt" {
		return schema.TextResponse(i.profile(c).About)
	}
	return schema.ErrorResponse(schema.ErrorNotFound, "File not found: "+orPlaceholder(cmd.Arg(0), "(no file specified)"))
}

func (i *Interpreter) handleChangeDir(cmd Command, c Content) schema.Response {
	switch cmd.Arg(0) {
	case "projects":
		projects, ok := c.Projects()
		if !ok {
			return loading("projects")
		}
		return schema.TextResponse(formatProjects(projects))
	case "skills":
		categories, ok := c.SkillCategories()
		if !ok {
			return loading("skills")
		}
		return schema.TextResponse(formatSkills(categories))
	case "achievements":
		achievements, ok := c.Achievements()
		if !ok {
			return loading("achievements")
		}
		return schema.TextResponse(formatAchievements(achievements))
	default:
		return schema.ErrorResponse(schema.ErrorNotFound, "Directory not found: "+orPlaceholder(cmd.Arg(0), "(no directory specified)"))
	}
}

func (i *Interpreter) handleMotivation(c Content) schema.Response {
	quote, ok := c.Motivation()
	if !ok {
		return loading("motivation")
	}
	return schema.TextResponse(quote.String())
}

func (i *Interpreter) handleStats(c Content) schema.Response {
	stats, ok := c.Stats()
	if !ok {
		return loading("stats")
	}
	return schema.StatsResponse(statsTitle, []schema.StatRow{
		{Label: "Problem Solving", Value: stats.Skills.ProblemSolving},
		{Label: "MERN Stack", Value: stats.Skills.MERNStack},
		{Label: "Data Structures", Value: stats.Skills.DataStructures},
		{Label: "Algorithms", Value: stats.Skills.Algorithms},
		{Label: "Web Development", Value: stats.Skills.WebDevelopment},
	})
}

func (i *Interpreter) handleSudo(cmd Command) schema.Response {
	if strings.Contains(strings.Join(cmd.Args, " "), sudoTrigger) {
		return schema.ASCIIArtResponse(sudoArt)
	}
	return schema.ErrorResponse(schema.ErrorPermissionDenied, "Permission denied")
}

// profile merges the loaded profile over the configured one field by field.
func (i *Interpreter) profile(c Content) schema.Profile {
	out := i.cfg.Profile
	loaded, ok := c.Profile()
	if !ok {
		return out
	}
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&out.Name, loaded.Name},
		{&out.Handle, loaded.Handle},
		{&out.About, loaded.About},
		{&out.Whoami, loaded.Whoami},
		{&out.Resume, loaded.Resume},
		{&out.LeetCode, loaded.LeetCode},
		{&out.GFG, loaded.GFG},
	} {
		if strings.TrimSpace(f.src) != "" {
			*f.dst = f.src
		}
	}
	return out
}

func formatProjects(projects []schema.Project) string {
	lines := make([]string, 0, len(projects))
	for idx, p := range projects {
		summary, _, _ := strings.Cut(p.Description, ".")
		lines = append(lines, strconv.Itoa(idx+1)+". "+p.Title+" - "+summary)
	}
	return strings.Join(lines, "\n")
}

func formatSkills(categories []schema.SkillCategory) string {
	blocks := make([]string, 0, len(categories))
	for _, cat := range categories {
		lines := make([]string, 0, len(cat.Skills)+1)
		lines = append(lines, cat.Category+":")
		for _, s := range cat.Skills {
			lines = append(lines, fmt.Sprintf("  - %s (%d%%)", s.Name, s.Proficiency))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func formatAchievements(achievements []schema.Achievement) string {
	blocks := make([]string, 0, len(achievements))
	for idx, a := range achievements {
		blocks = append(blocks, fmt.Sprintf("%d. %s\n   %s", idx+1, a.Title, a.Description))
	}
	return strings.Join(blocks, "\n\n")
}

func loading(noun string) schema.Response {
	return schema.ErrorResponse(schema.ErrorNotReady, "Loading "+noun+"...")
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
