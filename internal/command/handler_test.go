package command

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"pkt.systems/termfolio/internal/content"
	"pkt.systems/termfolio/schema"
)

type stubContent struct {
	StaticContent
	projectsReady     bool
	skillsReady       bool
	achievementsReady bool
	motivationReady   bool
	statsReady        bool
}

func (s stubContent) Projects() ([]schema.Project, bool) {
	return s.Portfolio.Projects, s.projectsReady
}

func (s stubContent) SkillCategories() ([]schema.SkillCategory, bool) {
	return s.Portfolio.SkillCategories, s.skillsReady
}

func (s stubContent) Achievements() ([]schema.Achievement, bool) {
	return s.Portfolio.Achievements, s.achievementsReady
}

func (s stubContent) Motivation() (schema.MotivationQuote, bool) {
	return s.Quote, s.motivationReady
}

func (s stubContent) Stats() (schema.Stats, bool) {
	return s.Portfolio.Stats, s.statsReady
}

func readyContent() StaticContent {
	p := content.Default()
	return StaticContent{Portfolio: p, Quote: p.MotivationQuotes[2]}
}

func newInterpreter() *Interpreter {
	return NewInterpreter(Config{DisableAuditLogging: true})
}

func TestExecuteUnknownCommandEchoesToken(t *testing.T) {
	interp := newInterpreter()
	for _, line := range []string{"foo", "  FOO bar ", "lsx"} {
		resp, theme := interp.Execute(context.Background(), line, schema.ThemeAmberCRT, readyContent())
		want := "Command not found: " + strings.Fields(strings.ToLower(line))[0] + ". Type 'help' for available commands."
		if resp.Type != schema.ResponseError || resp.Text != want {
			t.Fatalf("%q: unexpected response %+v", line, resp)
		}
		if resp.ErrorKind != schema.ErrorNotFound {
			t.Fatalf("%q: expected not-found kind, got %q", line, resp.ErrorKind)
		}
		if theme != schema.ThemeAmberCRT {
			t.Fatalf("%q: theme changed to %q", line, theme)
		}
	}
}

func TestExecuteHelpIsIndependentOfThemeAndContent(t *testing.T) {
	interp := newInterpreter()
	first, _ := interp.Execute(context.Background(), "help", schema.ThemeNeonGreen, readyContent())
	second, _ := interp.Execute(context.Background(), "HELP", "bogus", nil)
	if first.Type != schema.ResponseText || first.Text != second.Text {
		t.Fatalf("help differs: %q vs %q", first.Text, second.Text)
	}
	if !strings.HasPrefix(first.Text, "Available commands:\n  help       - Show this help message") {
		t.Fatalf("unexpected help text: %q", first.Text)
	}
	if strings.Contains(first.Text, "sudo") {
		t.Fatalf("help should not advertise sudo")
	}
}

func TestExecuteThemeCyclesWithPeriodThree(t *testing.T) {
	interp := newInterpreter()
	theme := schema.ThemeNeonGreen
	want := []struct {
		theme schema.ThemeName
		text  string
	}{
		{schema.ThemeMatrixBlue, "Theme changed to: MATRIX BLUE"},
		{schema.ThemeAmberCRT, "Theme changed to: AMBER CRT"},
		{schema.ThemeNeonGreen, "Theme changed to: NEON GREEN"},
	}
	for i, w := range want {
		var resp schema.Response
		resp, theme = interp.Execute(context.Background(), "theme", theme, nil)
		if theme != w.theme || resp.Text != w.text {
			t.Fatalf("step %d: got %q / %q, want %q / %q", i, theme, resp.Text, w.theme, w.text)
		}
	}

	_, next := interp.Execute(context.Background(), "theme", "unknown", nil)
	if next != schema.ThemeNeonGreen {
		t.Fatalf("unknown theme should advance to first, got %q", next)
	}
}

func TestExecuteCat(t *testing.T) {
	interp := newInterpreter()
	resp, _ := interp.Execute(context.Background(), "cat about.txt", schema.DefaultTheme, readyContent())
	if resp.Type != schema.ResponseText || resp.Text != content.DefaultProfile().About {
		t.Fatalf("unexpected about response: %+v", resp)
	}

	resp, _ = interp.Execute(context.Background(), "cat secrets.txt", schema.DefaultTheme, readyContent())
	if resp.Type != schema.ResponseError || resp.Text != "File not found: secrets.txt" {
		t.Fatalf("unexpected missing file response: %+v", resp)
	}

	resp, _ = interp.Execute(context.Background(), "cat", schema.DefaultTheme, readyContent())
	if resp.Text != "File not found: (no file specified)" {
		t.Fatalf("unexpected response without file: %+v", resp)
	}
}

func TestExecuteCatUsesLoadedProfile(t *testing.T) {
	interp := newInterpreter()
	c := readyContent()
	c.Portfolio.Profile = schema.Profile{About: "custom about"}
	resp, _ := interp.Execute(context.Background(), "cat about.txt", schema.DefaultTheme, c)
	if resp.Text != "custom about" {
		t.Fatalf("expected loaded about text, got %q", resp.Text)
	}
	resp, _ = interp.Execute(context.Background(), "whoami", schema.DefaultTheme, c)
	if resp.Text != "Akhil B — MERN Stack Developer | DSA Enthusiast" {
		t.Fatalf("empty loaded field should fall back, got %q", resp.Text)
	}
}

func TestExecuteChangeDirectory(t *testing.T) {
	interp := newInterpreter()
	resp, _ := interp.Execute(context.Background(), "cd projects", schema.DefaultTheme, readyContent())
	lines := strings.Split(resp.Text, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 project lines, got %d: %q", len(lines), resp.Text)
	}
	if lines[0] != "1. E-Commerce Website - Full-stack MERN store with login, cart, checkout, filtering, and JWT authentication" {
		t.Fatalf("unexpected first project line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "4. Portfolio v1 - ") {
		t.Fatalf("unexpected last project line: %q", lines[3])
	}

	resp, _ = interp.Execute(context.Background(), "cd skills", schema.DefaultTheme, readyContent())
	if !strings.HasPrefix(resp.Text, "Languages:\n  - JavaScript (90%)\n  - C++ (85%)") {
		t.Fatalf("unexpected skills text: %q", resp.Text)
	}
	if strings.Count(resp.Text, "\n\n") != 5 {
		t.Fatalf("expected 6 categories separated by blank lines: %q", resp.Text)
	}

	resp, _ = interp.Execute(context.Background(), "cd achievements", schema.DefaultTheme, readyContent())
	if !strings.HasPrefix(resp.Text, "1. 300+ DSA Problems Solved\n   Solved 300+") {
		t.Fatalf("unexpected achievements text: %q", resp.Text)
	}

	resp, _ = interp.Execute(context.Background(), "cd /etc", schema.DefaultTheme, readyContent())
	if resp.Text != "Directory not found: /etc" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	resp, _ = interp.Execute(context.Background(), "cd", schema.DefaultTheme, readyContent())
	if resp.Text != "Directory not found: (no directory specified)" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestExecuteLoadingErrors(t *testing.T) {
	interp := newInterpreter()
	notReady := stubContent{StaticContent: readyContent()}
	cases := []struct {
		line string
		want string
	}{
		{"cd projects", "Loading projects..."},
		{"cd skills", "Loading skills..."},
		{"cd achievements", "Loading achievements..."},
		{"motivation", "Loading motivation..."},
		{"stats", "Loading stats..."},
	}
	for _, tc := range cases {
		resp, _ := interp.Execute(context.Background(), tc.line, schema.DefaultTheme, notReady)
		if resp.Type != schema.ResponseError || resp.Text != tc.want {
			t.Fatalf("%q: got %+v, want %q", tc.line, resp, tc.want)
		}
		if !errors.Is(resp.Err(), schema.ErrNotReady) {
			t.Fatalf("%q: expected ErrNotReady, got %v", tc.line, resp.Err())
		}
	}

	resp, _ := interp.Execute(context.Background(), "stats", schema.DefaultTheme, nil)
	if resp.Text != "Loading stats..." {
		t.Fatalf("nil content should report loading, got %+v", resp)
	}
}

func TestExecuteMotivationAndStats(t *testing.T) {
	interp := newInterpreter()
	resp, _ := interp.Execute(context.Background(), "motivation", schema.DefaultTheme, readyContent())
	if resp.Text != "First, solve the problem. Then, write the code. - John Johnson" {
		t.Fatalf("unexpected motivation: %q", resp.Text)
	}

	anon := readyContent()
	anon.Quote = schema.MotivationQuote{Quote: "Ship it."}
	resp, _ = interp.Execute(context.Background(), "motivation", schema.DefaultTheme, anon)
	if resp.Text != "Ship it." {
		t.Fatalf("quote without author should have no suffix, got %q", resp.Text)
	}

	resp, _ = interp.Execute(context.Background(), "stats", schema.DefaultTheme, readyContent())
	if resp.Type != schema.ResponseStats || resp.Stats == nil {
		t.Fatalf("expected stats response, got %+v", resp)
	}
	if resp.Stats.Title != "Coding Statistics" {
		t.Fatalf("unexpected stats title %q", resp.Stats.Title)
	}
	want := []schema.StatRow{
		{Label: "Problem Solving", Value: 90},
		{Label: "MERN Stack", Value: 85},
		{Label: "Data Structures", Value: 85},
		{Label: "Algorithms", Value: 85},
		{Label: "Web Development", Value: 90},
	}
	if !reflect.DeepEqual(resp.Stats.Rows, want) {
		t.Fatalf("unexpected rows: %+v", resp.Stats.Rows)
	}
}

func TestExecuteSudo(t *testing.T) {
	interp := newInterpreter()
	resp, _ := interp.Execute(context.Background(), "sudo rm -rf /", schema.DefaultTheme, nil)
	if resp.Type != schema.ResponseASCIIArt || !strings.Contains(resp.Text, "ACCESS DENIED!") {
		t.Fatalf("expected ascii art, got %+v", resp)
	}
	resp, _ = interp.Execute(context.Background(), "SUDO RM -RF /home", schema.DefaultTheme, nil)
	if resp.Type != schema.ResponseASCIIArt {
		t.Fatalf("trigger should match as a substring, got %+v", resp)
	}
	for _, line := range []string{"sudo", "sudo ls", "sudo rm -rf"} {
		resp, _ = interp.Execute(context.Background(), line, schema.DefaultTheme, nil)
		if resp.Type != schema.ResponseError || resp.Text != "Permission denied" {
			t.Fatalf("%q: expected permission denied, got %+v", line, resp)
		}
		if !errors.Is(resp.Err(), schema.ErrPermissionDenied) {
			t.Fatalf("%q: expected ErrPermissionDenied", line)
		}
	}
}

func TestExecuteStaticTexts(t *testing.T) {
	interp := newInterpreter()
	def := content.DefaultProfile()
	cases := map[string]string{
		"resume":          def.Resume,
		"open resume.pdf": def.Resume,
		"leetcode":        def.LeetCode,
		"gfg":             def.GFG,
		"whoami":          "Akhil B — MERN Stack Developer | DSA Enthusiast",
	}
	for line, want := range cases {
		resp, _ := interp.Execute(context.Background(), line, schema.DefaultTheme, nil)
		if resp.Type != schema.ResponseText || resp.Text != want {
			t.Fatalf("%q: unexpected response %+v", line, resp)
		}
	}
}

func TestExecuteListAndClear(t *testing.T) {
	interp := newInterpreter()
	resp, _ := interp.Execute(context.Background(), "ls", schema.DefaultTheme, nil)
	names := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		names = append(names, item.Name)
	}
	want := []string{"about.txt", "skills/", "projects/", "achievements/", "resume.pdf"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("unexpected ls names: %v", names)
	}
	if resp.Items[0].Kind != schema.ItemFile || resp.Items[1].Kind != schema.ItemFolder {
		t.Fatalf("unexpected ls kinds: %+v", resp.Items)
	}

	for i := 0; i < 2; i++ {
		resp, _ = interp.Execute(context.Background(), "clear", schema.DefaultTheme, nil)
		if !resp.IsClear() {
			t.Fatalf("expected clear response, got %+v", resp)
		}
	}
}

func TestSuggest(t *testing.T) {
	cases := []struct {
		prefix string
		want   []string
	}{
		{"he", []string{"help"}},
		{"", []string{}},
		{"c", []string{"cat", "cd", "clear"}},
		{"S", []string{"stats", "sudo"}},
		{"zz", []string{}},
	}
	for _, tc := range cases {
		got := Suggest(tc.prefix)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Suggest(%q) = %v, want %v", tc.prefix, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	cmd := Parse("  CD   Projects  extra ")
	if cmd.Name != "cd" || !reflect.DeepEqual(cmd.Args, []string{"projects", "extra"}) {
		t.Fatalf("unexpected parse: %+v", cmd)
	}
	if cmd.Raw != "cd   projects  extra" {
		t.Fatalf("unexpected raw: %q", cmd.Raw)
	}
	if got := Parse("   "); got.Name != "" || got.Arg(0) != "" {
		t.Fatalf("unexpected parse of blank line: %+v", got)
	}
}

func TestVocabularyIsCopied(t *testing.T) {
	v := Vocabulary()
	if len(v) != 14 || v[0] != "help" || v[13] != "sudo" {
		t.Fatalf("unexpected vocabulary: %v", v)
	}
	v[0] = "mutated"
	if Vocabulary()[0] != "help" {
		t.Fatalf("vocabulary should be immutable")
	}
}
