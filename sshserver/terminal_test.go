package sshserver

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"pkt.systems/termfolio/internal/command"
	"pkt.systems/termfolio/schema"
)

type stubExecutor struct {
	mu    sync.Mutex
	lines []string
}

func (s *stubExecutor) Execute(_ context.Context, req schema.ExecRequest) (schema.ExecResponse, error) {
	s.mu.Lock()
	s.lines = append(s.lines, req.Line)
	s.mu.Unlock()
	theme := req.Theme
	switch command.Parse(req.Line).Name {
	case "clear":
		return schema.ExecResponse{Response: schema.ClearResponse(), Theme: theme}, nil
	case "theme":
		return schema.ExecResponse{Response: schema.TextResponse("Theme changed"), Theme: schema.NextTheme(theme)}, nil
	case "boom":
		return schema.ExecResponse{}, errors.New("backend unavailable")
	}
	return schema.ExecResponse{Response: schema.TextResponse("ran " + req.Line), Theme: theme}, nil
}

func (s *stubExecutor) Complete(_ context.Context, prefix string) schema.CompleteResponse {
	return schema.CompleteResponse{Suggestions: command.Suggest(prefix)}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type pipeRW struct {
	io.Reader
	io.Writer
}

func newTestTerminal(exec *stubExecutor) *Terminal {
	term := NewTerminal(pipeRW{Reader: strings.NewReader(""), Writer: io.Discard}, exec, TerminalConfig{
		Size: Size{Width: 80, Height: 24},
	})
	term.ctx = context.Background()
	return term
}

func typeLine(term *Terminal, line string) {
	for _, r := range line {
		term.handleKey(key{kind: keyRune, r: r})
	}
	term.handleKey(key{kind: keyEnter})
}

func TestTerminalRunExecutesAndExits(t *testing.T) {
	in, inW := io.Pipe()
	out := &syncBuffer{}
	exec := &stubExecutor{}
	term := NewTerminal(pipeRW{Reader: in, Writer: out}, exec, TerminalConfig{
		Size: Size{Width: 80, Height: 24},
	})
	go func() {
		_, _ = io.WriteString(inW, "whoami\r\x04")
	}()
	done := make(chan error, 1)
	go func() { done <- term.Run(context.Background(), nil) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("terminal did not exit")
	}
	_ = inW.Close()

	screen := out.String()
	for _, want := range []string{"Welcome to Akhil B's Portfolio Terminal v1.0", "ran whoami", "Uptime: 00:00:00", "NEON GREEN"} {
		if !strings.Contains(screen, want) {
			t.Fatalf("expected screen to contain %q", want)
		}
	}
	if !strings.HasSuffix(screen, "\x1b[?1049l\x1b[?25h") {
		t.Fatalf("expected alt screen to be restored")
	}
}

func TestTerminalIdleTimeout(t *testing.T) {
	in, inW := io.Pipe()
	defer inW.Close()
	term := NewTerminal(pipeRW{Reader: in, Writer: io.Discard}, &stubExecutor{}, TerminalConfig{
		IdleTimeout: time.Nanosecond,
	})
	done := make(chan error, 1)
	go func() { done <- term.Run(context.Background(), nil) }()
	select {
	case err := <-done:
		if !errors.Is(err, ErrIdleTimeout) {
			t.Fatalf("expected idle timeout, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("idle timeout did not fire")
	}
}

func TestTerminalContextCancelStops(t *testing.T) {
	in, inW := io.Pipe()
	defer inW.Close()
	term := NewTerminal(pipeRW{Reader: in, Writer: io.Discard}, &stubExecutor{}, TerminalConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- term.Run(ctx, nil) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("terminal did not stop")
	}
}

func TestTerminalHistoryNavigation(t *testing.T) {
	term := newTestTerminal(&stubExecutor{})
	typeLine(term, "help")
	typeLine(term, "skills")

	term.handleKey(key{kind: keyUp})
	if got := term.editor.String(); got != "skills" {
		t.Fatalf("expected skills, got %q", got)
	}
	term.handleKey(key{kind: keyUp})
	term.handleKey(key{kind: keyUp})
	if got := term.editor.String(); got != "help" {
		t.Fatalf("expected clamp at help, got %q", got)
	}
	term.handleKey(key{kind: keyDown})
	if got := term.editor.String(); got != "skills" {
		t.Fatalf("expected skills, got %q", got)
	}
	term.handleKey(key{kind: keyDown})
	if got := term.editor.String(); got != "" {
		t.Fatalf("expected empty input past the end, got %q", got)
	}
}

func TestTerminalTabCompletion(t *testing.T) {
	term := newTestTerminal(&stubExecutor{})
	for _, r := range "wh" {
		term.handleKey(key{kind: keyRune, r: r})
	}
	term.handleKey(key{kind: keyTab})
	if got := term.editor.String(); got != "whoami" {
		t.Fatalf("expected whoami, got %q", got)
	}

	term.editor.SetString("s")
	term.handleKey(key{kind: keyTab})
	if got := term.editor.String(); got != "s" {
		t.Fatalf("expected input unchanged, got %q", got)
	}
	entries := term.Session().Entries()
	if len(entries) != 1 || entries[0].Response.Type != schema.ResponseList {
		t.Fatalf("expected a suggestion list entry, got %+v", entries)
	}
}

func TestTerminalClearAndTheme(t *testing.T) {
	exec := &stubExecutor{}
	term := newTestTerminal(exec)
	typeLine(term, "theme")
	if got := term.Session().Theme(); got != schema.ThemeMatrixBlue {
		t.Fatalf("expected matrix-blue, got %q", got)
	}
	typeLine(term, "clear")
	if term.Session().Len() != 0 {
		t.Fatalf("expected empty transcript after clear")
	}
	typeLine(term, "about")
	term.handleKey(key{kind: keyCtrlL})
	if term.Session().Len() != 0 {
		t.Fatalf("expected ctrl-l to clear the transcript")
	}
	typeLine(term, "   ")
	if len(exec.lines) != 3 {
		t.Fatalf("expected blank input to be ignored, got %v", exec.lines)
	}
}

func TestTerminalShowsExecutorErrors(t *testing.T) {
	term := newTestTerminal(&stubExecutor{})
	typeLine(term, "boom")
	lines := term.rawLines()
	if last := lines[len(lines)-1]; last != schema.ErrorMarker+"Error: backend unavailable" {
		t.Fatalf("expected error notice, got %q", last)
	}
	typeLine(term, "help")
	for _, line := range term.rawLines() {
		if strings.Contains(line, "backend unavailable") {
			t.Fatalf("expected notice to be cleared")
		}
	}
}

func TestTerminalCtrlDExitsOnlyWhenEmpty(t *testing.T) {
	term := newTestTerminal(&stubExecutor{})
	term.editor.SetString("ab")
	term.editor.MoveStart()
	if term.handleKey(key{kind: keyCtrlD}) {
		t.Fatalf("expected ctrl-d with input to delete")
	}
	if got := term.editor.String(); got != "b" {
		t.Fatalf("expected delete under cursor, got %q", got)
	}
	term.handleKey(key{kind: keyCtrlC})
	if !term.handleKey(key{kind: keyCtrlD}) {
		t.Fatalf("expected ctrl-d on empty input to exit")
	}
}

func TestTerminalScrollClamps(t *testing.T) {
	term := newTestTerminal(&stubExecutor{})
	term.SetSize(80, 8)
	for range 10 {
		typeLine(term, "projects")
	}
	total := len(term.transcriptLines())
	view := term.viewHeight()
	for range 50 {
		term.handleKey(key{kind: keyPageUp})
	}
	if term.scrollOffset != total-view {
		t.Fatalf("expected offset %d, got %d", total-view, term.scrollOffset)
	}
	term.handleKey(key{kind: keyRune, r: 'x'})
	if term.scrollOffset != 0 {
		t.Fatalf("expected typing to return to the bottom")
	}
}

func TestRenderViewportOffsets(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}
	got := renderViewport(lines, 2, 0)
	if strings.Join(got, ",") != "d,e" {
		t.Fatalf("unexpected tail: %q", got)
	}
	got = renderViewport(lines, 2, 2)
	if strings.Join(got, ",") != "b,c" {
		t.Fatalf("unexpected scrolled view: %q", got)
	}
	got = renderViewport(lines[:1], 3, 0)
	if len(got) != 3 || got[0] != "a" || got[2] != "" {
		t.Fatalf("expected padded view, got %q", got)
	}
}

func TestRenderInputLinesWraps(t *testing.T) {
	lines, row, col := renderInputLines("> ", "abcdefghij", 10, 6)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d (%q)", len(lines), lines)
	}
	if lines[0] != "> abcd" || lines[1] != "efghij" || lines[2] != "" {
		t.Fatalf("unexpected lines: %q", lines)
	}
	if row != 3 || col != 1 {
		t.Fatalf("expected cursor at 3,1, got %d,%d", row, col)
	}
}

func TestRenderBarFillsWidth(t *testing.T) {
	theme := themeForName(schema.ThemeAmberCRT)
	bar := renderBar("akhilb@portfolio:~", "AMBER CRT", 40, theme)
	if got := visibleWidth(bar); got != 40 {
		t.Fatalf("expected width 40, got %d", got)
	}
	narrow := renderBar("akhilb@portfolio:~", "AMBER CRT", 12, theme)
	if strings.Contains(narrow, "AMBER") {
		t.Fatalf("expected right label to be dropped when narrow")
	}
}

func TestFormatUptime(t *testing.T) {
	if got := formatUptime(3*time.Hour + 4*time.Minute + 5*time.Second); got != "03:04:05" {
		t.Fatalf("unexpected uptime %q", got)
	}
	if got := formatUptime(-time.Second); got != "00:00:00" {
		t.Fatalf("unexpected uptime %q", got)
	}
}
