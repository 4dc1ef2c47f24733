package sshserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/internal/format"
	"pkt.systems/termfolio/internal/transcript"
	"pkt.systems/termfolio/schema"
)

// ErrIdleTimeout is returned by Terminal.Run when no key arrived within the
// configured idle timeout.
var ErrIdleTimeout = errors.New("terminal idle timeout")

const keyHint = "Tab complete  PgUp/PgDn scroll  Ctrl-D exit"

// Size is a terminal window size in cells.
type Size struct {
	Width  int
	Height int
}

// TerminalConfig configures one interactive terminal.
type TerminalConfig struct {
	SessionID   schema.SessionID
	Prompt      string
	Welcome     []string
	Theme       schema.ThemeName
	HistoryMax  int
	IdleTimeout time.Duration
	Size        Size
	Now         func() time.Time
}

// Terminal is the full-screen portfolio terminal. It runs over any
// io.ReadWriter: an SSH channel or a local tty in raw mode.
type Terminal struct {
	rw       io.ReadWriter
	screen   *screen
	session  *transcript.Session
	renderer *format.PlainRenderer
	editor   lineEditor

	prompt  string
	welcome []string
	idle    time.Duration
	now     func() time.Time

	ctx          context.Context
	started      time.Time
	lastInput    time.Time
	width        int
	height       int
	scrollOffset int
	notice       string
}

// NewTerminal builds a terminal that executes lines through exec.
func NewTerminal(rw io.ReadWriter, exec transcript.Executor, cfg TerminalConfig) *Terminal {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if strings.TrimSpace(cfg.Prompt) == "" {
		cfg.Prompt = format.DefaultPrompt
	}
	if cfg.Welcome == nil {
		cfg.Welcome = format.DefaultWelcome()
	}
	t := &Terminal{
		rw:     rw,
		screen: newScreen(rw),
		session: transcript.New(exec, transcript.Config{
			SessionID:  cfg.SessionID,
			Theme:      cfg.Theme,
			HistoryMax: cfg.HistoryMax,
			Now:        cfg.Now,
		}),
		renderer: format.NewPlainRenderer(),
		prompt:   cfg.Prompt,
		welcome:  cfg.Welcome,
		idle:     cfg.IdleTimeout,
		now:      cfg.Now,
	}
	t.SetSize(cfg.Size.Width, cfg.Size.Height)
	return t
}

// SetSize updates the window size. Non-positive values fall back to 80x24.
func (t *Terminal) SetSize(width, height int) {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	t.width = width
	t.height = height
}

// Session exposes the transcript driver.
func (t *Terminal) Session() *transcript.Session {
	return t.session
}

func (t *Terminal) log() pslog.Logger {
	return pslog.Ctx(t.ctx)
}

// Run draws the terminal and processes keys until the input ends, the user
// exits, ctx is cancelled or the idle timeout fires.
func (t *Terminal) Run(ctx context.Context, resize <-chan Size) error {
	if ctx == nil {
		ctx = context.Background()
	}
	t.ctx = ctx
	t.started = t.now()
	t.lastInput = t.started
	t.screen.EnterAltScreen()
	defer t.screen.ExitAltScreen()

	t.render()
	t.log().Info("terminal session start", "width", t.width, "height", t.height, "theme", t.session.Theme())

	keys := make(chan key, 16)
	go readKeys(t.rw, keys)

	clock := time.NewTicker(time.Second)
	defer clock.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case k, ok := <-keys:
			if !ok {
				return nil
			}
			t.lastInput = t.now()
			if t.handleKey(k) {
				return nil
			}
		case size, ok := <-resize:
			if !ok {
				resize = nil
				continue
			}
			t.SetSize(size.Width, size.Height)
			t.log().Debug("terminal resize", "width", t.width, "height", t.height)
		case <-clock.C:
			if t.idle > 0 && t.now().Sub(t.lastInput) >= t.idle {
				t.log().Info("terminal exit", "reason", "idle timeout", "idle", t.idle)
				return ErrIdleTimeout
			}
		}
		t.render()
	}
}

func (t *Terminal) handleKey(k key) bool {
	switch k.kind {
	case keyCtrlD:
		if t.editor.Len() == 0 {
			t.log().Info("terminal exit", "reason", "ctrl-d")
			return true
		}
		t.editor.Delete()
	case keyCtrlC:
		t.editor.Clear()
	case keyCtrlL:
		t.session.Clear()
		t.scrollOffset = 0
		t.notice = ""
	case keyEnter:
		t.submit()
	case keyRune:
		t.scrollOffset = 0
		t.editor.InsertRune(k.r)
	case keyBackspace:
		t.editor.Backspace()
	case keyDelete:
		t.editor.Delete()
	case keyLeft:
		t.editor.MoveLeft()
	case keyRight:
		t.editor.MoveRight()
	case keyHome, keyCtrlA:
		t.editor.MoveStart()
	case keyEnd, keyCtrlE:
		t.editor.MoveEnd()
	case keyAltB:
		t.editor.MoveWordLeft()
	case keyAltF:
		t.editor.MoveWordRight()
	case keyCtrlW, keyAltBackspace:
		t.editor.DeleteWordBackward()
	case keyAltD:
		t.editor.DeleteWordForward()
	case keyCtrlU:
		t.editor.KillLineStart()
	case keyCtrlK:
		t.editor.KillLineEnd()
	case keyTab:
		t.scrollOffset = 0
		if line, ok := t.session.Complete(t.ctx, t.editor.String()); ok {
			t.editor.SetString(line)
		}
	case keyUp:
		if line, ok := t.session.HistoryUp(); ok {
			t.editor.SetString(line)
		}
	case keyDown:
		if line, ok := t.session.HistoryDown(); ok {
			t.editor.SetString(line)
		}
	case keyPageUp:
		t.scroll(1)
	case keyPageDown:
		t.scroll(-1)
	}
	return false
}

func (t *Terminal) submit() {
	line := t.editor.String()
	t.editor.Clear()
	t.scrollOffset = 0
	t.notice = ""
	before := t.session.Theme()
	entry, ok, err := t.session.Submit(t.ctx, line)
	if err != nil {
		t.notice = err.Error()
		t.log().Warn("terminal command failed", "err", err)
		return
	}
	if !ok {
		return
	}
	if theme := t.session.Theme(); theme != before {
		t.log().Debug("terminal theme applied", "from", before, "to", theme)
	}
	t.log().Trace("terminal command", "command", entry.Command, "type", entry.Response.Type)
}

func (t *Terminal) scroll(direction int) {
	page := max(1, t.viewHeight()-1)
	total := len(t.transcriptLines())
	limit := max(0, total-t.viewHeight())
	t.scrollOffset = max(0, min(limit, t.scrollOffset+page*direction))
}

// rawLines builds the marked transcript: welcome banner, then every entry
// followed by a blank separator.
func (t *Terminal) rawLines() []string {
	lines := format.FormatWelcome(t.welcome)
	lines = append(lines, "")
	for _, entry := range t.session.Entries() {
		lines = append(lines, t.renderer.FormatEntry(t.prompt, entry.Command, entry.Response, entry.Time, t.width)...)
		lines = append(lines, "")
	}
	if t.notice != "" {
		lines = append(lines, schema.ErrorMarker+"Error: "+t.notice)
	}
	return lines
}

func (t *Terminal) transcriptLines() []string {
	r := lineRenderer{width: t.width, theme: themeForName(t.session.Theme()), prompt: t.prompt}
	return r.renderTranscript(t.rawLines())
}

func (t *Terminal) inputPrefix() string {
	return t.prompt + " "
}

func (t *Terminal) viewHeight() int {
	inputLines, _, _ := renderInputLines(t.inputPrefix(), t.editor.String(), t.editor.cursor, t.width)
	return max(0, t.height-2-len(inputLines))
}

func (t *Terminal) render() {
	width := t.width
	height := t.height
	theme := themeForName(t.session.Theme())
	base := theme.base()

	lines := make([]string, 0, height)
	title := strings.TrimSpace(strings.TrimSuffix(t.prompt, "$"))
	lines = append(lines, renderBar(title, t.session.Theme().DisplayName(), width, theme))

	prefix := ansiBold + ansiFgRGB(theme.PromptFG) + t.prompt + base + " "
	inputLines, cursorRow, cursorCol := renderInputLines(prefix, t.editor.String(), t.editor.cursor, width)
	viewHeight := max(0, height-2-len(inputLines))

	for _, line := range renderViewport(t.transcriptLines(), viewHeight, t.scrollOffset) {
		lines = append(lines, base+line)
	}
	inputRow := len(lines)
	for _, line := range inputLines {
		lines = append(lines, base+line)
	}
	lines = append(lines, renderBar("Uptime: "+formatUptime(t.now().Sub(t.started)), keyHint, width, theme))

	if err := t.screen.Render(lines, inputRow+cursorRow, cursorCol); err != nil {
		t.log().Warn("terminal render failed", "err", err)
	}
}

// renderViewport selects height lines ending offset lines above the bottom.
func renderViewport(lines []string, height, offset int) []string {
	if height <= 0 {
		return nil
	}
	end := len(lines) - max(0, offset)
	end = max(0, min(len(lines), end))
	start := max(0, end-height)
	out := make([]string, 0, height)
	out = append(out, lines[start:end]...)
	for len(out) < height {
		out = append(out, "")
	}
	return out
}

// renderBar draws a full-width chrome bar with left and right labels.
func renderBar(left, right string, width int, theme tuiTheme) string {
	left = " " + left
	right += " "
	gap := width - visibleWidth(left) - visibleWidth(right)
	if gap < 1 {
		right = ""
		gap = width - visibleWidth(left)
	}
	text := left + strings.Repeat(" ", max(0, gap)) + right
	return theme.chrome() + trimToWidth(text, width)
}

func formatUptime(d time.Duration) string {
	d = max(0, d)
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// renderInputLines wraps prefix+input to width and returns the 1-based
// cursor row and column within the returned lines.
func renderInputLines(prefix, input string, cursor, width int) ([]string, int, int) {
	inputRunes := []rune(input)
	cursor = max(0, min(len(inputRunes), cursor))
	prefixWidth := visibleWidth(prefix)
	if width <= 0 {
		width = prefixWidth + len(inputRunes) + 1
	}
	prefixVisible := prefix
	if prefixWidth > width {
		prefixVisible = trimANSIToWidth(prefix, width)
		prefixWidth = visibleWidth(prefixVisible)
	}
	availableFirst := max(1, width-prefixWidth)
	availableOther := max(1, width)

	lines := []string{}
	lineRunes := make([]rune, 0, availableFirst)
	row := 0
	col := 0
	cursorRow := 1
	cursorCol := prefixWidth + 1
	currentAvailable := availableFirst

	flushLine := func() {
		prefixStr := prefixVisible
		if row > 0 {
			prefixStr = ""
		}
		lines = append(lines, prefixStr+string(lineRunes))
		row++
		lineRunes = lineRunes[:0]
		col = 0
		currentAvailable = availableOther
	}
	placeCursor := func() {
		pfx := prefixWidth
		if row > 0 {
			pfx = 0
		}
		cursorRow = row + 1
		cursorCol = pfx + col + 1
	}

	for i, r := range inputRunes {
		if col >= currentAvailable {
			flushLine()
		}
		if i == cursor {
			placeCursor()
		}
		lineRunes = append(lineRunes, r)
		col++
	}
	if cursor == len(inputRunes) {
		if col >= currentAvailable {
			flushLine()
		}
		placeCursor()
	}
	flushLine()
	cursorCol = max(1, min(width, cursorCol))
	return lines, cursorRow, cursorCol
}
