// Package transcript drives one interactive terminal session: it submits
// lines, keeps the transcript and the input history, and handles tab
// completion.
package transcript

import (
	"context"
	"errors"
	"strings"
	"time"

	"pkt.systems/termfolio/schema"
)

// Executor runs terminal lines. core.Service satisfies it.
type Executor interface {
	Execute(ctx context.Context, req schema.ExecRequest) (schema.ExecResponse, error)
	Complete(ctx context.Context, prefix string) schema.CompleteResponse
}

// Entry is one transcript record.
type Entry struct {
	Command  string
	Response schema.Response
	Time     time.Time
}

// Config configures a Session.
type Config struct {
	SessionID  schema.SessionID
	Theme      schema.ThemeName
	HistoryMax int
	Now        func() time.Time
}

// Session is owned by a single goroutine and is not safe for concurrent use.
type Session struct {
	exec      Executor
	sessionID schema.SessionID
	theme     schema.ThemeName
	now       func() time.Time

	entries []Entry
	history *historyBuffer
	cursor  int
}

// New constructs a session with an empty transcript.
func New(exec Executor, cfg Config) *Session {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Theme == "" {
		cfg.Theme = schema.DefaultTheme
	}
	return &Session{
		exec:      exec,
		sessionID: cfg.SessionID,
		theme:     cfg.Theme,
		now:       cfg.Now,
		history:   newHistory(cfg.HistoryMax),
		cursor:    -1,
	}
}

// Submit executes line and records the result. Blank lines are ignored and
// report false. A clear response empties the transcript after it is recorded.
func (s *Session) Submit(ctx context.Context, line string) (Entry, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, false, nil
	}
	resp, err := s.exec.Execute(ctx, schema.ExecRequest{
		Line:      line,
		Theme:     s.theme,
		SessionID: s.sessionID,
	})
	if err != nil {
		if errors.Is(err, schema.ErrEmptyCommand) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}
	entry := Entry{Command: line, Response: resp.Response, Time: s.now()}
	s.entries = append(s.entries, entry)
	s.history.Append(line)
	s.cursor = -1
	if resp.Theme != "" {
		s.theme = resp.Theme
	}
	if resp.Response.IsClear() {
		s.entries = nil
	}
	return entry, true, nil
}

// HistoryUp moves the cursor towards older lines and returns the line to
// show. It reports false when there is no history.
func (s *Session) HistoryUp() (string, bool) {
	n := s.history.Len()
	if n == 0 {
		return "", false
	}
	if s.cursor == -1 {
		s.cursor = n - 1
	} else {
		s.cursor = max(0, s.cursor-1)
	}
	return s.history.At(s.cursor), true
}

// HistoryDown moves the cursor towards newer lines. Moving past the newest
// line resets the cursor and returns an empty input. It reports false when
// the cursor is not in the history.
func (s *Session) HistoryDown() (string, bool) {
	if s.cursor == -1 {
		return "", false
	}
	next := s.cursor + 1
	if next >= s.history.Len() {
		s.cursor = -1
		return "", true
	}
	s.cursor = next
	return s.history.At(s.cursor), true
}

// Complete handles the tab key for input. A single suggestion is returned as
// the replacement input. Several suggestions are appended to the transcript
// as a name list and the input is left alone.
func (s *Session) Complete(ctx context.Context, input string) (string, bool) {
	suggestions := s.exec.Complete(ctx, input).Suggestions
	switch len(suggestions) {
	case 0:
		return "", false
	case 1:
		return suggestions[0], true
	default:
		s.entries = append(s.entries, Entry{
			Command:  input,
			Response: schema.NameList(suggestions),
			Time:     s.now(),
		})
		return "", false
	}
}

// Clear empties the transcript without running a command.
func (s *Session) Clear() {
	s.entries = nil
}

// Entries returns a copy of the transcript.
func (s *Session) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Len returns the transcript length.
func (s *Session) Len() int { return len(s.entries) }

// History returns a copy of the submitted lines, oldest first.
func (s *Session) History() []string { return s.history.Entries() }

// Theme returns the current theme.
func (s *Session) Theme() schema.ThemeName { return s.theme }

// SetTheme overrides the current theme.
func (s *Session) SetTheme(theme schema.ThemeName) {
	if theme != "" {
		s.theme = theme
	}
}

// ID returns the session id.
func (s *Session) ID() schema.SessionID { return s.sessionID }
