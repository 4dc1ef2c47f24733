package command

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/schema"
)

func TestExecuteAuditLog(t *testing.T) {
	capture := newLogCapture(t)
	ctx := pslog.ContextWithLogger(context.Background(), newDebugLogger(capture))

	interp := NewInterpreter(Config{})
	interp.Execute(ctx, "  Sudo rm -rf /", schema.DefaultTheme, nil)

	entries := capture.Entries()
	if !hasAuditCommand(entries, "terminal", "sudo rm -rf /") {
		t.Fatalf("expected audit log for terminal command, got %d entries", len(entries))
	}
	if !hasMessage(entries, "info", "command request") {
		t.Fatalf("expected command request log")
	}
}

func TestExecuteAuditLogDisabled(t *testing.T) {
	capture := newLogCapture(t)
	ctx := pslog.ContextWithLogger(context.Background(), newDebugLogger(capture))

	interp := NewInterpreter(Config{DisableAuditLogging: true})
	interp.Execute(ctx, "whoami", schema.DefaultTheme, nil)

	entries := capture.Entries()
	if hasAuditCommand(entries, "terminal", "whoami") {
		t.Fatalf("did not expect audit log when disabled")
	}
	if !hasMessage(entries, "info", "command request") {
		t.Fatalf("expected command request log")
	}
}

func newDebugLogger(capture *logCapture) pslog.Logger {
	return pslog.NewWithOptions(capture, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		VerboseFields: true,
		MinLevel:      pslog.DebugLevel,
	})
}

type logEntry struct {
	Level   string
	Message string
	Fields  map[string]any
	Raw     string
}

type logCapture struct {
	t     *testing.T
	mu    sync.Mutex
	buf   bytes.Buffer
	lines []string
}

func newLogCapture(t *testing.T) *logCapture {
	t.Helper()
	return &logCapture{t: t}
}

func (c *logCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.buf.Write(p)
	for {
		data := c.buf.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx == -1 {
			break
		}
		line := string(data[:idx])
		c.lines = append(c.lines, line)
		c.buf.Next(idx + 1)
	}
	return len(p), nil
}

func (c *logCapture) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buf.Len() > 0 {
		c.lines = append(c.lines, c.buf.String())
		c.buf.Reset()
	}
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *logCapture) Entries() []logEntry {
	lines := c.Lines()
	entries := make([]logEntry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, parseLogEntry(line))
	}
	return entries
}

func parseLogEntry(line string) logEntry {
	payload := map[string]any{}
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		return logEntry{Raw: line}
	}
	level := ""
	if value, ok := payload["level"].(string); ok {
		level = value
	} else if value, ok := payload["lvl"].(string); ok {
		level = value
	}
	message := ""
	if value, ok := payload["message"].(string); ok {
		message = value
	} else if value, ok := payload["msg"].(string); ok {
		message = value
	}
	return logEntry{Level: level, Message: message, Fields: payload, Raw: line}
}

func hasMessage(entries []logEntry, level, message string) bool {
	for _, entry := range entries {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}

func hasAuditCommand(entries []logEntry, commandType, command string) bool {
	for _, entry := range entries {
		if entry.Level != "debug" || entry.Message != "audit command" {
			continue
		}
		if entry.Fields == nil {
			continue
		}
		if entry.Fields["command_type"] != commandType {
			continue
		}
		if entry.Fields["command"] != command {
			continue
		}
		return true
	}
	return false
}
