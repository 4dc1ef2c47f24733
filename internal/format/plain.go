package format

import (
	"fmt"
	"strings"
	"time"

	"pkt.systems/termfolio/schema"
)

const (
	defaultWidth   = 80
	responseIndent = "  "
	statBarWidth   = 20
	statLabelWidth = 16
	gridGutter     = 2
)

// DefaultPrompt is the prompt shown before input and in entry headers.
const DefaultPrompt = "akhilb@portfolio:~$"

// DefaultWelcome returns the banner printed above the transcript.
func DefaultWelcome() []string {
	return []string{
		"Welcome to Akhil B's Portfolio Terminal v1.0",
		"Type 'help' to see available commands",
	}
}

// PlainRenderer formats responses as marked text lines. Themed renderers
// style lines by marker; Strip removes the markers for plain output.
type PlainRenderer struct {
	// Indent prefixes every response line except ascii art.
	Indent string
}

// NewPlainRenderer returns a renderer that indents responses under their
// transcript header.
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{Indent: responseIndent}
}

// FormatEntry renders the entry header followed by the indented response.
func (p *PlainRenderer) FormatEntry(prompt, command string, resp schema.Response, ts time.Time, width int) []string {
	lines := []string{FormatHeader(prompt, command, ts)}
	return append(lines, p.FormatResponse(resp, width-len(p.Indent))...)
}

// FormatHeader renders "[HH:MM:SS] prompt command".
func FormatHeader(prompt, command string, ts time.Time) string {
	return schema.HeaderMarker + fmt.Sprintf("[%s] %s %s", ts.Format("15:04:05"), prompt, command)
}

// FormatResponse converts a response into indented, marked lines.
func (p *PlainRenderer) FormatResponse(resp schema.Response, width int) []string {
	if width <= 0 {
		width = defaultWidth
	}
	switch resp.Type {
	case schema.ResponseText:
		return p.indent("", splitLines(resp.Text))
	case schema.ResponseList:
		return p.indent("", formatGrid(resp.Items, width))
	case schema.ResponseError:
		lines := splitLines(resp.Text)
		if len(lines) == 0 {
			lines = []string{""}
		}
		lines[0] = "Error: " + lines[0]
		return p.indent(schema.ErrorMarker, lines)
	case schema.ResponseASCIIArt:
		return markLines(schema.ArtMarker, splitLines(strings.Trim(resp.Text, "\n")))
	case schema.ResponseStats:
		return p.formatStats(resp.Stats)
	case schema.ResponseClear:
		return nil
	default:
		return p.indent(schema.ErrorMarker, []string{fmt.Sprintf("Error: unsupported response %q", resp.Type)})
	}
}

// FormatWelcome marks banner lines.
func FormatWelcome(lines []string) []string {
	return markLines(schema.BannerMarker, lines)
}

// FormatBar renders value (clamped to 0..100) as a fixed-width bar.
func FormatBar(value, width int) string {
	value = max(0, min(100, value))
	if width <= 0 {
		width = statBarWidth
	}
	filled := (value*width + 50) / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func (p *PlainRenderer) formatStats(stats *schema.StatsContent) []string {
	if stats == nil {
		return nil
	}
	lines := make([]string, 0, len(stats.Rows)+1)
	lines = append(lines, schema.StatsTitleMarker+p.Indent+stats.Title)
	for _, row := range stats.Rows {
		line := fmt.Sprintf("%-*s %s %3d%%", statLabelWidth, row.Label+":", FormatBar(row.Value, statBarWidth), row.Value)
		lines = append(lines, schema.StatBarMarker+p.Indent+line)
	}
	return lines
}

func formatGrid(items []schema.ListItem, width int) []string {
	if len(items) == 0 {
		return nil
	}
	cell := 0
	for _, item := range items {
		cell = max(cell, len([]rune(item.Name)))
	}
	cell += gridGutter
	cols := 3
	for cols > 1 && cols*cell > width {
		cols--
	}
	var lines []string
	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))
		var b strings.Builder
		for i := start; i < end; i++ {
			name := items[i].Name
			b.WriteString(name)
			if i < end-1 {
				b.WriteString(strings.Repeat(" ", cell-len([]rune(name))))
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

// Strip removes a leading line marker.
func Strip(line string) string {
	for _, marker := range schema.Markers() {
		if strings.HasPrefix(line, marker) {
			return line[len(marker):]
		}
	}
	return line
}

// StripAll removes markers from every line.
func StripAll(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Strip(line)
	}
	return out
}

// Plain renders resp as unmarked, unindented text.
func Plain(resp schema.Response, width int) string {
	return strings.Join(StripAll((&PlainRenderer{}).FormatResponse(resp, width)), "\n")
}

func (p *PlainRenderer) indent(marker string, lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			out[i] = marker
			continue
		}
		out[i] = marker + p.Indent + line
	}
	return out
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func markLines(marker string, lines []string) []string {
	if marker == "" || len(lines) == 0 {
		return lines
	}
	marked := make([]string, 0, len(lines))
	for _, line := range lines {
		marked = append(marked, marker+line)
	}
	return marked
}
