package sshserver

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"pkt.systems/termfolio/schema"
)

type lineKind int

const (
	lineNormal lineKind = iota
	lineHeader
	lineError
	lineArt
	lineStatsTitle
	lineStatBar
	lineBanner
)

type lineInfo struct {
	text string
	kind lineKind
}

var lineMarkers = []struct {
	marker string
	kind   lineKind
}{
	{schema.HeaderMarker, lineHeader},
	{schema.ErrorMarker, lineError},
	{schema.ArtMarker, lineArt},
	{schema.StatsTitleMarker, lineStatsTitle},
	{schema.StatBarMarker, lineStatBar},
	{schema.BannerMarker, lineBanner},
}

func classifyLine(raw string) lineInfo {
	for _, m := range lineMarkers {
		if strings.HasPrefix(raw, m.marker) {
			return lineInfo{text: raw[len(m.marker):], kind: m.kind}
		}
	}
	return lineInfo{text: raw, kind: lineNormal}
}

// lineRenderer styles marked transcript lines for one theme and width.
type lineRenderer struct {
	width  int
	theme  tuiTheme
	prompt string
}

// renderTranscript styles raw marked lines. Consecutive art lines are
// centred as one block so boxes stay aligned.
func (r lineRenderer) renderTranscript(raw []string) []string {
	if r.width <= 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for i := 0; i < len(raw); {
		info := classifyLine(raw[i])
		if info.kind != lineArt {
			out = append(out, r.renderLines(info)...)
			i++
			continue
		}
		j := i
		var block []string
		for j < len(raw) {
			next := classifyLine(raw[j])
			if next.kind != lineArt {
				break
			}
			block = append(block, next.text)
			j++
		}
		out = append(out, r.renderArt(block)...)
		i = j
	}
	return out
}

func (r lineRenderer) renderLines(info lineInfo) []string {
	theme := r.theme
	base := theme.base()
	switch info.kind {
	case lineHeader:
		return r.renderHeader(info.text)
	case lineError:
		return wrapStyledLines(info.text, r.width, ansiFgRGB(theme.ErrorFG), base)
	case lineStatsTitle:
		return wrapStyledLines(info.text, r.width, ansiBold, base)
	case lineStatBar:
		return []string{r.renderStatBar(info.text)}
	case lineBanner:
		return wrapStyledLines(info.text, r.width, ansiBold+ansiFgRGB(theme.PromptFG), base)
	case lineArt:
		return r.renderArt([]string{info.text})
	default:
		return wrapPlainLines(info.text, r.width)
	}
}

func (r lineRenderer) renderHeader(text string) []string {
	theme := r.theme
	base := theme.base()
	plain := sanitizeOutputLine(text)
	if runewidth.StringWidth(plain) > r.width {
		return wrapStyledLines(plain, r.width, ansiDim, base)
	}
	stamp, rest, ok := strings.Cut(plain, "] ")
	if !ok {
		return []string{ansiDim + plain + base}
	}
	var b strings.Builder
	b.WriteString(ansiDim + stamp + "]" + base + " ")
	if r.prompt != "" && strings.HasPrefix(rest, r.prompt) {
		b.WriteString(ansiBold + ansiFgRGB(theme.PromptFG) + r.prompt + base)
		rest = strings.TrimPrefix(rest, r.prompt)
	}
	b.WriteString(rest)
	return []string{b.String()}
}

func (r lineRenderer) renderStatBar(text string) string {
	theme := r.theme
	base := theme.base()
	plain := sanitizeOutputLine(text)
	open := strings.IndexByte(plain, '[')
	closing := strings.IndexByte(plain, ']')
	if open < 0 || closing < open {
		return trimToWidth(plain, r.width)
	}
	bar := plain[open+1 : closing]
	filled := strings.Count(bar, "#")
	var b strings.Builder
	b.WriteString(plain[:open+1])
	b.WriteString(ansiBold + bar[:filled] + base)
	b.WriteString(ansiFgRGB(theme.TrackFG) + bar[filled:] + base)
	b.WriteString(plain[closing:])
	return trimANSIToWidth(b.String(), r.width)
}

func (r lineRenderer) renderArt(block []string) []string {
	blockWidth := 0
	for i, line := range block {
		block[i] = sanitizeOutputLine(line)
		blockWidth = max(blockWidth, runewidth.StringWidth(block[i]))
	}
	pad := max(0, (r.width-blockWidth)/2)
	out := make([]string, 0, len(block))
	for _, line := range block {
		if line == "" {
			out = append(out, "")
			continue
		}
		line = trimToWidth(line, r.width-pad)
		out = append(out, strings.Repeat(" ", pad)+ansiBold+line+r.theme.base())
	}
	return out
}

type textToken struct {
	text  string
	space bool
}

func tokenizeText(text string) []textToken {
	if text == "" {
		return nil
	}
	var tokens []textToken
	var buf strings.Builder
	inSpace := false
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		tokens = append(tokens, textToken{text: buf.String(), space: inSpace})
		buf.Reset()
	}
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !inSpace {
				flush()
				inSpace = true
			}
			buf.WriteRune(' ')
			continue
		}
		if inSpace {
			flush()
			inSpace = false
		}
		buf.WriteRune(r)
	}
	flush()
	return tokens
}

// wrapPlainLines word-wraps text to width display cells. Words wider than a
// line are split.
func wrapPlainLines(text string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	sanitized := sanitizeOutputLine(text)
	if sanitized == "" {
		return []string{""}
	}
	tokens := tokenizeText(sanitized)
	lines := make([]string, 0, 4)
	var b strings.Builder
	visible := 0
	suppressLeadingSpace := false
	flush := func(wrapped bool) {
		if b.Len() == 0 {
			return
		}
		lines = append(lines, trimToWidth(b.String(), width))
		b.Reset()
		visible = 0
		suppressLeadingSpace = wrapped
	}
	for _, token := range tokens {
		if token.text == "" {
			continue
		}
		if token.space {
			if visible == 0 && suppressLeadingSpace {
				continue
			}
			spaceLen := len(token.text)
			if visible+spaceLen > width {
				flush(true)
				continue
			}
			b.WriteString(token.text)
			visible += spaceLen
			continue
		}
		wordLen := runewidth.StringWidth(token.text)
		if wordLen > width {
			if visible > 0 {
				flush(true)
			}
			for _, r := range token.text {
				rw := runewidth.RuneWidth(r)
				if visible+rw > width {
					flush(true)
				}
				b.WriteRune(r)
				visible += rw
			}
			suppressLeadingSpace = false
			continue
		}
		if visible+wordLen > width && visible > 0 {
			flush(true)
		}
		b.WriteString(token.text)
		visible += wordLen
		suppressLeadingSpace = false
	}
	flush(false)
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// wrapStyledLines wraps text and wraps each line in style, restoring reset
// afterwards.
func wrapStyledLines(text string, width int, style, reset string) []string {
	lines := wrapPlainLines(text, width)
	if len(lines) == 1 && lines[0] == "" {
		return lines
	}
	styled := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			styled = append(styled, line)
			continue
		}
		styled = append(styled, style+line+reset)
	}
	return styled
}

func sanitizeOutputLine(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(text); {
		ch := text[i]
		if ch == 0x1b {
			i = skipEscape(text, i+1)
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		if r == '\r' {
			i += size
			continue
		}
		if r == '\t' {
			b.WriteString("    ")
			i += size
			continue
		}
		if r < 0x20 || r == 0x7f {
			i += size
			continue
		}
		b.WriteRune(r)
		i += size
	}
	return b.String()
}

func skipEscape(text string, i int) int {
	if i >= len(text) {
		return i
	}
	switch text[i] {
	case '[':
		return skipCSI(text, i+1)
	case ']':
		return skipOSC(text, i+1)
	default:
		return i + 1
	}
}

func skipCSI(text string, i int) int {
	for i < len(text) {
		b := text[i]
		if b >= 0x40 && b <= 0x7e {
			return i + 1
		}
		i++
	}
	return i
}

func skipOSC(text string, i int) int {
	for i < len(text) {
		switch text[i] {
		case 0x07:
			return i + 1
		case 0x1b:
			if i+1 < len(text) && text[i+1] == '\\' {
				return i + 2
			}
		}
		i++
	}
	return i
}

// visibleWidth counts display cells, ignoring escape sequences.
func visibleWidth(text string) int {
	width := 0
	for i := 0; i < len(text); {
		if text[i] == 0x1b {
			i = skipEscape(text, i+1)
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if size == 0 {
			break
		}
		i += size
		width += runewidth.RuneWidth(r)
	}
	return width
}

// trimANSIToWidth cuts text to width display cells, keeping every escape
// sequence so styles stay balanced.
func trimANSIToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	visible := 0
	for i := 0; i < len(text); {
		if text[i] == 0x1b {
			start := i
			i = skipEscape(text, i+1)
			b.WriteString(text[start:i])
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if size == 0 {
			break
		}
		rw := runewidth.RuneWidth(r)
		i += size
		if visible+rw > width {
			continue
		}
		b.WriteRune(r)
		visible += rw
	}
	return b.String()
}

func trimToWidth(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	return runewidth.Truncate(value, width, "")
}
