package sshserver

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

type keyKind int

const (
	keyRune keyKind = iota
	keyEnter
	keyBackspace
	keyDelete
	keyLeft
	keyRight
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
	keyCtrlA
	keyCtrlE
	keyCtrlW
	keyCtrlD
	keyCtrlC
	keyCtrlL
	keyTab
	keyAltB
	keyAltF
	keyAltD
	keyAltBackspace
	keyUp
	keyDown
	keyCtrlU
	keyCtrlK
)

type key struct {
	kind keyKind
	r    rune
}

// controlKeys maps single C0 bytes to keys. CR and ESC are handled separately.
var controlKeys = map[byte]keyKind{
	'\n': keyEnter,
	0x7f: keyBackspace,
	0x08: keyBackspace,
	0x01: keyCtrlA,
	0x05: keyCtrlE,
	0x15: keyCtrlU,
	0x0b: keyCtrlK,
	0x17: keyCtrlW,
	0x04: keyCtrlD,
	0x03: keyCtrlC,
	0x0c: keyCtrlL,
	0x09: keyTab,
}

// csiKeys maps CSI parameter+final bytes (after "ESC [") to keys.
var csiKeys = map[string]keyKind{
	"A":  keyUp,
	"B":  keyDown,
	"C":  keyRight,
	"D":  keyLeft,
	"H":  keyHome,
	"F":  keyEnd,
	"1~": keyHome,
	"7~": keyHome,
	"4~": keyEnd,
	"8~": keyEnd,
	"3~": keyDelete,
	"5~": keyPageUp,
	"6~": keyPageDown,
}

// ss3Keys maps the byte after "ESC O" (application cursor mode) to keys.
var ss3Keys = map[byte]keyKind{
	'A': keyUp,
	'B': keyDown,
	'C': keyRight,
	'D': keyLeft,
	'H': keyHome,
	'F': keyEnd,
}

// altKeys maps the byte after a bare ESC (meta prefix) to keys.
var altKeys = map[byte]keyKind{
	'b':  keyAltB,
	'B':  keyAltB,
	'f':  keyAltF,
	'F':  keyAltF,
	'd':  keyAltD,
	'D':  keyAltD,
	0x7f: keyAltBackspace,
}

const maxCSILen = 8

// readKeys decodes terminal input into keys until r fails, then closes out.
// Unknown sequences are dropped.
func readKeys(r io.Reader, out chan<- key) {
	defer close(out)
	br := bufio.NewReader(r)
	afterCR := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			return
		}
		// CR LF from a cooked client is one Enter.
		if afterCR && b == '\n' {
			afterCR = false
			continue
		}
		afterCR = b == '\r'
		switch {
		case b == '\r':
			out <- key{kind: keyEnter}
		case b == 0x1b:
			if k, ok := decodeEscape(br); ok {
				out <- k
			}
		case b < utf8.RuneSelf:
			if kind, ok := controlKeys[b]; ok {
				out <- key{kind: kind}
			} else if b >= 0x20 {
				out <- key{kind: keyRune, r: rune(b)}
			}
		default:
			_ = br.UnreadByte()
			rn, _, err := br.ReadRune()
			if err != nil {
				return
			}
			out <- key{kind: keyRune, r: rn}
		}
	}
}

func decodeEscape(br *bufio.Reader) (key, bool) {
	b, err := br.ReadByte()
	if err != nil {
		return key{}, false
	}
	var kind keyKind
	var ok bool
	switch b {
	case '[':
		seq, complete := readCSISequence(br)
		if !complete {
			return key{}, false
		}
		kind, ok = csiKeys[seq]
	case 'O':
		final, err := br.ReadByte()
		if err != nil {
			return key{}, false
		}
		kind, ok = ss3Keys[final]
	default:
		kind, ok = altKeys[b]
	}
	return key{kind: kind}, ok
}

// readCSISequence reads up to and including the final byte of a CSI
// sequence. Final bytes are '~' or an ASCII letter.
func readCSISequence(br *bufio.Reader) (string, bool) {
	var seq strings.Builder
	for seq.Len() <= maxCSILen {
		b, err := br.ReadByte()
		if err != nil {
			return "", false
		}
		seq.WriteByte(b)
		if b == '~' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') {
			return seq.String(), true
		}
	}
	return "", false
}

// lineEditor is a single-line input buffer with a rune cursor.
type lineEditor struct {
	buf    []rune
	cursor int
}

func (e *lineEditor) String() string { return string(e.buf) }

func (e *lineEditor) Len() int { return len(e.buf) }

func (e *lineEditor) Clear() {
	e.buf = nil
	e.cursor = 0
}

// SetString replaces the buffer and moves the cursor to the end. Newlines
// become spaces since commands are single-line.
func (e *lineEditor) SetString(value string) {
	e.buf = []rune(strings.ReplaceAll(value, "\n", " "))
	e.cursor = len(e.buf)
}

func (e *lineEditor) InsertRune(r rune) {
	e.cursor = clamp(e.cursor, 0, len(e.buf))
	e.buf = append(e.buf, 0)
	copy(e.buf[e.cursor+1:], e.buf[e.cursor:])
	e.buf[e.cursor] = r
	e.cursor++
}

func (e *lineEditor) Backspace() {
	if e.cursor > 0 {
		e.cut(e.cursor-1, e.cursor)
	}
}

func (e *lineEditor) Delete() {
	if e.cursor >= 0 && e.cursor < len(e.buf) {
		e.cut(e.cursor, e.cursor+1)
	}
}

func (e *lineEditor) MoveLeft()  { e.cursor = clamp(e.cursor-1, 0, len(e.buf)) }
func (e *lineEditor) MoveRight() { e.cursor = clamp(e.cursor+1, 0, len(e.buf)) }
func (e *lineEditor) MoveStart() { e.cursor = 0 }
func (e *lineEditor) MoveEnd()   { e.cursor = len(e.buf) }

func (e *lineEditor) MoveWordLeft()  { e.cursor = e.wordBefore(e.cursor) }
func (e *lineEditor) MoveWordRight() { e.cursor = e.wordAfter(e.cursor) }

func (e *lineEditor) DeleteWordBackward() { e.cut(e.wordBefore(e.cursor), e.cursor) }
func (e *lineEditor) DeleteWordForward()  { e.cut(e.cursor, e.wordAfter(e.cursor)) }

func (e *lineEditor) KillLineStart() { e.cut(0, e.cursor) }
func (e *lineEditor) KillLineEnd()   { e.cut(e.cursor, len(e.buf)) }

// cut removes buf[from:to] and leaves the cursor at from.
func (e *lineEditor) cut(from, to int) {
	from = clamp(from, 0, len(e.buf))
	to = clamp(to, from, len(e.buf))
	if from == to {
		return
	}
	e.buf = append(e.buf[:from], e.buf[to:]...)
	e.cursor = from
}

// wordBefore returns the start of the word left of i, skipping blanks first.
func (e *lineEditor) wordBefore(i int) int {
	i = clamp(i, 0, len(e.buf))
	for i > 0 && isSpace(e.buf[i-1]) {
		i--
	}
	for i > 0 && !isSpace(e.buf[i-1]) {
		i--
	}
	return i
}

// wordAfter returns the end of the word right of i, skipping blanks first.
func (e *lineEditor) wordAfter(i int) int {
	i = clamp(i, 0, len(e.buf))
	for i < len(e.buf) && isSpace(e.buf[i]) {
		i++
	}
	for i < len(e.buf) && !isSpace(e.buf[i]) {
		i++
	}
	return i
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
