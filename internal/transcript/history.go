package transcript

import "strings"

const defaultHistoryMax = 200

// historyBuffer keeps submitted lines, oldest first, capped at max.
type historyBuffer struct {
	entries []string
	max     int
}

func newHistory(max int) *historyBuffer {
	if max <= 0 {
		max = defaultHistoryMax
	}
	return &historyBuffer{max: max}
}

func (h *historyBuffer) Append(entry string) bool {
	if h == nil {
		return false
	}
	if strings.TrimSpace(entry) == "" {
		return false
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	return true
}

func (h *historyBuffer) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

func (h *historyBuffer) At(i int) string {
	return h.entries[i]
}

func (h *historyBuffer) Entries() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.entries...)
}
