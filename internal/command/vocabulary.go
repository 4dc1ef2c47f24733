package command

import "strings"

var vocabulary = []string{
	"help", "ls", "cat", "cd", "open", "resume", "leetcode", "gfg",
	"clear", "theme", "whoami", "motivation", "stats", "sudo",
}

// Vocabulary returns the known command names in display order.
func Vocabulary() []string {
	out := make([]string, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// Suggest returns the commands starting with the lower-cased prefix, in
// vocabulary order. An empty prefix yields no suggestions.
func Suggest(prefix string) []string {
	if prefix == "" {
		return []string{}
	}
	prefix = strings.ToLower(prefix)
	out := []string{}
	for _, name := range vocabulary {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}
