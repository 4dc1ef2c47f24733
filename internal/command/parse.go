package command

import (
	"strings"
)

// Command represents a parsed terminal line.
type Command struct {
	Name string
	Args []string
	Raw  string
}

// Parse lower-cases and splits a line on whitespace. The first field is the
// command name.
func Parse(input string) Command {
	raw := strings.ToLower(strings.TrimSpace(input))
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Command{Raw: raw}
	}
	args := []string{}
	if len(fields) > 1 {
		args = fields[1:]
	}
	return Command{
		Name: fields[0],
		Args: args,
		Raw:  raw,
	}
}

// Arg returns the i-th argument or "".
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}
