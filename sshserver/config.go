package sshserver

import (
	"time"

	"pkt.systems/termfolio/schema"
)

// Config defines SSH server settings.
type Config struct {
	Addr        string
	HostKeyPath string
	Prompt      string
	Welcome     []string
	Theme       schema.ThemeName
	HistoryMax  int
	// IdleTimeout closes sessions without input. Zero disables it.
	IdleTimeout time.Duration
}
