package main

import (
	"context"

	"pkt.systems/termfolio/sshserver"
)

// watchResize is a no-op on Windows, which has no SIGWINCH.
func watchResize(ctx context.Context, fd int) <-chan sshserver.Size {
	return nil
}
