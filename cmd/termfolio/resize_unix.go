//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"pkt.systems/termfolio/sshserver"
)

// watchResize reports the size of fd every time the window changes.
func watchResize(ctx context.Context, fd int) <-chan sshserver.Size {
	out := make(chan sshserver.Size, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	go func() {
		defer signal.Stop(sig)
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sig:
				width, height, err := term.GetSize(fd)
				if err != nil {
					continue
				}
				select {
				case out <- sshserver.Size{Width: width, Height: height}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
