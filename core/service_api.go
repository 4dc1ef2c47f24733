package core

import (
	"context"

	"pkt.systems/termfolio/internal/content"
	"pkt.systems/termfolio/schema"
)

// Service is the transport-agnostic API shared by the SSH terminal, the
// local shell and the HTTP handlers.
type Service interface {
	Execute(ctx context.Context, req schema.ExecRequest) (schema.ExecResponse, error)
	Complete(ctx context.Context, prefix string) schema.CompleteResponse
	Themes() schema.ThemesResponse
	DefaultTheme() schema.ThemeName
	Content() content.Repository
	Ready() map[schema.Collection]bool
	WaitReady(ctx context.Context) error
	Close()
}
