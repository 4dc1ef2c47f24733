package core

import (
	"pkt.systems/pslog"
	"pkt.systems/termfolio/internal/content"
)

// ServiceDeps captures dependencies for the core service. Repository is
// required unless Cache is provided.
type ServiceDeps struct {
	Repository content.Repository
	Cache      *Cache
	Logger     pslog.Logger
}
