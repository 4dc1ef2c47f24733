package logx

import (
	"context"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/schema"
)

type contextKey int

const (
	sessionKey contextKey = iota
	remoteKey
)

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithSession annotates the context logger with the session id unless the
// context already carries it.
func WithSession(ctx context.Context, sessionID schema.SessionID) pslog.Logger {
	log := pslog.Ctx(ctx)
	if sessionID != "" {
		if current, ok := ctx.Value(sessionKey).(schema.SessionID); ok && current == sessionID {
			return log
		}
		log = log.With("session", sessionID)
	}
	return log
}

// WithSessionRemote annotates the context logger with session and remote address.
func WithSessionRemote(ctx context.Context, sessionID schema.SessionID, remote string) pslog.Logger {
	log := WithSession(ctx, sessionID)
	if remote != "" {
		if current, ok := ctx.Value(remoteKey).(string); ok && current == remote {
			return log
		}
		log = log.With("remote", remote)
	}
	return log
}

// WithRemote annotates log with the peer address when known.
func WithRemote(log pslog.Logger, remote string) pslog.Logger {
	if remote != "" {
		log = log.With("remote", remote)
	}
	return log
}

// WithTheme annotates log with the active terminal theme.
func WithTheme(log pslog.Logger, theme schema.ThemeName) pslog.Logger {
	if theme != "" {
		log = log.With("theme", theme)
	}
	return log
}

// ContextWithSession stores the session marker on the context for log de-duplication.
func ContextWithSession(ctx context.Context, sessionID schema.SessionID) context.Context {
	if ctx == nil || sessionID == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey, sessionID)
}

// ContextWithRemote stores the remote marker on the context for log de-duplication.
func ContextWithRemote(ctx context.Context, remote string) context.Context {
	if ctx == nil || remote == "" {
		return ctx
	}
	return context.WithValue(ctx, remoteKey, remote)
}

// ContextWithSessionLogger attaches the logger and session/remote markers to the context.
func ContextWithSessionLogger(ctx context.Context, log pslog.Logger, sessionID schema.SessionID, remote string) context.Context {
	ctx = pslog.ContextWithLogger(ctx, log)
	return ContextWithRemote(ContextWithSession(ctx, sessionID), remote)
}

// CopyContextFields copies session/remote markers from src to dst.
func CopyContextFields(dst context.Context, src context.Context) context.Context {
	if src == nil {
		return dst
	}
	if id, ok := src.Value(sessionKey).(schema.SessionID); ok && id != "" {
		dst = ContextWithSession(dst, id)
	}
	if remote, ok := src.Value(remoteKey).(string); ok && remote != "" {
		dst = ContextWithRemote(dst, remote)
	}
	return dst
}
