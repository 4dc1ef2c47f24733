package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"pkt.systems/pslog"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// ListenAndServe starts an HTTP server and shuts it down on context
// cancellation. When ln is nil the server listens on addr.
func ListenAndServe(ctx context.Context, addr string, ln net.Listener, handler http.Handler) error {
	logger := pslog.Ctx(ctx)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          pslog.LogLoggerWithLevel(logger, pslog.ErrorLevel),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		if ln != nil {
			errCh <- server.Serve(ln)
			return
		}
		errCh <- server.ListenAndServe()
	}()
	if ln != nil {
		addr = ln.Addr().String()
	}
	logger.Info("http listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
