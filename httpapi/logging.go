package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/internal/logx"
)

const requestIDHeader = "X-Request-ID"

type responseRecorder struct {
	status int
	bytes  int64
	writer http.ResponseWriter
}

func (r *responseRecorder) Header() http.Header {
	return r.writer.Header()
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.writer.WriteHeader(status)
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.writer.Write(p)
	r.bytes += int64(n)
	return n, err
}

func (r *responseRecorder) Flush() {
	if f, ok := r.writer.(http.Flusher); ok {
		f.Flush()
	}
}

// withRequestLogging tags each request with an id, exposes a request-scoped
// logger to handlers and logs one line per request.
func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)
		remote := clientIP(r)
		logger := logx.WithRemote(pslog.Ctx(r.Context()).With("request_id", requestID), remote)
		ctx := logx.ContextWithRemote(pslog.ContextWithLogger(r.Context(), logger), remote)

		rec := &responseRecorder{writer: w}
		next.ServeHTTP(rec, r.WithContext(ctx))
		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		path := r.URL.Path
		if r.URL.RawQuery != "" {
			path = path + "?" + r.URL.RawQuery
		}
		logger.Info("http request", "method", r.Method, "path", path, "status", status, "bytes", rec.bytes, "duration_ms", time.Since(start).Milliseconds())
		logger.Debug("http request details", "ua", r.UserAgent())
	})
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	return r.RemoteAddr
}
