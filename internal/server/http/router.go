package httpserver

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Server 在 Handler 外面包一层访问日志
type Server struct {
	h http.Handler
}

func NewServer(h http.Handler) *Server {
	return &Server{h: h}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.h.ServeHTTP(rec, r)

	ev := log.Info()
	if rec.status >= http.StatusInternalServerError {
		ev = log.Error()
	} else if rec.status >= http.StatusBadRequest {
		ev = log.Warn()
	}
	ev.Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", rec.status).
		Dur("took", time.Since(start)).
		Msg("http")
}
