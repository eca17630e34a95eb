package httpapi

import (
	"context"
	"net/http"
	"time"
)

// lockContext derives a request-scoped context bounded by the
// server's configured lock timeout, so a stuck working-directory lock
// fails the request instead of hanging it indefinitely.
func (s *Server) lockContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := s.LockTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}
