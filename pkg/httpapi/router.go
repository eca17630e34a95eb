package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/quietstack/cadschedule/pkg/artifactstore"
)

// Server holds the dependencies every handler needs: the locked
// working-directory store and the process logger, built once and
// injected, matching the pack's zap convention.
type Server struct {
	Store  *artifactstore.Store
	Logger *zap.Logger
	// LockTimeout bounds how long a request waits on the
	// working-directory lock before failing with a 500.
	LockTimeout time.Duration
}

// NewRouter builds the /v1 router: request-id, panic-recovery, access
// logging, and CORS middleware wrap the four stage endpoints plus
// /health.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware(s.Logger))
	r.Use(accessLogMiddleware(s.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/v1", func(v1 chi.Router) {
		v1.Post("/clean", s.handleClean)
		v1.Post("/duration", s.handleDuration)
		v1.Post("/sequence", s.handleSequence)
		v1.Post("/critical", s.handleCritical)
	})

	return r
}
