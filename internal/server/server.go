package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/yatharth-sriv/usergate/internal/handlers"
	"github.com/yatharth-sriv/usergate/internal/middleware"
	"github.com/yatharth-sriv/usergate/internal/store"
)

// New creates a fully-configured chi router with all routes, middleware,
// and handlers wired together. Every handler that touches users shares s.
func New(log zerolog.Logger, s *store.Store) http.Handler {
	r := chi.NewRouter()

	// ── Middleware ───────────────────────────────────────────
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.EscapedRoutePath)

	// ── Handlers ────────────────────────────────────────────
	demoH := handlers.NewDemoHandler()
	usersH := handlers.NewUsersHandler(s)

	// ── Routes ──────────────────────────────────────────────
	demoH.Routes(r)
	usersH.Routes(r)

	return r
}
