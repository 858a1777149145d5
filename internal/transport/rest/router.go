package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/topics-backend/internal/config"
	"github.com/heartmarshall/topics-backend/internal/transport/middleware"
)

// RouterDeps bundles what NewRouter needs.
type RouterDeps struct {
	Log    *slog.Logger
	Topics *TopicHandler
	Health *HealthHandler
	CORS   config.CORSConfig
	// Limiter throttles the write routes. Nil disables rate limiting.
	Limiter *middleware.RateLimiter
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		middleware.RequestID(),
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(deps.CORS),
		chimw.Compress(5, "application/json"),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeBadRequest, "method not allowed")
	})

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)

	var write []func(http.Handler) http.Handler
	if deps.Limiter != nil {
		write = append(write, deps.Limiter.Limit())
	}
	r.Route(TopicsPath, func(r chi.Router) {
		deps.Topics.Routes(r, write...)
	})

	return r
}
