package middleware

import (
	"strings"

	"github.com/go-chi/cors"

	"github.com/heartmarshall/topics-backend/internal/config"
)

// exposedHeaders are readable by browser clients on cross-origin responses.
// Location is set on 201 Created.
var exposedHeaders = []string{"Location", RequestIDHeader}

// CORS returns middleware that handles Cross-Origin Resource Sharing,
// including preflight OPTIONS requests, from the comma-separated lists in cfg.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   splitList(cfg.AllowedOrigins),
		AllowedMethods:   splitList(cfg.AllowedMethods),
		AllowedHeaders:   splitList(cfg.AllowedHeaders),
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
