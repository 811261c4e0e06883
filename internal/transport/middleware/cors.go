package middleware

import (
	"github.com/go-chi/cors"

	"github.com/heartmarshall/topicpolicy-backend/internal/config"
)

// CORS returns middleware that answers preflight requests and decorates
// responses for the origins listed in cfg.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
