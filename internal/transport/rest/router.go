package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/topicpolicy-backend/internal/transport/middleware"
)

// NewRouter mounts the health checks at the root and the API under /api/v1.
// apiMiddleware wraps only the API routes.
func NewRouter(health *HealthHandler, topics *UserTopicHandler, apiMiddleware ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		for _, mw := range apiMiddleware {
			r.Use(mw)
		}

		r.Patch("/users/me/subscriptions/muted_topics", topics.UpdateMutedTopic)

		r.Get("/user_topics", topics.ListUserTopics)
		r.Post("/user_topics", topics.UpdateUserTopic)
		r.Get("/user_topics/history", topics.ListHistory)

		r.Get("/streams/{stream_id}/topic_counts", topics.TopicCounts)
		r.Get("/streams/{stream_id}/user_topics", topics.ListStreamTopics)
		r.Get("/streams/{stream_id}/visibility_policy", topics.GetUserTopic)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "Invalid API path")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "Method not allowed")
	})

	return r
}
