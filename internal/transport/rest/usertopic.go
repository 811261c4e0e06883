package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
	"github.com/heartmarshall/topicpolicy-backend/internal/service/usertopic"
)

//go:generate moq -out user_topic_service_mock_test.go -pkg rest . userTopicService

type userTopicService interface {
	UpdateMutedTopic(ctx context.Context, input usertopic.UpdateMutedTopicInput) error
	UpdateUserTopic(ctx context.Context, input usertopic.UpdateUserTopicInput) (*domain.UserTopic, error)
	GetStreamTopicCounts(ctx context.Context, streamID int64) (*domain.TopicCounts, error)
	GetUserTopic(ctx context.Context, input usertopic.GetUserTopicInput) (*domain.UserTopic, error)
	ListUserTopics(ctx context.Context) ([]domain.UserTopic, error)
	ListStreamTopics(ctx context.Context, streamID int64) ([]domain.UserTopic, error)
	ListHistory(ctx context.Context) ([]domain.AuditRecord, error)
}

// UserTopicHandler serves the topic visibility policy endpoints.
type UserTopicHandler struct {
	svc userTopicService
	log *slog.Logger
}

// NewUserTopicHandler creates a UserTopicHandler.
func NewUserTopicHandler(svc userTopicService, logger *slog.Logger) *UserTopicHandler {
	return &UserTopicHandler{svc: svc, log: logger.With("handler", "user_topic")}
}

type updateMutedTopicRequest struct {
	StreamID *int64  `json:"stream_id"`
	Stream   *string `json:"stream"`
	Topic    string  `json:"topic"`
	Op       string  `json:"op" validate:"required"`
}

type updateUserTopicRequest struct {
	StreamID         int64  `json:"stream_id"         validate:"required"`
	Topic            string `json:"topic"`
	VisibilityPolicy *int   `json:"visibility_policy" validate:"required"`
}

type userTopicResponse struct {
	StreamID         int64  `json:"stream_id"`
	TopicName        string `json:"topic_name"`
	VisibilityPolicy int    `json:"visibility_policy"`
	LastUpdated      int64  `json:"last_updated"`
}

type auditRecordResponse struct {
	ID        string         `json:"id"`
	StreamID  int64          `json:"stream_id"`
	TopicName string         `json:"topic_name"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes"`
	CreatedAt int64          `json:"created_at"`
}

// UpdateMutedTopic handles PATCH /api/v1/users/me/subscriptions/muted_topics.
func (h *UserTopicHandler) UpdateMutedTopic(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[updateMutedTopicRequest](r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	err = h.svc.UpdateMutedTopic(r.Context(), usertopic.UpdateMutedTopicInput{
		StreamID:   req.StreamID,
		StreamName: req.Stream,
		Topic:      req.Topic,
		Op:         domain.MuteOp(req.Op),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeSuccess(w, nil)
}

// UpdateUserTopic handles POST /api/v1/user_topics.
func (h *UserTopicHandler) UpdateUserTopic(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[updateUserTopicRequest](r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	_, err = h.svc.UpdateUserTopic(r.Context(), usertopic.UpdateUserTopicInput{
		StreamID:         req.StreamID,
		Topic:            req.Topic,
		VisibilityPolicy: *req.VisibilityPolicy,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeSuccess(w, nil)
}

// GetUserTopic handles GET /api/v1/streams/{stream_id}/visibility_policy?topic=.
func (h *UserTopicHandler) GetUserTopic(w http.ResponseWriter, r *http.Request) {
	streamID, ok := streamIDParam(w, r)
	if !ok {
		return
	}

	ut, err := h.svc.GetUserTopic(r.Context(), usertopic.GetUserTopicInput{
		StreamID: streamID,
		Topic:    r.URL.Query().Get("topic"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeSuccess(w, map[string]any{"user_topic": toUserTopicResponse(*ut)})
}

// ListUserTopics handles GET /api/v1/user_topics.
func (h *UserTopicHandler) ListUserTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.ListUserTopics(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]userTopicResponse, len(topics))
	for i, ut := range topics {
		out[i] = toUserTopicResponse(ut)
	}
	writeSuccess(w, map[string]any{"user_topics": out})
}

// ListStreamTopics handles GET /api/v1/streams/{stream_id}/user_topics.
func (h *UserTopicHandler) ListStreamTopics(w http.ResponseWriter, r *http.Request) {
	streamID, ok := streamIDParam(w, r)
	if !ok {
		return
	}

	topics, err := h.svc.ListStreamTopics(r.Context(), streamID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]userTopicResponse, len(topics))
	for i, ut := range topics {
		out[i] = toUserTopicResponse(ut)
	}
	writeSuccess(w, map[string]any{"user_topics": out})
}

// ListHistory handles GET /api/v1/user_topics/history.
func (h *UserTopicHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListHistory(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]auditRecordResponse, len(records))
	for i, rec := range records {
		out[i] = auditRecordResponse{
			ID:        rec.ID.String(),
			StreamID:  rec.StreamID,
			TopicName: rec.TopicName,
			Action:    rec.Action.String(),
			Changes:   rec.Changes,
			CreatedAt: rec.CreatedAt.Unix(),
		}
	}
	writeSuccess(w, map[string]any{"history": out})
}

// TopicCounts handles GET /api/v1/streams/{stream_id}/topic_counts.
func (h *UserTopicHandler) TopicCounts(w http.ResponseWriter, r *http.Request) {
	streamID, ok := streamIDParam(w, r)
	if !ok {
		return
	}

	counts, err := h.svc.GetStreamTopicCounts(r.Context(), streamID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeSuccess(w, map[string]any{
		"stream_id":       counts.StreamID,
		"total_topics":    counts.TotalTopics,
		"followed_topics": counts.FollowedTopics,
	})
}

func streamIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "stream_id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid stream ID")
		return 0, false
	}
	return id, true
}

func toUserTopicResponse(ut domain.UserTopic) userTopicResponse {
	resp := userTopicResponse{
		StreamID:         ut.StreamID,
		TopicName:        ut.TopicName,
		VisibilityPolicy: int(ut.Policy),
	}
	if !ut.LastUpdated.IsZero() {
		resp.LastUpdated = ut.LastUpdated.Unix()
	}
	return resp
}
