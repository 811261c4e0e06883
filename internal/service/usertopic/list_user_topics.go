package usertopic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

// ListUserTopics returns the authenticated user's stored overrides.
func (s *Service) ListUserTopics(ctx context.Context) ([]domain.UserTopic, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	topics, err := s.topics.ListByUser(ctx, user.ID, s.cfg.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list user topics: %w", err)
	}

	return topics, nil
}

// ListStreamTopics returns the authenticated user's overrides in one stream,
// ordered by topic key. Only the stream's existence is checked.
func (s *Service) ListStreamTopics(ctx context.Context, streamID int64) ([]domain.UserTopic, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	stream, err := s.streams.GetByID(ctx, streamID)
	if err != nil {
		return nil, err
	}

	topics, err := s.topics.ListByStream(ctx, user.ID, stream.ID)
	if err != nil {
		return nil, fmt.Errorf("list stream topics: %w", err)
	}

	return topics, nil
}

// ListHistory returns the authenticated user's most recent policy changes.
func (s *Service) ListHistory(ctx context.Context) ([]domain.AuditRecord, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.audit.ListByUser(ctx, user.ID, s.cfg.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list policy history: %w", err)
	}

	return records, nil
}
