package usertopic

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

// GetUserTopic returns the authenticated user's effective policy for a topic.
// A topic without an override is reported as INHERIT with a zero LastUpdated.
func (s *Service) GetUserTopic(ctx context.Context, input GetUserTopicInput) (*domain.UserTopic, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := domain.NewUserTopicKey(user.ID, input.StreamID, input.Topic)
	ut, err := s.topics.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.UserTopic{
			UserID:    user.ID,
			StreamID:  input.StreamID,
			TopicName: domain.CleanTopicName(input.Topic),
			TopicKey:  key.TopicKey,
			Policy:    domain.VisibilityPolicyInherit,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user topic: %w", err)
	}

	return ut, nil
}
