package usertopic

import (
	"context"

	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

// UpdateUserTopic sets the topic's policy for the authenticated user.
// INHERIT removes the override and requires one to exist; the result is then
// nil. Any other policy is stored with last_updated = now.
func (s *Service) UpdateUserTopic(ctx context.Context, input UpdateUserTopicInput) (*domain.UserTopic, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	policy := domain.VisibilityPolicy(input.VisibilityPolicy)
	ref := domain.StreamByID(input.StreamID)

	if policy == domain.VisibilityPolicyInherit {
		stream, err := s.streams.AccessForRemoval(ctx, user, ref, input.Topic, msgInvalidChannelID)
		if err != nil {
			return nil, err
		}
		return nil, s.clearPolicy(ctx, user, stream, input.Topic)
	}

	stream, err := s.streams.Access(ctx, user, ref)
	if err != nil {
		return nil, err
	}

	return s.setPolicy(ctx, user, stream, input.Topic, policy, s.now())
}
