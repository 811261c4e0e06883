package usertopic

import (
	"context"

	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

// UnmuteTopic removes the authenticated user's override for the topic.
// Any existing policy is removed, not only MUTED; with no override at all the
// call fails with a *domain.RemovalError wrapping domain.ErrNoOverride.
func (s *Service) UnmuteTopic(ctx context.Context, input UnmuteTopicInput) error {
	user, err := s.currentUser(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	return s.unmute(ctx, user, input)
}

func (s *Service) unmute(ctx context.Context, user *domain.User, input UnmuteTopicInput) error {
	stream, err := s.streams.AccessForRemoval(ctx, user, input.Stream, input.Topic, msgTopicNotMuted)
	if err != nil {
		return err
	}

	return s.clearPolicy(ctx, user, stream, input.Topic)
}
