package usertopic

import (
	"context"

	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

// MuteTopic sets the topic to MUTED for the authenticated user. A new
// override takes input.DateMuted as its last_updated, which may lie in the
// past. An existing override never has its last_updated moved backward.
func (s *Service) MuteTopic(ctx context.Context, input MuteTopicInput) (*domain.UserTopic, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.mute(ctx, user, input)
}

func (s *Service) mute(ctx context.Context, user *domain.User, input MuteTopicInput) (*domain.UserTopic, error) {
	stream, err := s.streams.Access(ctx, user, input.Stream)
	if err != nil {
		return nil, err
	}

	at := input.DateMuted
	if at.IsZero() {
		at = s.now()
	}

	return s.setPolicy(ctx, user, stream, input.Topic, domain.VisibilityPolicyMuted, at)
}
