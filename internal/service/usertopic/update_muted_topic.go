package usertopic

import (
	"context"

	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

// UpdateMutedTopic is the combined mute/unmute command: op add mutes the
// topic as of now, op remove unmutes it.
func (s *Service) UpdateMutedTopic(ctx context.Context, input UpdateMutedTopicInput) error {
	user, err := s.currentUser(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}
	ref := input.streamRef()

	if input.Op == domain.MuteOpRemove {
		return s.unmute(ctx, user, UnmuteTopicInput{Stream: ref, Topic: input.Topic})
	}

	_, err = s.mute(ctx, user, MuteTopicInput{Stream: ref, Topic: input.Topic, DateMuted: s.now()})
	return err
}
