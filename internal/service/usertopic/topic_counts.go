package usertopic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

// GetStreamTopicCounts returns how many distinct topics the stream has
// messages in, and how many of those the authenticated user follows.
// Only the stream's existence is checked. Topic names are compared in
// normalized form on both sides, so "Lunch" and "lunch " are one topic.
func (s *Service) GetStreamTopicCounts(ctx context.Context, streamID int64) (*domain.TopicCounts, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	stream, err := s.streams.GetByID(ctx, streamID)
	if err != nil {
		return nil, err
	}

	subjects, err := s.messages.DistinctTopics(ctx, stream.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("distinct topics: %w", err)
	}

	seen := make(map[string]struct{}, len(subjects))
	keys := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		key := domain.NormalizeTopicName(subject)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	followed, err := s.topics.CountByPolicy(ctx, user.ID, stream.ID, domain.VisibilityPolicyFollowed, keys)
	if err != nil {
		return nil, fmt.Errorf("count followed topics: %w", err)
	}

	return &domain.TopicCounts{
		StreamID:       stream.ID,
		TotalTopics:    len(keys),
		FollowedTopics: followed,
	}, nil
}
