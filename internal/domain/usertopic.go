package domain

import "time"

// UserTopic is a stored visibility policy override for one
// (user, stream, topic) key. Policy is never VisibilityPolicyInherit.
type UserTopic struct {
	UserID      int64
	StreamID    int64
	TopicName   string // display form, trimmed
	TopicKey    string // NormalizeTopicName(TopicName)
	Policy      VisibilityPolicy
	LastUpdated time.Time
}

// UserTopicKey identifies an override record.
type UserTopicKey struct {
	UserID   int64
	StreamID int64
	TopicKey string
}

// NewUserTopicKey builds the record key for a raw topic name.
func NewUserTopicKey(userID, streamID int64, topicName string) UserTopicKey {
	return UserTopicKey{UserID: userID, StreamID: streamID, TopicKey: NormalizeTopicName(topicName)}
}

// TopicCounts is the per-stream aggregate returned to the requesting user.
type TopicCounts struct {
	StreamID       int64
	TotalTopics    int
	FollowedTopics int
}
