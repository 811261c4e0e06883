package usertopic

import (
	"fmt"
	"time"

	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

// validateTopic appends a field error when the topic as sent is longer than
// domain.MaxTopicNameLength. The empty topic is a valid topic.
func validateTopic(errs []domain.FieldError, topic string) []domain.FieldError {
	if domain.TopicNameLength(topic) > domain.MaxTopicNameLength {
		return append(errs, domain.FieldError{
			Field:   "topic",
			Message: fmt.Sprintf("max %d characters", domain.MaxTopicNameLength),
		})
	}
	return errs
}

func validationResult(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MuteTopicInput holds the parameters for muting a topic.
type MuteTopicInput struct {
	Stream domain.StreamRef
	Topic  string
	// DateMuted becomes the record's last_updated. Zero means now.
	DateMuted time.Time
}

// Validate checks all fields and collects all errors.
func (i MuteTopicInput) Validate() error {
	if i.Stream.IsZero() {
		return &domain.StreamReferenceError{Message: "Please supply 'stream'."}
	}
	return validationResult(validateTopic(nil, i.Topic))
}

// UnmuteTopicInput holds the parameters for unmuting a topic.
type UnmuteTopicInput struct {
	Stream domain.StreamRef
	Topic  string
}

// Validate checks all fields and collects all errors.
func (i UnmuteTopicInput) Validate() error {
	if i.Stream.IsZero() {
		return &domain.StreamReferenceError{Message: "Please supply 'stream'."}
	}
	return validationResult(validateTopic(nil, i.Topic))
}

// UpdateUserTopicInput holds the parameters for setting an arbitrary policy.
// VisibilityPolicy is the raw wire value.
type UpdateUserTopicInput struct {
	StreamID         int64
	Topic            string
	VisibilityPolicy int
}

// Validate checks all fields and collects all errors. An out-of-range policy
// is reported on its own as domain.ErrInvalidPolicy.
func (i UpdateUserTopicInput) Validate() error {
	if _, err := domain.ParseVisibilityPolicy(i.VisibilityPolicy); err != nil {
		return err
	}

	var errs []domain.FieldError
	if i.StreamID <= 0 {
		errs = append(errs, domain.FieldError{Field: "stream_id", Message: "must be positive"})
	}
	errs = validateTopic(errs, i.Topic)

	return validationResult(errs)
}

// UpdateMutedTopicInput holds the parameters of the combined mute/unmute
// command. Exactly one of StreamID and StreamName must be set.
type UpdateMutedTopicInput struct {
	StreamID   *int64
	StreamName *string
	Topic      string
	Op         domain.MuteOp
}

// Validate checks all fields and collects all errors.
func (i UpdateMutedTopicInput) Validate() error {
	if _, err := domain.NewStreamRef(i.StreamID, i.StreamName); err != nil {
		return err
	}

	var errs []domain.FieldError
	if !i.Op.IsValid() {
		errs = append(errs, domain.FieldError{Field: "op", Message: "must be 'add' or 'remove'"})
	}
	errs = validateTopic(errs, i.Topic)

	return validationResult(errs)
}

// streamRef returns the validated stream reference.
func (i UpdateMutedTopicInput) streamRef() domain.StreamRef {
	ref, _ := domain.NewStreamRef(i.StreamID, i.StreamName)
	return ref
}

// GetUserTopicInput identifies one override to read back.
type GetUserTopicInput struct {
	StreamID int64
	Topic    string
}

// Validate checks all fields and collects all errors.
func (i GetUserTopicInput) Validate() error {
	var errs []domain.FieldError
	if i.StreamID <= 0 {
		errs = append(errs, domain.FieldError{Field: "stream_id", Message: "must be positive"})
	}
	return validationResult(validateTopic(errs, i.Topic))
}
