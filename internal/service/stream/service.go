// Package stream resolves stream references on behalf of a user and applies
// the access rules every topic policy command runs through.
package stream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

//go:generate moq -out mocks_test.go . streamRepo overrideRepo

type streamRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Stream, error)
	GetByName(ctx context.Context, realmID int64, name string) (*domain.Stream, error)
	IsSubscribed(ctx context.Context, userID, recipientID int64) (bool, error)
}

type overrideRepo interface {
	Exists(ctx context.Context, key domain.UserTopicKey) (bool, error)
}

// Service provides stream lookups. It never writes.
type Service struct {
	streams   streamRepo
	overrides overrideRepo
	log       *slog.Logger
}

// NewService creates a new stream Service.
func NewService(log *slog.Logger, streams streamRepo, overrides overrideRepo) *Service {
	return &Service{
		streams:   streams,
		overrides: overrides,
		log:       log.With("service", "stream"),
	}
}

// Access resolves ref within the user's realm for a command that sets a policy.
// The stream must be active, and the user must either be subscribed or be a
// non-guest looking at a public stream. Denied and missing streams share the
// same message so that private stream names do not leak.
func (s *Service) Access(ctx context.Context, user *domain.User, ref domain.StreamRef) (*domain.Stream, error) {
	st, err := s.find(ctx, user.RealmID, ref)
	if err != nil {
		return nil, err
	}

	if st.Deactivated {
		return nil, &domain.AccessError{Message: notFoundMessage(ref), Err: domain.ErrStreamNotFound}
	}

	subscribed, err := s.streams.IsSubscribed(ctx, user.ID, st.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("check subscription: %w", err)
	}
	if subscribed || (st.IsPublic() && !user.Role.IsGuest()) {
		return st, nil
	}

	s.log.DebugContext(ctx, "stream access denied",
		slog.Int64("user_id", user.ID),
		slog.Int64("stream_id", st.ID),
		slog.String("role", user.Role.String()),
	)

	return nil, &domain.AccessError{Message: notFoundMessage(ref), Err: domain.ErrForbidden}
}

// AccessForRemoval resolves ref for a command that clears an override.
// No subscription is required, so users can clean up after leaving a stream,
// but an override of any policy must exist for topic. Both failures are
// reported with message.
func (s *Service) AccessForRemoval(ctx context.Context, user *domain.User, ref domain.StreamRef, topic, message string) (*domain.Stream, error) {
	st, err := s.find(ctx, user.RealmID, ref)
	if err != nil {
		if errors.Is(err, domain.ErrStreamNotFound) {
			return nil, domain.NewRemovalError(message, domain.ErrStreamNotFound)
		}
		return nil, err
	}

	exists, err := s.overrides.Exists(ctx, domain.NewUserTopicKey(user.ID, st.ID, topic))
	if err != nil {
		return nil, fmt.Errorf("check override: %w", err)
	}
	if !exists {
		return nil, domain.NewRemovalError(message, domain.ErrNoOverride)
	}

	return st, nil
}

// GetByID returns the stream with the given id without any access check.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Stream, error) {
	st, err := s.streams.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &domain.AccessError{Message: "Invalid stream ID", Err: domain.ErrStreamNotFound}
	}
	if err != nil {
		return nil, fmt.Errorf("get stream: %w", err)
	}
	return st, nil
}

func (s *Service) find(ctx context.Context, realmID int64, ref domain.StreamRef) (*domain.Stream, error) {
	var (
		st  *domain.Stream
		err error
	)

	if id, ok := ref.ID(); ok {
		st, err = s.streams.GetByID(ctx, id)
		if err == nil && st.RealmID != realmID {
			err = domain.ErrNotFound
		}
	} else if name, ok := ref.Name(); ok {
		st, err = s.streams.GetByName(ctx, realmID, name)
	} else {
		return nil, &domain.StreamReferenceError{Message: "Please supply 'stream'."}
	}

	if errors.Is(err, domain.ErrNotFound) {
		return nil, &domain.AccessError{Message: notFoundMessage(ref), Err: domain.ErrStreamNotFound}
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", ref, err)
	}

	return st, nil
}

func notFoundMessage(ref domain.StreamRef) string {
	if name, ok := ref.Name(); ok {
		return fmt.Sprintf("Invalid channel name '%s'", name)
	}
	return "Invalid channel ID"
}
