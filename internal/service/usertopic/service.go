// Package usertopic implements the per-user topic visibility policy commands:
// muting, unmuting, setting an arbitrary policy and counting followed topics.
package usertopic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/topicpolicy-backend/internal/config"
	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
	"github.com/heartmarshall/topicpolicy-backend/pkg/ctxutil"
)

//go:generate moq -out mocks_test.go . userRepo streamAccess userTopicRepo messageRepo auditRepo txManager

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type streamAccess interface {
	Access(ctx context.Context, user *domain.User, ref domain.StreamRef) (*domain.Stream, error)
	AccessForRemoval(ctx context.Context, user *domain.User, ref domain.StreamRef, topic, message string) (*domain.Stream, error)
	GetByID(ctx context.Context, id int64) (*domain.Stream, error)
}

type userTopicRepo interface {
	Upsert(ctx context.Context, ut domain.UserTopic) (*domain.UserTopic, bool, error)
	Delete(ctx context.Context, key domain.UserTopicKey) (*domain.UserTopic, error)
	Get(ctx context.Context, key domain.UserTopicKey) (*domain.UserTopic, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.UserTopic, error)
	ListByStream(ctx context.Context, userID, streamID int64) ([]domain.UserTopic, error)
	CountByPolicy(ctx context.Context, userID, streamID int64, policy domain.VisibilityPolicy, topicKeys []string) (int, error)
}

type messageRepo interface {
	DistinctTopics(ctx context.Context, recipientID int64) ([]string, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Removal lookup messages. Each removal path words its failure differently.
const (
	msgTopicNotMuted    = "Topic is not muted"
	msgInvalidChannelID = "Invalid channel ID"
)

// Service provides visibility policy operations for the authenticated user.
type Service struct {
	users    userRepo
	streams  streamAccess
	topics   userTopicRepo
	messages messageRepo
	audit    auditRepo
	tx       txManager
	cfg      config.PolicyConfig
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new user topic Service.
func NewService(
	log *slog.Logger,
	users userRepo,
	streams streamAccess,
	topics userTopicRepo,
	messages messageRepo,
	audit auditRepo,
	tx txManager,
	cfg config.PolicyConfig,
) *Service {
	return &Service{
		users:    users,
		streams:  streams,
		topics:   topics,
		messages: messages,
		audit:    audit,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "usertopic"),
		now:      time.Now,
	}
}

// currentUser loads the authenticated user from the context.
// A token for a user that no longer exists or was deactivated is unauthorized.
func (s *Service) currentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// setPolicy stores policy for (user, stream, topic) with last_updated set to at,
// or kept at the stored value when that is later.
// The write and its audit record share one transaction.
func (s *Service) setPolicy(
	ctx context.Context,
	user *domain.User,
	stream *domain.Stream,
	topic string,
	policy domain.VisibilityPolicy,
	at time.Time,
) (*domain.UserTopic, error) {
	record := domain.UserTopic{
		UserID:      user.ID,
		StreamID:    stream.ID,
		TopicName:   domain.CleanTopicName(topic),
		TopicKey:    domain.NormalizeTopicName(topic),
		Policy:      policy,
		LastUpdated: at.UTC(),
	}

	var (
		stored   *domain.UserTopic
		inserted bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var upsertErr error
		stored, inserted, upsertErr = s.topics.Upsert(txCtx, record)
		if upsertErr != nil {
			return fmt.Errorf("upsert user topic: %w", upsertErr)
		}

		action := domain.AuditActionUpdate
		if inserted {
			action = domain.AuditActionCreate
		}
		return s.logAudit(txCtx, stored.UserID, stored.StreamID, stored.TopicName, action, map[string]any{
			"visibility_policy": map[string]any{"new": policy.String()},
			"last_updated":      map[string]any{"new": stored.LastUpdated},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "visibility policy set",
		slog.Int64("user_id", user.ID),
		slog.Int64("stream_id", stream.ID),
		slog.String("topic", stored.TopicName),
		slog.String("policy", policy.String()),
		slog.Bool("created", inserted),
	)

	return stored, nil
}

// clearPolicy removes any override for (user, stream, topic), returning the
// topic to INHERIT. Clearing a key with no record is not an error.
func (s *Service) clearPolicy(ctx context.Context, user *domain.User, stream *domain.Stream, topic string) error {
	key := domain.NewUserTopicKey(user.ID, stream.ID, topic)

	var deleted *domain.UserTopic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var deleteErr error
		deleted, deleteErr = s.topics.Delete(txCtx, key)
		if deleteErr != nil {
			return fmt.Errorf("delete user topic: %w", deleteErr)
		}
		if deleted == nil {
			return nil
		}

		return s.logAudit(txCtx, deleted.UserID, deleted.StreamID, deleted.TopicName, domain.AuditActionDelete, map[string]any{
			"visibility_policy": map[string]any{"old": deleted.Policy.String()},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "visibility policy cleared",
		slog.Int64("user_id", user.ID),
		slog.Int64("stream_id", stream.ID),
		slog.String("topic", domain.CleanTopicName(topic)),
		slog.Bool("removed", deleted != nil),
	)

	return nil
}

func (s *Service) logAudit(ctx context.Context, userID, streamID int64, topic string, action domain.AuditAction, changes map[string]any) error {
	if !s.cfg.AuditEnabled {
		return nil
	}

	err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:    userID,
		StreamID:  streamID,
		TopicName: topic,
		Action:    action,
		Changes:   changes,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
