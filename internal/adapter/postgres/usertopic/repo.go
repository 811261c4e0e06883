// Package usertopic implements the visibility policy store using PostgreSQL.
// Each row is one user's override for one topic of one stream; the absence
// of a row means the topic inherits the stream default.
package usertopic

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/topicpolicy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

const table = "user_topics"

var columns = []string{"user_id", "stream_id", "topic_name", "topic_key", "visibility_policy", "last_updated"}

// Repo provides user topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert stores ut under its (user, stream, topic key) and returns the stored
// record. inserted is true when no override existed before the call.
// On update last_updated never moves backward, so only a new record can be backdated.
// A single statement keyed by the unique constraint keeps concurrent writers
// to the same key from producing duplicate rows.
func (r *Repo) Upsert(ctx context.Context, ut domain.UserTopic) (_ *domain.UserTopic, inserted bool, err error) {
	if !ut.Policy.IsStored() {
		return nil, false, fmt.Errorf("user_topic %s: %w", ut.Policy, domain.ErrInvalidPolicy)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(ut.UserID, ut.StreamID, ut.TopicName, ut.TopicKey, int16(ut.Policy), ut.LastUpdated).
		Suffix(`ON CONFLICT ON CONSTRAINT user_topics_key_uq DO UPDATE
			SET visibility_policy = EXCLUDED.visibility_policy,
			    last_updated = GREATEST(user_topics.last_updated, EXCLUDED.last_updated)
			RETURNING user_id, stream_id, topic_name, topic_key, visibility_policy, last_updated, (xmax = 0)`).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build user_topic upsert: %w", err)
	}

	var (
		stored domain.UserTopic
		policy int16
	)
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(
		&stored.UserID, &stored.StreamID, &stored.TopicName, &stored.TopicKey, &policy, &stored.LastUpdated, &inserted,
	)
	if err != nil {
		return nil, false, postgres.MapError(err, "user_topic", ut.TopicKey)
	}
	stored.Policy = domain.VisibilityPolicy(policy)

	return &stored, inserted, nil
}

// Delete removes the override for key and returns the removed record.
// Returns nil (and no error) when there was nothing to remove.
func (r *Repo) Delete(ctx context.Context, key domain.UserTopicKey) (*domain.UserTopic, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(keyPredicate(key)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user_topic delete: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user_topic", key.TopicKey)
	}

	deleted, err := collect(rows)
	if err != nil {
		return nil, postgres.MapError(err, "user_topic", key.TopicKey)
	}
	if len(deleted) == 0 {
		return nil, nil
	}

	return &deleted[0], nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the override for key.
// Returns domain.ErrNotFound if the topic inherits the stream default.
func (r *Repo) Get(ctx context.Context, key domain.UserTopicKey) (*domain.UserTopic, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(keyPredicate(key)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user_topic get: %w", err)
	}

	var (
		ut     domain.UserTopic
		policy int16
	)
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(
		&ut.UserID, &ut.StreamID, &ut.TopicName, &ut.TopicKey, &policy, &ut.LastUpdated,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_topic", key.TopicKey)
	}
	ut.Policy = domain.VisibilityPolicy(policy)

	return &ut, nil
}

// Exists reports whether any override is stored for key.
func (r *Repo) Exists(ctx context.Context, key domain.UserTopicKey) (bool, error) {
	sql, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(keyPredicate(key)).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build user_topic exists: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "user_topic", key.TopicKey)
	}

	return exists, nil
}

// ListByUser returns up to limit overrides of userID ordered by stream and topic key.
// Returns an empty slice (not nil) when the user has none.
func (r *Repo) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.UserTopic, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("stream_id", "topic_key").
		Limit(uint64(limit))

	return r.list(ctx, query)
}

// ListByStream returns every override userID holds in streamID.
func (r *Repo) ListByStream(ctx context.Context, userID, streamID int64) ([]domain.UserTopic, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "stream_id": streamID}).
		OrderBy("topic_key")

	return r.list(ctx, query)
}

// CountByPolicy counts the overrides of userID in streamID that carry policy
// and whose topic key is one of topicKeys.
func (r *Repo) CountByPolicy(ctx context.Context, userID, streamID int64, policy domain.VisibilityPolicy, topicKeys []string) (int, error) {
	if len(topicKeys) == 0 {
		return 0, nil
	}

	sql, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "stream_id": streamID, "visibility_policy": int16(policy)}).
		Where("topic_key = ANY(?)", topicKeys).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build user_topic count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "user_topics of stream", streamID)
	}

	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func keyPredicate(key domain.UserTopicKey) squirrel.Eq {
	return squirrel.Eq{"user_id": key.UserID, "stream_id": key.StreamID, "topic_key": key.TopicKey}
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]domain.UserTopic, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user_topic list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list user_topics: %w", err)
	}

	result, err := collect(rows)
	if err != nil {
		return nil, fmt.Errorf("list user_topics: %w", err)
	}

	return result, nil
}

// collect scans every row into a UserTopic and closes rows.
func collect(rows pgx.Rows) ([]domain.UserTopic, error) {
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.UserTopic, error) {
		var (
			ut     domain.UserTopic
			policy int16
		)
		err := row.Scan(&ut.UserID, &ut.StreamID, &ut.TopicName, &ut.TopicKey, &policy, &ut.LastUpdated)
		ut.Policy = domain.VisibilityPolicy(policy)
		return ut, err
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []domain.UserTopic{}
	}
	return result, nil
}
