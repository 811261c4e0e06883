// Package stream implements read access to streams and subscriptions using
// PostgreSQL. Streams are owned by another part of the platform; this
// repository never writes them.
package stream

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/topicpolicy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

var streamColumns = []string{"id", "realm_id", "name", "invite_only", "recipient_id", "deactivated"}

// Repo provides stream persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new stream repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a stream by primary key, including deactivated streams.
// Returns domain.ErrNotFound if no such stream exists.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Stream, error) {
	query := postgres.Builder().
		Select(streamColumns...).
		From("streams").
		Where(squirrel.Eq{"id": id})

	return r.getOne(ctx, query, id)
}

// GetByName returns the stream named name within realmID. Names are matched
// case-insensitively, the same way the unique index compares them.
func (r *Repo) GetByName(ctx context.Context, realmID int64, name string) (*domain.Stream, error) {
	query := postgres.Builder().
		Select(streamColumns...).
		From("streams").
		Where(squirrel.Eq{"realm_id": realmID}).
		Where("lower(name) = lower(?)", name)

	return r.getOne(ctx, query, name)
}

// IsSubscribed reports whether userID holds an active subscription to recipientID.
func (r *Repo) IsSubscribed(ctx context.Context, userID, recipientID int64) (bool, error) {
	sub := postgres.Builder().
		Select("1").
		From("subscriptions").
		Where(squirrel.Eq{"user_id": userID, "recipient_id": recipientID, "active": true})

	sql, args, err := sub.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build is_subscribed query: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "subscription", recipientID)
	}

	return exists, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, query squirrel.SelectBuilder, key any) (*domain.Stream, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stream query: %w", err)
	}

	var s domain.Stream
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(
		&s.ID, &s.RealmID, &s.Name, &s.InviteOnly, &s.RecipientID, &s.Deactivated,
	)
	if err != nil {
		return nil, postgres.MapError(err, "stream", key)
	}

	return &s, nil
}
