// Package message implements read access to channel messages using PostgreSQL.
package message

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/topicpolicy-backend/internal/adapter/postgres"
)

// Repo provides message queries backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// DistinctTopics returns the distinct subjects of channel messages sent to
// recipientID. Subjects are returned as stored; callers normalize them.
// Returns an empty slice (not nil) when the stream has no messages.
func (r *Repo) DistinctTopics(ctx context.Context, recipientID int64) ([]string, error) {
	sql, args, err := postgres.Builder().
		Select("subject").
		Distinct().
		From("messages").
		Where(squirrel.Eq{"recipient_id": recipientID, "is_channel_message": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build distinct topics query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "messages of recipient", recipientID)
	}

	topics, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan distinct topics: %w", err)
	}
	if topics == nil {
		topics = []string{}
	}

	return topics, nil
}
