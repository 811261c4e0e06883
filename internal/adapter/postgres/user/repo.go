// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/topicpolicy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if no such user exists.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Select("id", "realm_id", "full_name", "role", "is_active").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var (
		u    domain.User
		role string
	)
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(
		&u.ID, &u.RealmID, &u.FullName, &role, &u.IsActive,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	u.Role = domain.UserRole(role)

	return &u, nil
}
