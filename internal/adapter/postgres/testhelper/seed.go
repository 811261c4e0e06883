package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedRealm creates a realm and returns its id.
func SeedRealm(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO realms (name) VALUES ($1) RETURNING id`, "realm-"+uniqueSuffix(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedRealm: %v", err)
	}
	return id
}

// SeedUser creates an active user with the given role in realmID.
func SeedUser(t *testing.T, pool *pgxpool.Pool, realmID int64, role domain.UserRole) domain.User {
	t.Helper()

	user := domain.User{
		RealmID:  realmID,
		FullName: "Test User " + uniqueSuffix(),
		Role:     role,
		IsActive: true,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (realm_id, full_name, role, is_active) VALUES ($1, $2, $3, $4) RETURNING id`,
		user.RealmID, user.FullName, string(user.Role), user.IsActive,
	).Scan(&user.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedStream creates a stream (and its recipient row) in realmID.
// An empty name gets a unique generated one.
func SeedStream(t *testing.T, pool *pgxpool.Pool, realmID int64, name string, inviteOnly bool) domain.Stream {
	t.Helper()
	ctx := context.Background()

	if name == "" {
		name = "stream-" + uniqueSuffix()
	}
	stream := domain.Stream{RealmID: realmID, Name: name, InviteOnly: inviteOnly}

	if err := pool.QueryRow(ctx,
		`INSERT INTO recipients (kind) VALUES ('stream') RETURNING id`,
	).Scan(&stream.RecipientID); err != nil {
		t.Fatalf("testhelper: SeedStream recipient: %v", err)
	}

	if err := pool.QueryRow(ctx,
		`INSERT INTO streams (realm_id, name, invite_only, recipient_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		stream.RealmID, stream.Name, stream.InviteOnly, stream.RecipientID,
	).Scan(&stream.ID); err != nil {
		t.Fatalf("testhelper: SeedStream insert: %v", err)
	}
	return stream
}

// DeactivateStream marks the stream as deactivated.
func DeactivateStream(t *testing.T, pool *pgxpool.Pool, streamID int64) {
	t.Helper()

	if _, err := pool.Exec(context.Background(),
		`UPDATE streams SET deactivated = true WHERE id = $1`, streamID,
	); err != nil {
		t.Fatalf("testhelper: DeactivateStream: %v", err)
	}
}

// SeedSubscription subscribes userID to the stream.
func SeedSubscription(t *testing.T, pool *pgxpool.Pool, userID int64, stream domain.Stream, active bool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO subscriptions (user_id, recipient_id, active) VALUES ($1, $2, $3)`,
		userID, stream.RecipientID, active,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubscription: %v", err)
	}
}

// SeedMessage posts a channel message with the given subject to the stream.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, senderID int64, stream domain.Stream, subject string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO messages (sender_id, recipient_id, subject, content, date_sent)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		senderID, stream.RecipientID, subject, "hello "+uniqueSuffix(), time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage: %v", err)
	}
	return id
}

// SeedUserTopic stores an override directly, bypassing the repository.
func SeedUserTopic(t *testing.T, pool *pgxpool.Pool, userID, streamID int64, topic string, policy domain.VisibilityPolicy) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_topics (user_id, stream_id, topic_name, topic_key, visibility_policy, last_updated)
		 VALUES ($1, $2, $3, $4, $5, now())`,
		userID, streamID, domain.CleanTopicName(topic), domain.NormalizeTopicName(topic), int16(policy),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUserTopic: %v", err)
	}
}
