package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a change to one of a user's topic overrides.
type AuditRecord struct {
	ID        uuid.UUID
	UserID    int64
	StreamID  int64
	TopicName string
	Action    AuditAction
	Changes   map[string]any
	CreatedAt time.Time
}
