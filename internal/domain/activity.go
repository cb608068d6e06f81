package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is an append-only record of something a user did to an account.
type Activity struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	SubjectID uuid.UUID
	Action    ActivityAction
	Info      map[string]any
	CreatedAt time.Time
}
