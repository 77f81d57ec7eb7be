package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side half of an admin login. The browser holds a
// signed cookie whose jti claim is the Token; logout deletes the row, which
// invalidates the cookie even before it expires.
type Session struct {
	Token     string    `db:"token"`
	UserID    int64     `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

func NewSession(userID int64, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		Token:     uuid.New().String(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
