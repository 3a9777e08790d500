package model

import (
	"time"
)

// Session is a server side login session, identified by an opaque token.
// A session is valid from creation until it expires or is revoked; there
// is no refresh, expiry is checked when the token is resolved.
type Session struct {
	Token     string    `gorm:"primaryKey;type:varchar(64);comment:会话令牌"`
	UserID    uint      `gorm:"index;not null;comment:用户ID"`
	User      User      `gorm:"constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time `gorm:"index;not null;comment:过期时间"`
	CreatedAt time.Time
}

// Expired reports whether the session is no longer usable at the given time.
// A session whose expiry equals now is already expired.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
