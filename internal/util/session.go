package util

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/atelier-lab/atelier/dao/model"
	sessiondb "github.com/atelier-lab/atelier/pkg/db/session"
)

const (
	// GuestSessionTTL bounds how long a guest login stays valid.
	GuestSessionTTL = 24 * time.Hour
	// SessionTTL applies to every other role. Sessions are never renewed,
	// after the TTL the user logs in again.
	SessionTTL = 7 * 24 * time.Hour

	sessionTokenBytes = 32
)

var (
	ErrSessionInvalid = errors.New("session does not exist")
	ErrSessionExpired = errors.New("session has expired")
)

type SessionManager struct {
	sessions sessiondb.DBService
	now      func() time.Time
}

var (
	sessionOnce sync.Once
	sessionMgr  *SessionManager
)

func GetSessionMgr() *SessionManager {
	sessionOnce.Do(func() {
		sessionMgr = NewSessionManager(sessiondb.NewDBService(), time.Now)
	})
	return sessionMgr
}

// NewSessionManager is used by tests that stub the store or the clock.
func NewSessionManager(sessions sessiondb.DBService, now func() time.Time) *SessionManager {
	return &SessionManager{sessions: sessions, now: now}
}

// NewSessionToken returns a fresh opaque token with 256 bits of
// randomness, hex encoded.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Create opens a session for the user and stores it.
func (m *SessionManager) Create(ctx context.Context, user *model.User) (*model.Session, error) {
	token, err := NewSessionToken()
	if err != nil {
		return nil, err
	}
	ttl := SessionTTL
	if user.Role == model.RoleGuest {
		ttl = GuestSessionTTL
	}
	session := &model.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: m.now().Add(ttl),
	}
	if err := m.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Resolve returns the session and its user for a token. An unknown token
// yields ErrSessionInvalid; a token at or past its expiry yields
// ErrSessionExpired even when the row still exists.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}
	session, err := m.sessions.GetWithUser(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	if session.Expired(m.now()) {
		return nil, ErrSessionExpired
	}
	return session, nil
}

// Revoke deletes the session. Revoking an unknown or already revoked
// token succeeds.
func (m *SessionManager) Revoke(ctx context.Context, token string) error {
	return m.sessions.Delete(ctx, token)
}
