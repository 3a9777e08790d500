package util

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/atelier-lab/atelier/dao/model"
)

type fakeSessionDB struct {
	sessions map[string]*model.Session
	getCalls int
}

func newFakeSessionDB() *fakeSessionDB {
	return &fakeSessionDB{sessions: map[string]*model.Session{}}
}

func (f *fakeSessionDB) Create(_ context.Context, session *model.Session) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionDB) GetWithUser(_ context.Context, token string) (*model.Session, error) {
	f.getCalls++
	s, ok := f.sessions[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeSessionDB) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionDB) DeleteByUserID(_ context.Context, userID uint) error {
	for token, s := range f.sessions {
		if s.UserID == userID {
			delete(f.sessions, token)
		}
	}
	return nil
}

func (f *fakeSessionDB) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var removed int64
	for token, s := range f.sessions {
		if !s.ExpiresAt.After(now) {
			delete(f.sessions, token)
			removed++
		}
	}
	return removed, nil
}

func (f *fakeSessionDB) CountActive(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for _, s := range f.sessions {
		if s.ExpiresAt.After(now) {
			count++
		}
	}
	return count, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func userWithRole(id uint, role model.Role) *model.User {
	u := &model.User{Name: "someone", Role: role}
	u.ID = id
	return u
}

func TestSessionTTLDependsOnRole(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mgr := NewSessionManager(newFakeSessionDB(), fixedClock(start))

	tests := []struct {
		name string
		role model.Role
		ttl  time.Duration
	}{
		{"admin", model.RoleAdmin, SessionTTL},
		{"user", model.RoleUser, SessionTTL},
		{"guest", model.RoleGuest, GuestSessionTTL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := mgr.Create(context.Background(), userWithRole(1, tt.role))
			require.NoError(t, err)
			assert.Equal(t, start.Add(tt.ttl), session.ExpiresAt)
		})
	}
}

func TestNewSessionTokenShape(t *testing.T) {
	first, err := NewSessionToken()
	require.NoError(t, err)
	second, err := NewSessionToken()
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.Regexp(t, "^[0-9a-f]+$", first)
	assert.NotEqual(t, first, second)
}

func TestResolve(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeSessionDB()
	mgr := NewSessionManager(store, fixedClock(start))

	created, err := mgr.Create(context.Background(), userWithRole(3, model.RoleUser))
	require.NoError(t, err)

	resolved, err := mgr.Resolve(context.Background(), created.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), resolved.UserID)

	_, err = mgr.Resolve(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrSessionInvalid)

	store.getCalls = 0
	_, err = mgr.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionInvalid)
	assert.Zero(t, store.getCalls, "empty token never reaches the store")
}

func TestResolveExpiryBoundary(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeSessionDB()
	now := start
	mgr := NewSessionManager(store, func() time.Time { return now })

	session, err := mgr.Create(context.Background(), userWithRole(3, model.RoleUser))
	require.NoError(t, err)
	expiry := session.ExpiresAt

	now = expiry.Add(-time.Second)
	_, err = mgr.Resolve(context.Background(), session.Token)
	assert.NoError(t, err)

	now = expiry
	_, err = mgr.Resolve(context.Background(), session.Token)
	assert.ErrorIs(t, err, ErrSessionExpired, "a session expires at the exact deadline")

	now = expiry.Add(time.Second)
	_, err = mgr.Resolve(context.Background(), session.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestRevokeIsIdempotent(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeSessionDB()
	mgr := NewSessionManager(store, fixedClock(start))

	session, err := mgr.Create(context.Background(), userWithRole(3, model.RoleUser))
	require.NoError(t, err)

	require.NoError(t, mgr.Revoke(context.Background(), session.Token))
	_, err = mgr.Resolve(context.Background(), session.Token)
	assert.ErrorIs(t, err, ErrSessionInvalid)

	assert.NoError(t, mgr.Revoke(context.Background(), session.Token))
}
