package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/internal/middleware"
	"github.com/atelier-lab/atelier/internal/resputil"
	"github.com/atelier-lab/atelier/internal/util"
	"github.com/atelier-lab/atelier/pkg/config"
)

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.CookieName() {
			return cookie
		}
	}
	t.Fatalf("no %s cookie in response", middleware.CookieName())
	return nil
}

func TestLoginSuccess(t *testing.T) {
	alice := withPassword(activeUser(7, "alice", model.RoleUser), "opensesame")
	deps := newTestDeps(alice)
	r := newRouter(deps.conf, util.SessionInfo{}, NewAuthMgr)

	w := doJSON(r, http.MethodPost, "/v1/auth/login", gin.H{
		"username": "alice", "password": "opensesame", "auth": "normal",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[LoginResp](t, w)
	assert.Equal(t, resputil.OK, resp.Code)
	assert.Equal(t, "alice", resp.Data.Context.Name)
	assert.Equal(t, model.RoleUser, resp.Data.Context.Role)

	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Len(t, cookie.Value, 64)
	assert.InDelta(t, int(util.SessionTTL.Seconds()), cookie.MaxAge, 5)
	_, ok := deps.sessions.sessions[cookie.Value]
	assert.True(t, ok, "session must be persisted under the cookie token")
}

func TestLoginWrongPassword(t *testing.T) {
	alice := withPassword(activeUser(7, "alice", model.RoleUser), "opensesame")
	deps := newTestDeps(alice)
	r := newRouter(deps.conf, util.SessionInfo{}, NewAuthMgr)

	w := doJSON(r, http.MethodPost, "/v1/auth/login", gin.H{
		"username": "alice", "password": "wrong", "auth": "normal",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.InvalidCredentials, resp.Code)
	assert.Empty(t, deps.sessions.sessions)
}

func TestLoginUnknownAuthMethod(t *testing.T) {
	deps := newTestDeps(withPassword(activeUser(7, "alice", model.RoleUser), "opensesame"))
	r := newRouter(deps.conf, util.SessionInfo{}, NewAuthMgr)

	w := doJSON(r, http.MethodPost, "/v1/auth/login", gin.H{
		"username": "alice", "password": "opensesame", "auth": "basic",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.InvalidRequest, resp.Code)
}

func TestLoginInactiveUser(t *testing.T) {
	frozen := withPassword(activeUser(7, "frozen", model.RoleUser), "opensesame")
	frozen.Status = model.StatusInactive
	deps := newTestDeps(frozen)
	r := newRouter(deps.conf, util.SessionInfo{}, NewAuthMgr)

	w := doJSON(r, http.MethodPost, "/v1/auth/login", gin.H{
		"username": "frozen", "password": "opensesame", "auth": "normal",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, deps.sessions.sessions)
}

func TestSignupCreatesUserAndLogsIn(t *testing.T) {
	deps := newTestDeps()
	r := newRouter(deps.conf, util.SessionInfo{}, NewAuthMgr)

	w := doJSON(r, http.MethodPost, "/v1/auth/signup", gin.H{
		"username": "newbie", "password": "longenough",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[LoginResp](t, w)
	assert.Equal(t, "newbie", resp.Data.Context.Name)
	assert.Equal(t, model.RoleUser, resp.Data.Context.Role)

	created, err := deps.users.GetByUserName(context.Background(), "newbie")
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, created.Status)
	require.NotNil(t, created.Nickname)
	assert.Equal(t, "newbie", *created.Nickname, "nickname falls back to the username")
	require.NotNil(t, created.Password)
	assert.NotEqual(t, "longenough", *created.Password)

	cookie := sessionCookie(t, w)
	assert.Len(t, cookie.Value, 64)
}

func TestSignupClosed(t *testing.T) {
	conf := config.GetConfig()
	conf.Registration.Open = false
	defer func() { conf.Registration.Open = true }()

	deps := newTestDeps()
	r := newRouter(deps.conf, util.SessionInfo{}, NewAuthMgr)

	w := doJSON(r, http.MethodPost, "/v1/auth/signup", gin.H{
		"username": "newbie", "password": "longenough",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.RegisterClosed, resp.Code)
}

func TestSignupDuplicateUsername(t *testing.T) {
	deps := newTestDeps(withPassword(activeUser(7, "alice", model.RoleUser), "opensesame"))
	r := newRouter(deps.conf, util.SessionInfo{}, NewAuthMgr)

	w := doJSON(r, http.MethodPost, "/v1/auth/signup", gin.H{
		"username": "alice", "password": "longenough",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.Conflict, resp.Code)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	deps := newTestDeps()
	r := newRouter(deps.conf, util.SessionInfo{}, NewAuthMgr)

	w := doJSON(r, http.MethodPost, "/v1/auth/signup", gin.H{
		"username": "newbie", "password": "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	alice := withPassword(activeUser(7, "alice", model.RoleUser), "opensesame")
	deps := newTestDeps(alice)
	session, err := deps.conf.SessionMgr.Create(context.Background(), alice)
	require.NoError(t, err)
	r := newRouter(deps.conf, util.SessionInfo{}, NewAuthMgr)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName(), Value: session.Token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, deps.sessions.sessions)
	cookie := sessionCookie(t, w)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestLogoutWithoutCookie(t *testing.T) {
	deps := newTestDeps()
	r := newRouter(deps.conf, util.SessionInfo{}, NewAuthMgr)

	w := doJSON(r, http.MethodPost, "/v1/auth/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
