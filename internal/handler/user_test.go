package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/internal/resputil"
)

func TestListUser(t *testing.T) {
	alice := activeUser(7, "alice", model.RoleUser)
	alice.StorageUsage = 4096
	deps := newTestDeps(
		activeUser(1, "admin", model.RoleAdmin),
		alice,
		activeUser(9, "bo", model.RoleUser),
	)
	r := newRouter(deps.conf, adminInfo(), NewUserMgr)

	w := doJSON(r, http.MethodGet, "/v1/admin/users", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[[]UserResp](t, w)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "bo", resp.Data[0].Name)
	assert.Equal(t, "alice", resp.Data[1].Name)
	assert.Equal(t, "admin", resp.Data[2].Name)
	assert.Equal(t, int64(4096), resp.Data[1].StorageUsage)
}

func TestGetUser(t *testing.T) {
	bio := "paints murals"
	alice := activeUser(7, "alice", model.RoleUser)
	alice.Attributes = datatypes.NewJSONType(model.UserAttribute{Bio: &bio})
	deps := newTestDeps(alice)
	r := newRouter(deps.conf, userInfo(9, "bo"), NewUserMgr)

	w := doJSON(r, http.MethodGet, "/v1/users/alice", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[UserDetailResp](t, w)
	assert.Equal(t, "alice", resp.Data.Name)
	require.NotNil(t, resp.Data.Bio)
	assert.Equal(t, bio, *resp.Data.Bio)
}

func TestGetUserNotFound(t *testing.T) {
	deps := newTestDeps()
	r := newRouter(deps.conf, userInfo(9, "bo"), NewUserMgr)

	w := doJSON(r, http.MethodGet, "/v1/users/nobody", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.NotFound, resp.Code)
}

func TestDeleteUserRevokesSessionsFirst(t *testing.T) {
	mallory := activeUser(9, "mallory", model.RoleUser)
	deps := newTestDeps(mallory)
	var events []string
	deps.users.events = &events
	deps.sessions.events = &events
	_, err := deps.conf.SessionMgr.Create(context.Background(), mallory)
	require.NoError(t, err)
	r := newRouter(deps.conf, adminInfo(), NewUserMgr)

	w := doJSON(r, http.MethodDelete, "/v1/admin/users/mallory", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"sessions.DeleteByUserID", "users.DeleteByUserName:mallory"}, events)
	assert.Empty(t, deps.sessions.sessions)
	_, err = deps.users.GetByUserName(context.Background(), "mallory")
	assert.Error(t, err)
}

func TestDeleteBuiltinUsersIsRejected(t *testing.T) {
	deps := newTestDeps(
		activeUser(1, "admin", model.RoleAdmin),
		activeUser(2, "guest", model.RoleGuest),
	)
	r := newRouter(deps.conf, adminInfo(), NewUserMgr)

	for _, name := range []string{"admin", "guest"} {
		w := doJSON(r, http.MethodDelete, "/v1/admin/users/"+name, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
	assert.Len(t, deps.users.users, 2)
}

func TestDeleteUnknownUser(t *testing.T) {
	deps := newTestDeps()
	r := newRouter(deps.conf, adminInfo(), NewUserMgr)

	w := doJSON(r, http.MethodDelete, "/v1/admin/users/nobody", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateRole(t *testing.T) {
	alice := activeUser(7, "alice", model.RoleUser)
	deps := newTestDeps(alice)
	r := newRouter(deps.conf, adminInfo(), NewUserMgr)

	w := doJSON(r, http.MethodPut, "/v1/admin/users/alice/role", gin.H{"role": model.RoleAdmin})

	require.Equal(t, http.StatusOK, w.Code)
	stored, err := deps.users.GetByUserName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, stored.Role)
}

func TestUpdateRoleOutOfRange(t *testing.T) {
	alice := activeUser(7, "alice", model.RoleUser)
	deps := newTestDeps(alice)
	r := newRouter(deps.conf, adminInfo(), NewUserMgr)

	w := doJSON(r, http.MethodPut, "/v1/admin/users/alice/role", gin.H{"role": 9})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	stored, err := deps.users.GetByUserName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, stored.Role)
}

func TestResetPassword(t *testing.T) {
	alice := withPassword(activeUser(7, "alice", model.RoleUser), "forgotten")
	deps := newTestDeps(alice)
	r := newRouter(deps.conf, adminInfo(), NewUserMgr)

	w := doJSON(r, http.MethodPut, "/v1/admin/users/alice/password", gin.H{"password": "freshstart"})

	require.Equal(t, http.StatusOK, w.Code)
	stored, err := deps.users.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.Password), []byte("freshstart")))
}

func TestResetPasswordUnknownUser(t *testing.T) {
	deps := newTestDeps()
	r := newRouter(deps.conf, adminInfo(), NewUserMgr)

	w := doJSON(r, http.MethodPut, "/v1/admin/users/nobody/password", gin.H{"password": "freshstart"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
