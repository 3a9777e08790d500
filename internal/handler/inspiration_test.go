package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/internal/resputil"
)

func TestCreateInspirationGuestForbidden(t *testing.T) {
	deps := newTestDeps(activeUser(2, "guest", model.RoleGuest))
	r := newRouter(deps.conf, guestInfo(), NewInspirationMgr)

	w := doJSON(r, http.MethodPost, "/v1/inspirations", gin.H{"title": "dawn palette"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.UserNotAllowed, resp.Code)
	assert.Empty(t, deps.inspirations.items)
}

func TestCreateInspirationWithInlineImage(t *testing.T) {
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewInspirationMgr)

	w := doJSON(r, http.MethodPost, "/v1/inspirations", gin.H{
		"title":  "dawn palette",
		"prompt": "sunrise over wet cobblestones",
		"image":  pngDataURI(make([]byte, 120)),
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[InspirationResp](t, w)
	assert.Equal(t, "dawn palette", resp.Data.Title)
	require.NotNil(t, resp.Data.OwnerID)
	assert.Equal(t, uint(7), *resp.Data.OwnerID)
	assert.True(t, strings.HasPrefix(resp.Data.Image, "/assets/inspirations/7_"), resp.Data.Image)

	stored, err := deps.users.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stored.StorageUsage)
}

func TestUpdateInspirationNonOwnerForbidden(t *testing.T) {
	nine := uint(9)
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	require.NoError(t, deps.inspirations.Create(context.Background(), &model.Inspiration{
		Title:   "dawn palette",
		OwnerID: &nine,
	}))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewInspirationMgr)

	w := doJSON(r, http.MethodPut, "/v1/inspirations/1", gin.H{"title": "stolen palette"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	stored, err := deps.inspirations.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "dawn palette", stored.Title)
}

func TestUpdateInspirationReplacesImage(t *testing.T) {
	seven := uint(7)
	alice := activeUser(7, "alice", model.RoleUser)
	alice.StorageUsage = 120
	deps := newTestDeps(alice)
	deps.store.objects["inspirations/7_111.png"] = make([]byte, 120)
	require.NoError(t, deps.inspirations.Create(context.Background(), &model.Inspiration{
		Title:   "dawn palette",
		Image:   "/assets/inspirations/7_111.png",
		OwnerID: &seven,
	}))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewInspirationMgr)

	w := doJSON(r, http.MethodPut, "/v1/inspirations/1", gin.H{
		"title": "dusk palette",
		"image": pngDataURI(make([]byte, 80)),
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[InspirationResp](t, w)
	assert.True(t, strings.HasPrefix(resp.Data.Image, "/assets/inspirations/1_"), resp.Data.Image)

	_, oldExists := deps.store.objects["inspirations/7_111.png"]
	assert.False(t, oldExists, "the replaced image object must be reclaimed")
	stored, err := deps.users.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(80), stored.StorageUsage)
}

func TestDeleteInspirationReclaimsImage(t *testing.T) {
	seven := uint(7)
	alice := activeUser(7, "alice", model.RoleUser)
	alice.StorageUsage = 120
	deps := newTestDeps(alice)
	deps.store.objects["inspirations/7_111.png"] = make([]byte, 120)
	require.NoError(t, deps.inspirations.Create(context.Background(), &model.Inspiration{
		Title:   "dawn palette",
		Image:   "/assets/inspirations/7_111.png",
		OwnerID: &seven,
	}))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewInspirationMgr)

	w := doJSON(r, http.MethodDelete, "/v1/inspirations/1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, deps.inspirations.items)
	assert.Empty(t, deps.store.objects)
	stored, err := deps.users.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Zero(t, stored.StorageUsage)
}

func TestListInspirationsNewestFirst(t *testing.T) {
	deps := newTestDeps()
	require.NoError(t, deps.inspirations.Create(context.Background(), &model.Inspiration{Title: "first"}))
	require.NoError(t, deps.inspirations.Create(context.Background(), &model.Inspiration{Title: "second"}))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewInspirationMgr)

	w := doJSON(r, http.MethodGet, "/v1/inspirations", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[[]InspirationResp](t, w)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "second", resp.Data[0].Title)
	assert.Equal(t, "first", resp.Data[1].Title)
}
