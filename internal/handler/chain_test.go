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

func TestCreateChainGuestForbidden(t *testing.T) {
	deps := newTestDeps(activeUser(2, "guest", model.RoleGuest))
	r := newRouter(deps.conf, guestInfo(), NewChainMgr)

	w := doJSON(r, http.MethodPost, "/v1/chains", gin.H{"title": "still life"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.UserNotAllowed, resp.Code)
	assert.Empty(t, deps.chains.chains)
}

func TestCreateChainWithInlineCover(t *testing.T) {
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewChainMgr)

	payload := make([]byte, 300)
	w := doJSON(r, http.MethodPost, "/v1/chains", gin.H{
		"title":  "still life",
		"config": gin.H{"steps": []string{"sketch", "ink"}},
		"cover":  pngDataURI(payload),
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[ChainResp](t, w)
	require.NotNil(t, resp.Data.OwnerID)
	assert.Equal(t, uint(7), *resp.Data.OwnerID)
	assert.True(t, strings.HasPrefix(resp.Data.Cover, "/assets/covers/7_"), resp.Data.Cover)
	assert.True(t, strings.HasSuffix(resp.Data.Cover, ".png"), resp.Data.Cover)
	assert.JSONEq(t, `{"steps":["sketch","ink"]}`, string(resp.Data.Config))

	key := strings.TrimPrefix(resp.Data.Cover, "/assets/")
	assert.Equal(t, payload, deps.store.objects[key])
	stored, err := deps.users.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(300), stored.StorageUsage)
}

func TestCreateChainPassesThroughExternalCover(t *testing.T) {
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewChainMgr)

	w := doJSON(r, http.MethodPost, "/v1/chains", gin.H{
		"title": "still life",
		"cover": "https://example.com/cover.png",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[ChainResp](t, w)
	assert.Equal(t, "https://example.com/cover.png", resp.Data.Cover)
	assert.Empty(t, deps.store.objects)
	stored, err := deps.users.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Zero(t, stored.StorageUsage)
}

func TestCreateChainRejectsMalformedDataURI(t *testing.T) {
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewChainMgr)

	w := doJSON(r, http.MethodPost, "/v1/chains", gin.H{
		"title": "still life",
		"cover": "data:image/png;base64,%%%not-base64%%%",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.InvalidDataURI, resp.Code)
	assert.Empty(t, deps.chains.chains)
}

func TestCreateChainQuotaExceeded(t *testing.T) {
	alice := activeUser(7, "alice", model.RoleUser)
	alice.StorageUsage = testQuotaLimit - 10
	deps := newTestDeps(alice)
	r := newRouter(deps.conf, userInfo(7, "alice"), NewChainMgr)

	w := doJSON(r, http.MethodPost, "/v1/chains", gin.H{
		"title": "still life",
		"cover": pngDataURI(make([]byte, 300)),
	})

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.QuotaExceeded, resp.Code)
	assert.Empty(t, deps.store.objects)
	assert.Empty(t, deps.chains.chains)
	stored, err := deps.users.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(testQuotaLimit-10), stored.StorageUsage)
}

func TestCreateChainDBFailureCleansUpStagedCover(t *testing.T) {
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	deps.chains.createErr = assert.AnError
	r := newRouter(deps.conf, userInfo(7, "alice"), NewChainMgr)

	w := doJSON(r, http.MethodPost, "/v1/chains", gin.H{
		"title": "still life",
		"cover": pngDataURI(make([]byte, 300)),
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, deps.store.objects, "the staged cover must be removed again")
	assert.Len(t, deps.store.deletes, 1)
	stored, err := deps.users.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Zero(t, stored.StorageUsage)
}

func TestUpdateChainReplacesCover(t *testing.T) {
	seven := uint(7)
	alice := activeUser(7, "alice", model.RoleUser)
	alice.StorageUsage = 100
	deps := newTestDeps(alice)
	deps.store.objects["covers/7_111.png"] = make([]byte, 100)
	require.NoError(t, deps.chains.Create(context.Background(), &model.Chain{
		Title:   "still life",
		Cover:   "/assets/covers/7_111.png",
		OwnerID: &seven,
	}))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewChainMgr)

	w := doJSON(r, http.MethodPut, "/v1/chains/1", gin.H{
		"title": "still life, reworked",
		"cover": pngDataURI(make([]byte, 40)),
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[ChainResp](t, w)
	assert.Equal(t, "still life, reworked", resp.Data.Title)
	assert.True(t, strings.HasPrefix(resp.Data.Cover, "/assets/covers/1_"), resp.Data.Cover)

	_, oldExists := deps.store.objects["covers/7_111.png"]
	assert.False(t, oldExists, "the replaced cover object must be reclaimed")
	stored, err := deps.users.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(40), stored.StorageUsage)
}

func TestUpdateChainKeepingCoverReclaimsNothing(t *testing.T) {
	seven := uint(7)
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	deps.store.objects["covers/7_111.png"] = make([]byte, 100)
	require.NoError(t, deps.chains.Create(context.Background(), &model.Chain{
		Title:   "still life",
		Cover:   "/assets/covers/7_111.png",
		OwnerID: &seven,
	}))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewChainMgr)

	w := doJSON(r, http.MethodPut, "/v1/chains/1", gin.H{
		"title": "still life, retitled",
		"cover": "/assets/covers/7_111.png",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, deps.store.objects, "covers/7_111.png")
	assert.Empty(t, deps.store.deletes)
}

func TestUpdateChainNonOwnerForbidden(t *testing.T) {
	nine := uint(9)
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	require.NoError(t, deps.chains.Create(context.Background(), &model.Chain{
		Title:   "private study",
		OwnerID: &nine,
	}))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewChainMgr)

	w := doJSON(r, http.MethodPut, "/v1/chains/1", gin.H{"title": "hijacked"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	stored, err := deps.chains.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "private study", stored.Title)
}

func TestUpdateChainUnownedAllowedForUsers(t *testing.T) {
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	require.NoError(t, deps.chains.Create(context.Background(), &model.Chain{
		Title: "community preset",
	}))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewChainMgr)

	w := doJSON(r, http.MethodPut, "/v1/chains/1", gin.H{"title": "community preset v2"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[ChainResp](t, w)
	assert.Equal(t, "community preset v2", resp.Data.Title)
	assert.Nil(t, resp.Data.OwnerID, "adopting an unowned chain must not assign an owner")
}

func TestGetChainHidesForeignPrivateChains(t *testing.T) {
	nine := uint(9)
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	require.NoError(t, deps.chains.Create(context.Background(), &model.Chain{
		Title:   "private study",
		OwnerID: &nine,
	}))

	w := doJSON(newRouter(deps.conf, userInfo(7, "alice"), NewChainMgr),
		http.MethodGet, "/v1/chains/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.NotFound, resp.Code)

	w = doJSON(newRouter(deps.conf, adminInfo(), NewChainMgr),
		http.MethodGet, "/v1/chains/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetChainMissing(t *testing.T) {
	deps := newTestDeps()
	r := newRouter(deps.conf, userInfo(7, "alice"), NewChainMgr)

	w := doJSON(r, http.MethodGet, "/v1/chains/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListChainsFiltersByVisibility(t *testing.T) {
	seven, nine := uint(7), uint(9)
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	require.NoError(t, deps.chains.Create(context.Background(), &model.Chain{Title: "mine", OwnerID: &seven}))
	require.NoError(t, deps.chains.Create(context.Background(), &model.Chain{Title: "theirs", OwnerID: &nine}))
	require.NoError(t, deps.chains.Create(context.Background(), &model.Chain{Title: "shared", OwnerID: &nine, Shared: true}))

	w := doJSON(newRouter(deps.conf, userInfo(7, "alice"), NewChainMgr),
		http.MethodGet, "/v1/chains", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[[]ChainResp](t, w)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "shared", resp.Data[0].Title)
	assert.Equal(t, "mine", resp.Data[1].Title)

	w = doJSON(newRouter(deps.conf, adminInfo(), NewChainMgr),
		http.MethodGet, "/v1/chains", nil)
	resp = decodeResp[[]ChainResp](t, w)
	assert.Len(t, resp.Data, 3)
}

func TestDeleteChainReclaimsCover(t *testing.T) {
	seven := uint(7)
	alice := activeUser(7, "alice", model.RoleUser)
	alice.StorageUsage = 100
	deps := newTestDeps(alice)
	deps.store.objects["covers/7_111.png"] = make([]byte, 100)
	require.NoError(t, deps.chains.Create(context.Background(), &model.Chain{
		Title:   "still life",
		Cover:   "/assets/covers/7_111.png",
		OwnerID: &seven,
	}))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewChainMgr)

	w := doJSON(r, http.MethodDelete, "/v1/chains/1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, deps.chains.chains)
	assert.Empty(t, deps.store.objects)
	stored, err := deps.users.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Zero(t, stored.StorageUsage)
}

func TestDeleteChainGuestForbidden(t *testing.T) {
	deps := newTestDeps(activeUser(2, "guest", model.RoleGuest))
	require.NoError(t, deps.chains.Create(context.Background(), &model.Chain{
		Title:  "shared piece",
		Shared: true,
	}))
	r := newRouter(deps.conf, guestInfo(), NewChainMgr)

	w := doJSON(r, http.MethodDelete, "/v1/chains/1", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Len(t, deps.chains.chains, 1)
}
