package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/internal/resputil"
	"github.com/atelier-lab/atelier/pkg/sweeper"
)

// Objects seeded directly into the fake store carry a zero last
// modified time, far past any grace period, so orphans among them are
// collected on the first run.
func TestRunSweep(t *testing.T) {
	deps := newTestDeps(activeUser(1, "admin", model.RoleAdmin))
	deps.store.objects["covers/1_1.png"] = make([]byte, 100)
	deps.store.objects["covers/9_9.png"] = make([]byte, 200)
	require.NoError(t, deps.chains.Create(context.Background(), &model.Chain{
		Title: "still life",
		Cover: "/assets/covers/1_1.png",
	}))
	r := newRouter(deps.conf, adminInfo(), NewSweepMgr)

	w := doJSON(r, http.MethodPost, "/v1/admin/sweep", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[sweeper.Report](t, w)
	assert.Equal(t, 2, resp.Data.ScannedObjects)
	assert.Equal(t, 1, resp.Data.RemovedObjects)
	assert.Equal(t, int64(200), resp.Data.FreedBytes)

	assert.Contains(t, deps.store.objects, "covers/1_1.png")
	assert.NotContains(t, deps.store.objects, "covers/9_9.png")
}

func TestGetLastReportBeforeAnyRun(t *testing.T) {
	deps := newTestDeps(activeUser(1, "admin", model.RoleAdmin))
	r := newRouter(deps.conf, adminInfo(), NewSweepMgr)

	w := doJSON(r, http.MethodGet, "/v1/admin/sweep", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.NotFound, resp.Code)
}

func TestGetLastReportAfterRun(t *testing.T) {
	deps := newTestDeps(activeUser(1, "admin", model.RoleAdmin))
	r := newRouter(deps.conf, adminInfo(), NewSweepMgr)

	w := doJSON(r, http.MethodPost, "/v1/admin/sweep", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/v1/admin/sweep", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[sweeper.Report](t, w)
	assert.False(t, resp.Data.StartedAt.IsZero())
}
