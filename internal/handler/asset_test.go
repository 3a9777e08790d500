package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/internal/resputil"
	"github.com/atelier-lab/atelier/pkg/constants"
	"github.com/atelier-lab/atelier/pkg/objstore"
)

func doUpload(r *gin.Engine, filename, folder string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			panic(err)
		}
		if _, err := fw.Write(content); err != nil {
			panic(err)
		}
	}
	if folder != "" {
		if err := mw.WriteField("folder", folder); err != nil {
			panic(err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadGuestForbidden(t *testing.T) {
	deps := newTestDeps(activeUser(2, "guest", model.RoleGuest))
	r := newRouter(deps.conf, guestInfo(), NewUploadMgr)

	w := doUpload(r, "sketch.png", "", []byte("data"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, deps.store.objects)
}

func TestUploadMissingFileField(t *testing.T) {
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewUploadMgr)

	w := doUpload(r, "", "covers", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.InvalidRequest, resp.Code)
}

func TestUploadRejectsInvalidFolder(t *testing.T) {
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewUploadMgr)

	w := doUpload(r, "sketch.png", "No Caps!", []byte("data"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, deps.store.objects)
}

func TestUploadDefaultsToUploadsFolder(t *testing.T) {
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewUploadMgr)

	content := []byte("%PDF-1.7 stub")
	w := doUpload(r, "notes.pdf", "", content)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[UploadResp](t, w)
	assert.True(t, strings.HasPrefix(resp.Data.URL, "/assets/uploads/7_"), resp.Data.URL)
	assert.True(t, strings.HasSuffix(resp.Data.URL, ".pdf"), resp.Data.URL)
	assert.Equal(t, int64(len(content)), resp.Data.Size)

	key := strings.TrimPrefix(resp.Data.URL, "/assets/")
	assert.Equal(t, content, deps.store.objects[key])
	stored, err := deps.users.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), stored.StorageUsage)
}

func TestUploadIntoNamedFolder(t *testing.T) {
	deps := newTestDeps(activeUser(7, "alice", model.RoleUser))
	r := newRouter(deps.conf, userInfo(7, "alice"), NewUploadMgr)

	w := doUpload(r, "cover.png", "covers", []byte("png bytes"))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp[UploadResp](t, w)
	assert.True(t, strings.HasPrefix(resp.Data.URL, "/assets/covers/7_"), resp.Data.URL)
}

func TestUploadQuotaExceeded(t *testing.T) {
	alice := activeUser(7, "alice", model.RoleUser)
	alice.StorageUsage = testQuotaLimit - 5
	deps := newTestDeps(alice)
	r := newRouter(deps.conf, userInfo(7, "alice"), NewUploadMgr)

	w := doUpload(r, "big.bin", "", make([]byte, 10))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.QuotaExceeded, resp.Code)
	assert.Empty(t, deps.store.objects)
}

func newAssetRouter(deps *testDeps) *gin.Engine {
	r := gin.New()
	r.GET(constants.AssetPathPrefix+"*key", ServeAsset(deps.store))
	return r
}

func TestServeAsset(t *testing.T) {
	deps := newTestDeps()
	deps.store.objects["covers/7_111.png"] = []byte("png bytes")
	deps.store.etags["covers/7_111.png"] = `"abc123"`
	r := newAssetRouter(deps)

	w := doJSON(r, http.MethodGet, "/assets/covers/7_111.png", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png bytes", w.Body.String())
	assert.Equal(t, `"abc123"`, w.Header().Get("ETag"))
	assert.Equal(t, "public, max-age=31536000, immutable", w.Header().Get("Cache-Control"))
}

func TestServeAssetNotModified(t *testing.T) {
	deps := newTestDeps()
	deps.store.objects["covers/7_111.png"] = []byte("png bytes")
	deps.store.etags["covers/7_111.png"] = `"abc123"`
	r := newAssetRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/assets/covers/7_111.png", nil)
	req.Header.Set("If-None-Match", `"abc123"`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestServeAssetRejectsTraversal(t *testing.T) {
	deps := newTestDeps()
	r := newAssetRouter(deps)

	w := doJSON(r, http.MethodGet, "/assets/../secret", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServeAssetNotFound(t *testing.T) {
	deps := newTestDeps()
	r := newAssetRouter(deps)

	w := doJSON(r, http.MethodGet, "/assets/covers/missing.png", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.NotFound, resp.Code)
}

func TestServeAssetStorageDisabled(t *testing.T) {
	deps := newTestDeps()
	deps.store.getErr = objstore.ErrNotConfigured
	r := newAssetRouter(deps)

	w := doJSON(r, http.MethodGet, "/assets/covers/7_111.png", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decodeResp[any](t, w)
	assert.Equal(t, resputil.StorageUnavailable, resp.Code)
}
