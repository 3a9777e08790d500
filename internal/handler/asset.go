package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/atelier-lab/atelier/internal/resputil"
	"github.com/atelier-lab/atelier/internal/util"
	"github.com/atelier-lab/atelier/pkg/assetctl"
	"github.com/atelier-lab/atelier/pkg/authz"
	"github.com/atelier-lab/atelier/pkg/constants"
	"github.com/atelier-lab/atelier/pkg/logutils"
	"github.com/atelier-lab/atelier/pkg/objstore"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewUploadMgr)
}

// respondAssetError maps asset pipeline failures onto their HTTP shape.
// Every handler that stages uploads or inline images goes through it.
func respondAssetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assetctl.ErrQuotaExceeded):
		resputil.HTTPError(c, http.StatusRequestEntityTooLarge, "Storage quota exceeded", resputil.QuotaExceeded)
	case errors.Is(err, objstore.ErrInvalidDataURI):
		resputil.HTTPError(c, http.StatusBadRequest, "Malformed image data", resputil.InvalidDataURI)
	case errors.Is(err, objstore.ErrNotConfigured):
		resputil.HTTPError(c, http.StatusServiceUnavailable, "Object storage is not configured", resputil.StorageUnavailable)
	default:
		resputil.Error(c, err.Error(), resputil.NotSpecified)
	}
}

type UploadMgr struct {
	name      string
	assetCtrl *assetctl.Controller
}

func NewUploadMgr(conf *RegisterConfig) Manager {
	return &UploadMgr{
		name:      "uploads",
		assetCtrl: conf.AssetCtrl,
	}
}

func (mgr *UploadMgr) GetName() string { return mgr.name }

func (mgr *UploadMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *UploadMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("", mgr.Upload)
}

func (mgr *UploadMgr) RegisterAdmin(_ *gin.RouterGroup) {}

var folderPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

type UploadResp struct {
	URL  string `json:"url"`  // 托管路径，可直接写入资源的图片字段
	Size int64  `json:"size"` // 字节数
}

// Upload godoc
// @Summary 上传文件
// @Description 接收 multipart 表单中的 file 字段，写入对象存储并计入配额
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Security SessionCookie
// @Param file formData file true "文件内容"
// @Param folder formData string false "目标目录，默认 uploads"
// @Success 200 {object} resputil.Response[UploadResp] "上传成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "访客不允许上传"
// @Failure 413 {object} resputil.Response[any] "存储配额不足"
// @Failure 503 {object} resputil.Response[any] "对象存储未配置"
// @Router /v1/uploads [post]
func (mgr *UploadMgr) Upload(c *gin.Context) {
	info := util.GetSessionInfo(c)
	actor := info.Actor()
	if !authz.CanUpload(actor) {
		resputil.HTTPError(c, http.StatusForbidden, "Uploads are not allowed for this role", resputil.UserNotAllowed)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		resputil.BadRequestError(c, "Missing file field")
		return
	}
	folder := c.PostForm("folder")
	if folder == "" {
		folder = constants.AssetFolderUploads
	}
	if !folderPattern.MatchString(folder) {
		resputil.BadRequestError(c, "Invalid folder name")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	defer file.Close()

	staged, err := mgr.assetCtrl.StageUpload(c, actor, folder, fileHeader.Filename,
		file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondAssetError(c, err)
		return
	}
	logutils.Log.Infof("upload success, user: %s, key: %s, size: %d", info.Username, staged.Key, staged.Size)
	resputil.Success(c, UploadResp{URL: staged.Ref, Size: staged.Size})
}

// ServeAsset streams a stored object. The route is mounted on the engine
// directly so that stored managed paths resolve without the API prefix.
// Keys embed their upload timestamp, the content behind a key never
// changes, which makes long-lived caching safe.
func ServeAsset(store objstore.ObjectStoreInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimPrefix(c.Param("key"), "/")
		if key == "" || strings.Contains(key, "..") {
			resputil.HTTPError(c, http.StatusBadRequest, "Invalid asset key", resputil.InvalidRequest)
			return
		}

		obj, err := store.GetObject(c, key)
		if err != nil {
			switch {
			case errors.Is(err, objstore.ErrObjectNotFound):
				resputil.HTTPError(c, http.StatusNotFound, "Asset not found", resputil.NotFound)
			case errors.Is(err, objstore.ErrNotConfigured):
				resputil.HTTPError(c, http.StatusServiceUnavailable, "Object storage is not configured", resputil.StorageUnavailable)
			default:
				resputil.Error(c, err.Error(), resputil.NotSpecified)
			}
			return
		}
		defer obj.Body.Close()

		if obj.ETag != "" && c.GetHeader("If-None-Match") == obj.ETag {
			c.Status(http.StatusNotModified)
			return
		}
		if obj.ETag != "" {
			c.Header("ETag", obj.ETag)
		}
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
		c.DataFromReader(http.StatusOK, obj.Size, obj.ContentType, obj.Body, nil)
	}
}
