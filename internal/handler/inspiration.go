package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/internal/resputil"
	"github.com/atelier-lab/atelier/internal/util"
	"github.com/atelier-lab/atelier/pkg/assetctl"
	"github.com/atelier-lab/atelier/pkg/authz"
	"github.com/atelier-lab/atelier/pkg/constants"
	inspirationdb "github.com/atelier-lab/atelier/pkg/db/inspiration"
	"github.com/atelier-lab/atelier/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewInspirationMgr)
}

type InspirationMgr struct {
	name         string
	inspirations inspirationdb.DBService
	assetCtrl    *assetctl.Controller
}

func NewInspirationMgr(conf *RegisterConfig) Manager {
	return &InspirationMgr{
		name:         "inspirations",
		inspirations: conf.InspirationDB,
		assetCtrl:    conf.AssetCtrl,
	}
}

func (mgr *InspirationMgr) GetName() string { return mgr.name }

func (mgr *InspirationMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *InspirationMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListInspirations)
	g.GET("/:id", mgr.GetInspiration)
	g.POST("", mgr.CreateInspiration)
	g.PUT("/:id", mgr.UpdateInspiration)
	g.DELETE("/:id", mgr.DeleteInspiration)
}

func (mgr *InspirationMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	InspirationReq struct {
		Title  string `json:"title" binding:"required,max=128"` // 标题
		Prompt string `json:"prompt"`                           // 提示词
		Image  string `json:"image"`                            // 图片引用
	}

	InspirationIDReq struct {
		ID uint `uri:"id" binding:"required"`
	}

	InspirationResp struct {
		ID        uint      `json:"id"`        // 灵感ID
		Title     string    `json:"title"`     // 标题
		Prompt    string    `json:"prompt"`    // 提示词
		Image     string    `json:"image"`     // 图片引用
		OwnerID   *uint     `json:"ownerId"`   // 所有者ID
		CreatedAt time.Time `json:"createdAt"` // 创建时间
		UpdatedAt time.Time `json:"updatedAt"` // 更新时间
	}
)

func inspirationResponse(item *model.Inspiration) InspirationResp {
	return InspirationResp{
		ID:        item.ID,
		Title:     item.Title,
		Prompt:    item.Prompt,
		Image:     item.Image,
		OwnerID:   item.OwnerID,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ListInspirations godoc
// @Summary 列出灵感
// @Description 灵感是共享画廊，返回全部条目
// @Tags Inspiration
// @Accept json
// @Produce json
// @Security SessionCookie
// @Success 200 {object} resputil.Response[[]InspirationResp] "成功返回灵感列表"
// @Failure 401 {object} resputil.Response[any] "未登录"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/inspirations [get]
func (mgr *InspirationMgr) ListInspirations(c *gin.Context) {
	items, err := mgr.inspirations.ListAll(c)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("list inspirations failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	resp := make([]InspirationResp, 0, len(items))
	for i := range items {
		resp = append(resp, inspirationResponse(&items[i]))
	}
	resputil.Success(c, resp)
}

// GetInspiration godoc
// @Summary 获取单个灵感
// @Description 获取指定灵感的详细信息
// @Tags Inspiration
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "灵感ID"
// @Success 200 {object} resputil.Response[InspirationResp] "成功返回灵感详情"
// @Failure 404 {object} resputil.Response[any] "灵感不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/inspirations/{id} [get]
func (mgr *InspirationMgr) GetInspiration(c *gin.Context) {
	var req InspirationIDReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	item, err := mgr.inspirations.GetByID(c, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "Inspiration not found", resputil.NotFound)
			return
		}
		resputil.Error(c, fmt.Sprintf("get inspiration failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	resputil.Success(c, inspirationResponse(item))
}

// CreateInspiration godoc
// @Summary 创建灵感
// @Description 创建新的灵感条目，内嵌图片写入对象存储并计入配额
// @Tags Inspiration
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param data body InspirationReq true "灵感参数"
// @Success 200 {object} resputil.Response[InspirationResp] "创建成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "访客不允许创建"
// @Failure 413 {object} resputil.Response[any] "存储配额不足"
// @Failure 503 {object} resputil.Response[any] "对象存储未配置"
// @Router /v1/inspirations [post]
func (mgr *InspirationMgr) CreateInspiration(c *gin.Context) {
	info := util.GetSessionInfo(c)
	actor := info.Actor()
	if !authz.CanMutate(actor, authz.Unowned()) {
		resputil.HTTPError(c, http.StatusForbidden, "Guests cannot create inspirations", resputil.UserNotAllowed)
		return
	}

	var req InspirationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	staged, err := mgr.assetCtrl.PrepareRef(c, actor, constants.AssetFolderInspirations, actor.UserID, req.Image)
	if err != nil {
		respondAssetError(c, err)
		return
	}

	item := model.Inspiration{
		Title:   req.Title,
		Prompt:  req.Prompt,
		Image:   staged.Ref,
		OwnerID: &info.UserID,
	}
	if err := mgr.inspirations.Create(c, &item); err != nil {
		mgr.assetCtrl.Unstage(c, staged)
		resputil.Error(c, fmt.Sprintf("create inspiration failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("create inspiration success, id: %d, owner: %s", item.ID, info.Username)
	resputil.Success(c, inspirationResponse(&item))
}

// UpdateInspiration godoc
// @Summary 更新灵感
// @Description 更新灵感条目，图片被替换时旧对象在提交后回收
// @Tags Inspiration
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "灵感ID"
// @Param data body InspirationReq true "灵感参数"
// @Success 200 {object} resputil.Response[InspirationResp] "更新成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "无权修改"
// @Failure 404 {object} resputil.Response[any] "灵感不存在"
// @Failure 413 {object} resputil.Response[any] "存储配额不足"
// @Router /v1/inspirations/{id} [put]
func (mgr *InspirationMgr) UpdateInspiration(c *gin.Context) {
	info := util.GetSessionInfo(c)
	actor := info.Actor()
	var idReq InspirationIDReq
	if err := c.ShouldBindUri(&idReq); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req InspirationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	item, err := mgr.inspirations.GetByID(c, idReq.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "Inspiration not found", resputil.NotFound)
			return
		}
		resputil.Error(c, fmt.Sprintf("get inspiration failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if !authz.CanMutate(actor, authz.OwnershipOf(item.OwnerID)) {
		resputil.HTTPError(c, http.StatusForbidden, "Not allowed to modify this inspiration", resputil.UserNotAllowed)
		return
	}

	oldImage := item.Image
	staged, err := mgr.assetCtrl.PrepareRef(c, actor, constants.AssetFolderInspirations, item.ID, req.Image)
	if err != nil {
		respondAssetError(c, err)
		return
	}

	item.Title = req.Title
	item.Prompt = req.Prompt
	item.Image = staged.Ref
	if err := mgr.inspirations.Update(c, item); err != nil {
		mgr.assetCtrl.Unstage(c, staged)
		resputil.Error(c, fmt.Sprintf("update inspiration failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	mgr.assetCtrl.ReclaimReplaced(c, ownerIDOf(item.OwnerID), oldImage, item.Image)

	resputil.Success(c, inspirationResponse(item))
}

// DeleteInspiration godoc
// @Summary 删除灵感
// @Description 删除灵感并回收其托管的图片对象
// @Tags Inspiration
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "灵感ID"
// @Success 200 {object} resputil.Response[string] "删除成功"
// @Failure 403 {object} resputil.Response[any] "无权删除"
// @Failure 404 {object} resputil.Response[any] "灵感不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/inspirations/{id} [delete]
func (mgr *InspirationMgr) DeleteInspiration(c *gin.Context) {
	info := util.GetSessionInfo(c)
	actor := info.Actor()
	var req InspirationIDReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	item, err := mgr.inspirations.GetByID(c, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "Inspiration not found", resputil.NotFound)
			return
		}
		resputil.Error(c, fmt.Sprintf("get inspiration failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if !authz.CanMutate(actor, authz.OwnershipOf(item.OwnerID)) {
		resputil.HTTPError(c, http.StatusForbidden, "Not allowed to delete this inspiration", resputil.UserNotAllowed)
		return
	}

	if err := mgr.inspirations.Delete(c, item.ID); err != nil {
		resputil.Error(c, fmt.Sprintf("delete inspiration failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	mgr.assetCtrl.ReclaimRefs(c, ownerIDOf(item.OwnerID), item.Image)

	logutils.Log.Infof("delete inspiration success, id: %d, by: %s", item.ID, info.Username)
	resputil.Success(c, "")
}
