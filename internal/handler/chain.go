package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/internal/resputil"
	"github.com/atelier-lab/atelier/internal/util"
	"github.com/atelier-lab/atelier/pkg/assetctl"
	"github.com/atelier-lab/atelier/pkg/authz"
	"github.com/atelier-lab/atelier/pkg/constants"
	chaindb "github.com/atelier-lab/atelier/pkg/db/chain"
	"github.com/atelier-lab/atelier/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewChainMgr)
}

type ChainMgr struct {
	name      string
	chains    chaindb.DBService
	assetCtrl *assetctl.Controller
}

func NewChainMgr(conf *RegisterConfig) Manager {
	return &ChainMgr{
		name:      "chains",
		chains:    conf.ChainDB,
		assetCtrl: conf.AssetCtrl,
	}
}

func (mgr *ChainMgr) GetName() string { return mgr.name }

func (mgr *ChainMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ChainMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListChains)
	g.GET("/:id", mgr.GetChain)
	g.POST("", mgr.CreateChain)
	g.PUT("/:id", mgr.UpdateChain)
	g.DELETE("/:id", mgr.DeleteChain)
}

func (mgr *ChainMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	ChainReq struct {
		Title  string         `json:"title" binding:"required,max=128"` // 标题
		Config datatypes.JSON `json:"config" swaggertype:"object"`      // 提示词配置
		Cover  string         `json:"cover"`                            // 封面图，可为 data URI、外部 URL 或托管路径
		Shared bool           `json:"shared"`                           // 是否共享
	}

	ChainIDReq struct {
		ID uint `uri:"id" binding:"required"`
	}

	ChainResp struct {
		ID        uint           `json:"id"`                          // 链ID
		Title     string         `json:"title"`                       // 标题
		Config    datatypes.JSON `json:"config" swaggertype:"object"` // 提示词配置
		Cover     string         `json:"cover"`                       // 封面图引用
		Shared    bool           `json:"shared"`                      // 是否共享
		OwnerID   *uint          `json:"ownerId"`                     // 所有者ID，空表示无主
		CreatedAt time.Time      `json:"createdAt"`                   // 创建时间
		UpdatedAt time.Time      `json:"updatedAt"`                   // 更新时间
	}
)

func chainResponse(chain *model.Chain) ChainResp {
	return ChainResp{
		ID:        chain.ID,
		Title:     chain.Title,
		Config:    chain.Config,
		Cover:     chain.Cover,
		Shared:    chain.Shared,
		OwnerID:   chain.OwnerID,
		CreatedAt: chain.CreatedAt,
		UpdatedAt: chain.UpdatedAt,
	}
}

// ownerIDOf returns the accounting target for reclaims of a resource,
// zero when the resource is unowned.
func ownerIDOf(ownerID *uint) uint {
	if ownerID == nil {
		return 0
	}
	return *ownerID
}

// ListChains godoc
// @Summary 列出可见的链
// @Description 返回自己的、共享的和无主的链，管理员可见全部
// @Tags Chain
// @Accept json
// @Produce json
// @Security SessionCookie
// @Success 200 {object} resputil.Response[[]ChainResp] "成功返回链列表"
// @Failure 401 {object} resputil.Response[any] "未登录"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/chains [get]
func (mgr *ChainMgr) ListChains(c *gin.Context) {
	info := util.GetSessionInfo(c)

	var (
		chains []model.Chain
		err    error
	)
	if info.Role == model.RoleAdmin {
		chains, err = mgr.chains.ListAll(c)
	} else {
		chains, err = mgr.chains.ListVisible(c, info.UserID)
	}
	if err != nil {
		resputil.Error(c, fmt.Sprintf("list chains failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	resp := make([]ChainResp, 0, len(chains))
	for i := range chains {
		resp = append(resp, chainResponse(&chains[i]))
	}
	resputil.Success(c, resp)
}

// GetChain godoc
// @Summary 获取单个链
// @Description 获取指定链的详细信息，不可见的链返回 404
// @Tags Chain
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "链ID"
// @Success 200 {object} resputil.Response[ChainResp] "成功返回链详情"
// @Failure 404 {object} resputil.Response[any] "链不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/chains/{id} [get]
func (mgr *ChainMgr) GetChain(c *gin.Context) {
	info := util.GetSessionInfo(c)
	var req ChainIDReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	chain, err := mgr.chains.GetByID(c, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "Chain not found", resputil.NotFound)
			return
		}
		resputil.Error(c, fmt.Sprintf("get chain failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if !chainVisible(chain, info) {
		// Private chains of other users are indistinguishable from
		// missing ones.
		resputil.HTTPError(c, http.StatusNotFound, "Chain not found", resputil.NotFound)
		return
	}
	resputil.Success(c, chainResponse(chain))
}

func chainVisible(chain *model.Chain, info util.SessionInfo) bool {
	if info.Role == model.RoleAdmin || chain.Shared || chain.OwnerID == nil {
		return true
	}
	return *chain.OwnerID == info.UserID
}

// CreateChain godoc
// @Summary 创建链
// @Description 创建新链，内嵌的封面图会写入对象存储并计入配额
// @Tags Chain
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param data body ChainReq true "链参数"
// @Success 200 {object} resputil.Response[ChainResp] "创建成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "访客不允许创建"
// @Failure 413 {object} resputil.Response[any] "存储配额不足"
// @Failure 503 {object} resputil.Response[any] "对象存储未配置"
// @Router /v1/chains [post]
func (mgr *ChainMgr) CreateChain(c *gin.Context) {
	info := util.GetSessionInfo(c)
	actor := info.Actor()
	if !authz.CanMutate(actor, authz.Unowned()) {
		resputil.HTTPError(c, http.StatusForbidden, "Guests cannot create chains", resputil.UserNotAllowed)
		return
	}

	var req ChainReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	staged, err := mgr.assetCtrl.PrepareRef(c, actor, constants.AssetFolderCovers, actor.UserID, req.Cover)
	if err != nil {
		respondAssetError(c, err)
		return
	}

	chain := model.Chain{
		Title:   req.Title,
		Config:  req.Config,
		Cover:   staged.Ref,
		Shared:  req.Shared,
		OwnerID: &info.UserID,
	}
	if err := mgr.chains.Create(c, &chain); err != nil {
		mgr.assetCtrl.Unstage(c, staged)
		resputil.Error(c, fmt.Sprintf("create chain failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("create chain success, id: %d, owner: %s", chain.ID, info.Username)
	resputil.Success(c, chainResponse(&chain))
}

// UpdateChain godoc
// @Summary 更新链
// @Description 更新链内容，封面被替换时旧对象在提交后回收
// @Tags Chain
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "链ID"
// @Param data body ChainReq true "链参数"
// @Success 200 {object} resputil.Response[ChainResp] "更新成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "无权修改"
// @Failure 404 {object} resputil.Response[any] "链不存在"
// @Failure 413 {object} resputil.Response[any] "存储配额不足"
// @Router /v1/chains/{id} [put]
func (mgr *ChainMgr) UpdateChain(c *gin.Context) {
	info := util.GetSessionInfo(c)
	actor := info.Actor()
	var idReq ChainIDReq
	if err := c.ShouldBindUri(&idReq); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req ChainReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	chain, err := mgr.chains.GetByID(c, idReq.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "Chain not found", resputil.NotFound)
			return
		}
		resputil.Error(c, fmt.Sprintf("get chain failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if !authz.CanMutate(actor, authz.OwnershipOf(chain.OwnerID)) {
		resputil.HTTPError(c, http.StatusForbidden, "Not allowed to modify this chain", resputil.UserNotAllowed)
		return
	}

	oldCover := chain.Cover
	staged, err := mgr.assetCtrl.PrepareRef(c, actor, constants.AssetFolderCovers, chain.ID, req.Cover)
	if err != nil {
		respondAssetError(c, err)
		return
	}

	chain.Title = req.Title
	chain.Config = req.Config
	chain.Cover = staged.Ref
	chain.Shared = req.Shared
	if err := mgr.chains.Update(c, chain); err != nil {
		mgr.assetCtrl.Unstage(c, staged)
		resputil.Error(c, fmt.Sprintf("update chain failed, detail: %v", err), resputil.NotSpecified)
		return
	}

	// The record now points at the new cover, the old object is no
	// longer referenced anywhere.
	mgr.assetCtrl.ReclaimReplaced(c, ownerIDOf(chain.OwnerID), oldCover, chain.Cover)

	resputil.Success(c, chainResponse(chain))
}

// DeleteChain godoc
// @Summary 删除链
// @Description 删除链并回收其托管的封面对象
// @Tags Chain
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "链ID"
// @Success 200 {object} resputil.Response[string] "删除成功"
// @Failure 403 {object} resputil.Response[any] "无权删除"
// @Failure 404 {object} resputil.Response[any] "链不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/chains/{id} [delete]
func (mgr *ChainMgr) DeleteChain(c *gin.Context) {
	info := util.GetSessionInfo(c)
	actor := info.Actor()
	var req ChainIDReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	chain, err := mgr.chains.GetByID(c, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "Chain not found", resputil.NotFound)
			return
		}
		resputil.Error(c, fmt.Sprintf("get chain failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if !authz.CanMutate(actor, authz.OwnershipOf(chain.OwnerID)) {
		resputil.HTTPError(c, http.StatusForbidden, "Not allowed to delete this chain", resputil.UserNotAllowed)
		return
	}

	if err := mgr.chains.Delete(c, chain.ID); err != nil {
		resputil.Error(c, fmt.Sprintf("delete chain failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	mgr.assetCtrl.ReclaimRefs(c, ownerIDOf(chain.OwnerID), chain.Cover)

	logutils.Log.Infof("delete chain success, id: %d, by: %s", chain.ID, info.Username)
	resputil.Success(c, "")
}
