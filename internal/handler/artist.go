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
	artistdb "github.com/atelier-lab/atelier/pkg/db/artist"
	"github.com/atelier-lab/atelier/pkg/logutils"
	"github.com/atelier-lab/atelier/pkg/objstore"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewArtistMgr)
}

type ArtistMgr struct {
	name      string
	artists   artistdb.DBService
	assetCtrl *assetctl.Controller
}

func NewArtistMgr(conf *RegisterConfig) Manager {
	return &ArtistMgr{
		name:      "artists",
		artists:   conf.ArtistDB,
		assetCtrl: conf.AssetCtrl,
	}
}

func (mgr *ArtistMgr) GetName() string { return mgr.name }

func (mgr *ArtistMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ArtistMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListArtists)
	g.GET("/:id", mgr.GetArtist)
	g.PUT("/:id", mgr.UpdateArtist)
	g.DELETE("/:id", mgr.DeleteArtist)
}

func (mgr *ArtistMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.POST("", mgr.CreateArtist)
}

type (
	ArtistReq struct {
		Name            string   `json:"name" binding:"required,max=64"` // 画师名称
		Bio             string   `json:"bio"`                            // 画师简介
		Avatar          string   `json:"avatar"`                         // 头像引用
		BenchmarkImages []string `json:"benchmarkImages"`                // 基准图列表
	}

	ArtistIDReq struct {
		ID uint `uri:"id" binding:"required"`
	}

	ArtistResp struct {
		ID              uint      `json:"id"`              // 画师ID
		Name            string    `json:"name"`            // 画师名称
		Bio             string    `json:"bio"`             // 画师简介
		Avatar          string    `json:"avatar"`          // 头像引用
		BenchmarkImages []string  `json:"benchmarkImages"` // 基准图列表
		OwnerID         *uint     `json:"ownerId"`         // 所有者ID，空表示全局共享
		CreatedAt       time.Time `json:"createdAt"`       // 创建时间
		UpdatedAt       time.Time `json:"updatedAt"`       // 更新时间
	}
)

func artistResponse(artist *model.Artist) ArtistResp {
	return ArtistResp{
		ID:              artist.ID,
		Name:            artist.Name,
		Bio:             artist.Bio,
		Avatar:          artist.Avatar,
		BenchmarkImages: artist.BenchmarkImages,
		OwnerID:         artist.OwnerID,
		CreatedAt:       artist.CreatedAt,
		UpdatedAt:       artist.UpdatedAt,
	}
}

// ListArtists godoc
// @Summary 列出画师
// @Description 返回全部画师，按名称排序
// @Tags Artist
// @Accept json
// @Produce json
// @Security SessionCookie
// @Success 200 {object} resputil.Response[[]ArtistResp] "成功返回画师列表"
// @Failure 401 {object} resputil.Response[any] "未登录"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/artists [get]
func (mgr *ArtistMgr) ListArtists(c *gin.Context) {
	artists, err := mgr.artists.ListAll(c)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("list artists failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	resp := make([]ArtistResp, 0, len(artists))
	for i := range artists {
		resp = append(resp, artistResponse(&artists[i]))
	}
	resputil.Success(c, resp)
}

// GetArtist godoc
// @Summary 获取单个画师
// @Description 获取指定画师的详细信息
// @Tags Artist
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "画师ID"
// @Success 200 {object} resputil.Response[ArtistResp] "成功返回画师详情"
// @Failure 404 {object} resputil.Response[any] "画师不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/artists/{id} [get]
func (mgr *ArtistMgr) GetArtist(c *gin.Context) {
	var req ArtistIDReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	artist, err := mgr.artists.GetByID(c, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "Artist not found", resputil.NotFound)
			return
		}
		resputil.Error(c, fmt.Sprintf("get artist failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	resputil.Success(c, artistResponse(artist))
}

// prepareArtistImages stages the avatar and every benchmark image. On
// failure everything staged so far is undone before the error returns.
func (mgr *ArtistMgr) prepareArtistImages(c *gin.Context, actor authz.Actor,
	keyID uint, req *ArtistReq) (avatar *assetctl.Staged, benchmarks []*assetctl.Staged, err error) {
	var staged []*assetctl.Staged
	undo := func() {
		for _, s := range staged {
			mgr.assetCtrl.Unstage(c, s)
		}
	}

	avatar, err = mgr.assetCtrl.PrepareRef(c, actor, constants.AssetFolderArtists, keyID, req.Avatar)
	if err != nil {
		return nil, nil, err
	}
	staged = append(staged, avatar)

	benchmarks = make([]*assetctl.Staged, 0, len(req.BenchmarkImages))
	for i, image := range req.BenchmarkImages {
		s, prepErr := mgr.assetCtrl.PrepareRef(c, actor, objstore.BenchmarkFolder(i), keyID, image)
		if prepErr != nil {
			undo()
			return nil, nil, prepErr
		}
		staged = append(staged, s)
		benchmarks = append(benchmarks, s)
	}
	return avatar, benchmarks, nil
}

func stagedRefs(staged []*assetctl.Staged) []string {
	refs := make([]string, 0, len(staged))
	for _, s := range staged {
		refs = append(refs, s.Ref)
	}
	return refs
}

// CreateArtist godoc
// @Summary 创建画师
// @Description 管理员创建画师条目，头像和基准图写入对象存储
// @Tags Artist
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param data body ArtistReq true "画师参数"
// @Success 200 {object} resputil.Response[ArtistResp] "创建成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 409 {object} resputil.Response[any] "画师名称已存在"
// @Failure 413 {object} resputil.Response[any] "存储配额不足"
// @Failure 503 {object} resputil.Response[any] "对象存储未配置"
// @Router /v1/admin/artists [post]
func (mgr *ArtistMgr) CreateArtist(c *gin.Context) {
	info := util.GetSessionInfo(c)
	actor := info.Actor()

	var req ArtistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if _, err := mgr.artists.GetByName(c, req.Name); err == nil {
		resputil.HTTPError(c, http.StatusConflict, "Artist name already exists", resputil.Conflict)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}

	avatar, benchmarks, err := mgr.prepareArtistImages(c, actor, actor.UserID, &req)
	if err != nil {
		respondAssetError(c, err)
		return
	}

	// Artists are curated reference entries, they stay unowned so that
	// every non-guest user may refine them later.
	artist := model.Artist{
		Name:            req.Name,
		Bio:             req.Bio,
		Avatar:          avatar.Ref,
		BenchmarkImages: stagedRefs(benchmarks),
		OwnerID:         nil,
	}
	if err := mgr.artists.Create(c, &artist); err != nil {
		mgr.assetCtrl.Unstage(c, avatar)
		for _, s := range benchmarks {
			mgr.assetCtrl.Unstage(c, s)
		}
		resputil.Error(c, fmt.Sprintf("create artist failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("create artist success, id: %d, name: %s", artist.ID, artist.Name)
	resputil.Success(c, artistResponse(&artist))
}

// UpdateArtist godoc
// @Summary 更新画师
// @Description 更新画师条目，被替换的图片对象在提交后回收
// @Tags Artist
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "画师ID"
// @Param data body ArtistReq true "画师参数"
// @Success 200 {object} resputil.Response[ArtistResp] "更新成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "无权修改"
// @Failure 404 {object} resputil.Response[any] "画师不存在"
// @Failure 413 {object} resputil.Response[any] "存储配额不足"
// @Router /v1/artists/{id} [put]
func (mgr *ArtistMgr) UpdateArtist(c *gin.Context) {
	info := util.GetSessionInfo(c)
	actor := info.Actor()
	var idReq ArtistIDReq
	if err := c.ShouldBindUri(&idReq); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req ArtistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	artist, err := mgr.artists.GetByID(c, idReq.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "Artist not found", resputil.NotFound)
			return
		}
		resputil.Error(c, fmt.Sprintf("get artist failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if !authz.CanMutate(actor, authz.OwnershipOf(artist.OwnerID)) {
		resputil.HTTPError(c, http.StatusForbidden, "Not allowed to modify this artist", resputil.UserNotAllowed)
		return
	}

	oldAvatar := artist.Avatar
	oldBenchmarks := append([]string(nil), artist.BenchmarkImages...)

	avatar, benchmarks, err := mgr.prepareArtistImages(c, actor, artist.ID, &req)
	if err != nil {
		respondAssetError(c, err)
		return
	}

	artist.Name = req.Name
	artist.Bio = req.Bio
	artist.Avatar = avatar.Ref
	artist.BenchmarkImages = stagedRefs(benchmarks)
	if err := mgr.artists.Update(c, artist); err != nil {
		mgr.assetCtrl.Unstage(c, avatar)
		for _, s := range benchmarks {
			mgr.assetCtrl.Unstage(c, s)
		}
		resputil.Error(c, fmt.Sprintf("update artist failed, detail: %v", err), resputil.NotSpecified)
		return
	}

	// Reclaim what the committed record no longer references.
	owner := ownerIDOf(artist.OwnerID)
	mgr.assetCtrl.ReclaimReplaced(c, owner, oldAvatar, artist.Avatar)
	kept := make(map[string]struct{}, len(artist.BenchmarkImages))
	for _, ref := range artist.BenchmarkImages {
		kept[ref] = struct{}{}
	}
	for _, ref := range oldBenchmarks {
		if _, ok := kept[ref]; !ok {
			mgr.assetCtrl.ReclaimRef(c, owner, ref)
		}
	}

	resputil.Success(c, artistResponse(artist))
}

// DeleteArtist godoc
// @Summary 删除画师
// @Description 删除画师并回收其托管的全部图片对象
// @Tags Artist
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "画师ID"
// @Success 200 {object} resputil.Response[string] "删除成功"
// @Failure 403 {object} resputil.Response[any] "无权删除"
// @Failure 404 {object} resputil.Response[any] "画师不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/artists/{id} [delete]
func (mgr *ArtistMgr) DeleteArtist(c *gin.Context) {
	info := util.GetSessionInfo(c)
	actor := info.Actor()
	var req ArtistIDReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	artist, err := mgr.artists.GetByID(c, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "Artist not found", resputil.NotFound)
			return
		}
		resputil.Error(c, fmt.Sprintf("get artist failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if !authz.CanMutate(actor, authz.OwnershipOf(artist.OwnerID)) {
		resputil.HTTPError(c, http.StatusForbidden, "Not allowed to delete this artist", resputil.UserNotAllowed)
		return
	}

	if err := mgr.artists.Delete(c, artist.ID); err != nil {
		resputil.Error(c, fmt.Sprintf("delete artist failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	refs := append([]string{artist.Avatar}, artist.BenchmarkImages...)
	mgr.assetCtrl.ReclaimRefs(c, ownerIDOf(artist.OwnerID), refs...)

	logutils.Log.Infof("delete artist success, id: %d, by: %s", artist.ID, info.Username)
	resputil.Success(c, "")
}
