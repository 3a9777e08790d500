package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelier-lab/atelier/internal/resputil"
	"github.com/atelier-lab/atelier/internal/util"
	"github.com/atelier-lab/atelier/pkg/generation"
	"github.com/atelier-lab/atelier/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewGenerateMgr)
}

type GenerateMgr struct {
	name      string
	generator generation.GeneratorInterface
}

func NewGenerateMgr(conf *RegisterConfig) Manager {
	return &GenerateMgr{
		name:      "generate",
		generator: conf.Generator,
	}
}

func (mgr *GenerateMgr) GetName() string { return mgr.name }

func (mgr *GenerateMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *GenerateMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("", mgr.Generate)
}

func (mgr *GenerateMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	GenerateReq struct {
		Prompt string `json:"prompt" binding:"required"` // 提示词
	}

	GenerateResp struct {
		ImageURL string `json:"imageUrl"` // 生成图片的外部 URL
	}
)

// Generate godoc
// @Summary 生成图片
// @Description 将提示词转发给生成服务，返回生成图片的外部 URL
// @Tags Generate
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param data body GenerateReq true "生成参数"
// @Success 200 {object} resputil.Response[GenerateResp] "生成成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 503 {object} resputil.Response[any] "生成服务未配置"
// @Router /v1/generate [post]
func (mgr *GenerateMgr) Generate(c *gin.Context) {
	info := util.GetSessionInfo(c)
	var req GenerateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if !mgr.generator.Enabled() {
		resputil.HTTPError(c, http.StatusServiceUnavailable, "Image generation is not configured", resputil.GenerationUnavailable)
		return
	}

	imageURL, err := mgr.generator.GenerateImage(c, req.Prompt)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("generate image success, user: %s", info.Username)
	resputil.Success(c, GenerateResp{ImageURL: imageURL})
}
