package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelier-lab/atelier/internal/resputil"
	"github.com/atelier-lab/atelier/pkg/sweeper"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewSweepMgr)
}

type SweepMgr struct {
	name    string
	sweeper *sweeper.Sweeper
}

func NewSweepMgr(conf *RegisterConfig) Manager {
	return &SweepMgr{
		name:    "sweep",
		sweeper: conf.Sweeper,
	}
}

func (mgr *SweepMgr) GetName() string { return mgr.name }

func (mgr *SweepMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *SweepMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *SweepMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.POST("", mgr.RunSweep)
	g.GET("", mgr.GetLastReport)
}

// RunSweep godoc
// @Summary 手动触发清扫
// @Description 立即执行一次孤儿对象清扫和过期会话清理，返回本次报告
// @Tags Sweep
// @Accept json
// @Produce json
// @Security SessionCookie
// @Success 200 {object} resputil.Response[sweeper.Report] "清扫完成"
// @Failure 500 {object} resputil.Response[any] "清扫失败"
// @Failure 503 {object} resputil.Response[any] "对象存储未配置"
// @Router /v1/admin/sweep [post]
func (mgr *SweepMgr) RunSweep(c *gin.Context) {
	report, err := mgr.sweeper.RunOnce(c)
	if err != nil {
		respondAssetError(c, err)
		return
	}
	resputil.Success(c, report)
}

// GetLastReport godoc
// @Summary 查看上次清扫报告
// @Description 返回最近一次清扫的统计信息
// @Tags Sweep
// @Accept json
// @Produce json
// @Security SessionCookie
// @Success 200 {object} resputil.Response[sweeper.Report] "上次清扫报告"
// @Failure 404 {object} resputil.Response[any] "尚未执行过清扫"
// @Router /v1/admin/sweep [get]
func (mgr *SweepMgr) GetLastReport(c *gin.Context) {
	report := mgr.sweeper.LastReport()
	if report == nil {
		resputil.HTTPError(c, http.StatusNotFound, "No sweep has run yet", resputil.NotFound)
		return
	}
	resputil.Success(c, report)
}
