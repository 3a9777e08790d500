package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atelier-lab/atelier/internal/resputil"
	"github.com/atelier-lab/atelier/pkg/assetctl"
	sessiondb "github.com/atelier-lab/atelier/pkg/db/session"
	userdb "github.com/atelier-lab/atelier/pkg/db/user"
)

type MetricsMgr struct {
	name     string
	users    userdb.DBService
	sessions sessiondb.DBService
}

func NewMetricsMgr(conf *RegisterConfig) Manager {
	return &MetricsMgr{
		name:     "metrics",
		users:    conf.UserDB,
		sessions: conf.SessionDB,
	}
}

func (mgr *MetricsMgr) GetName() string { return mgr.name }

func (mgr *MetricsMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("", mgr.GetMetrics)
}

func (mgr *MetricsMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *MetricsMgr) RegisterAdmin(_ *gin.RouterGroup) {}

// 声明一个自定义的注册表
var registry *prometheus.Registry

// 声明一个prom HTTP Handler
var promHTTPHandler http.Handler

// 用户总数仪表盘
var usersGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "atelier_users_total",
		Help: "Total number of accounts",
	},
)

// 已用存储空间仪表盘
var storageUsageGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "atelier_storage_usage_bytes",
		Help: "Storage bytes accounted across all users",
	},
)

// 有效会话仪表盘
var activeSessionsGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "atelier_active_sessions",
		Help: "Sessions that have not expired yet",
	},
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewMetricsMgr)
	registry = prometheus.NewRegistry()
	promHTTPHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	registry.MustRegister(usersGauge)
	registry.MustRegister(storageUsageGauge)
	registry.MustRegister(activeSessionsGauge)
	registry.MustRegister(assetctl.Collectors()...)
}

// GetMetrics godoc
// @Summary 获取服务指标
// @Description 返回Prometheus能够识别的信息
// @Tags Metrics
// @Accept json
// @Produce json
// @Success 200 {array} resputil.Response[any] "成功返回"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/metrics [get]
func (mgr *MetricsMgr) GetMetrics(c *gin.Context) {
	users, err := mgr.users.ListAllUsers(c)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	var usage int64
	for i := range users {
		usage += users[i].StorageUsage
	}
	usersGauge.Set(float64(len(users)))
	storageUsageGauge.Set(float64(usage))

	active, err := mgr.sessions.CountActive(c, time.Now())
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	activeSessionsGauge.Set(float64(active))

	// 暴露自定义指标
	promHTTPHandler.ServeHTTP(c.Writer, c.Request)
}
