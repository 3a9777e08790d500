package helper

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/atelier-lab/atelier/dao/migrate"
	"github.com/atelier-lab/atelier/dao/query"
	"github.com/atelier-lab/atelier/internal/handler"
	"github.com/atelier-lab/atelier/internal/util"
	"github.com/atelier-lab/atelier/pkg/alert"
	"github.com/atelier-lab/atelier/pkg/assetctl"
	"github.com/atelier-lab/atelier/pkg/config"
	artistdb "github.com/atelier-lab/atelier/pkg/db/artist"
	chaindb "github.com/atelier-lab/atelier/pkg/db/chain"
	inspirationdb "github.com/atelier-lab/atelier/pkg/db/inspiration"
	sessiondb "github.com/atelier-lab/atelier/pkg/db/session"
	userdb "github.com/atelier-lab/atelier/pkg/db/user"
	"github.com/atelier-lab/atelier/pkg/generation"
	"github.com/atelier-lab/atelier/pkg/objstore"
	"github.com/atelier-lab/atelier/pkg/sweeper"
)

const defaultSweepGraceHours = 24

// ConfigInitializer 封装配置初始化逻辑
type ConfigInitializer struct {
	backendConfig *config.Config
}

// NewConfigInitializer 创建新的ConfigInitializer实例
func NewConfigInitializer() *ConfigInitializer {
	return &ConfigInitializer{
		backendConfig: config.GetConfig(),
	}
}

// GetBackendConfig 获取后端配置
func (ci *ConfigInitializer) GetBackendConfig() *config.Config {
	return ci.backendConfig
}

// LoadDebugEnvironment 加载调试环境变量
func (ci *ConfigInitializer) LoadDebugEnvironment() error {
	if gin.Mode() != gin.DebugMode {
		return nil
	}

	err := godotenv.Load(".debug.env")
	if err != nil {
		return err
	}

	be := os.Getenv("ATELIER_BE_PORT")
	if be == "" {
		panic("ATELIER_BE_PORT is not set")
	}

	ci.backendConfig.ServerAddr = ":" + be

	return nil
}

// InitializeRegisterConfig 初始化注册配置
func (ci *ConfigInitializer) InitializeRegisterConfig() (*handler.RegisterConfig, error) {
	// init db and bring the schema up to date
	db := query.GetDB()
	if err := migrate.Migrate(db); err != nil {
		return nil, err
	}

	userDB := userdb.NewDBService()
	sessionDB := sessiondb.NewDBService()
	chainDB := chaindb.NewDBService()
	artistDB := artistdb.NewDBService()
	inspirationDB := inspirationdb.NewDBService()

	store := objstore.NewObjectStore()
	alerter := alert.GetAlertMgr()
	assetCtrl := assetctl.NewController(store, userDB, alerter, assetctl.QuotaPolicy{
		LimitBytes:    ci.backendConfig.StorageQuotaBytes(),
		ReclaimCredit: ci.backendConfig.Quota.ReclaimCredit,
	})

	grace := time.Duration(ci.backendConfig.Sweep.GraceHours) * time.Hour
	if grace <= 0 {
		grace = defaultSweepGraceHours * time.Hour
	}

	registerConfig := &handler.RegisterConfig{
		UserDB:        userDB,
		SessionDB:     sessionDB,
		ChainDB:       chainDB,
		ArtistDB:      artistDB,
		InspirationDB: inspirationDB,
		SessionMgr:    util.GetSessionMgr(),
		ObjectStore:   store,
		AssetCtrl:     assetCtrl,
		Alerter:       alerter,
		Generator:     generation.NewGenerator(),
		Sweeper:       sweeper.NewSweeper(store, chainDB, artistDB, inspirationDB, sessionDB, alerter, grace),
	}

	return registerConfig, nil
}
