package internal

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/atelier-lab/atelier/docs"
	"github.com/atelier-lab/atelier/internal/handler"
	"github.com/atelier-lab/atelier/internal/middleware"
	"github.com/atelier-lab/atelier/pkg/config"
	"github.com/atelier-lab/atelier/pkg/constants"
)

type Backend struct {
	R *gin.Engine
}

func Register(conf *handler.RegisterConfig) *Backend {
	s := new(Backend)
	s.R = gin.Default()

	// Kubernetes health check
	s.R.GET("/v1/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ok",
		})
	})

	// Register custom routes
	s.RegisterService(conf)

	// Swagger
	docs.SwaggerInfo.BasePath = "/"
	s.R.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stored managed references all start with the asset prefix, they
	// resolve here without the API prefix and without a session.
	s.R.GET(constants.AssetPathPrefix+"*key", handler.ServeAsset(conf.ObjectStore))

	// Serve the built frontend when a dist directory is configured.
	if dist := config.GetConfig().Web.DistDir; dist != "" {
		s.registerFrontend(dist)
	}

	return s
}

func (b *Backend) RegisterService(conf *handler.RegisterConfig) {
	// Enable CORS for http://localhost:XXXX in debug mode
	if gin.Mode() == gin.DebugMode {
		fe := os.Getenv("ATELIER_FE_PORT")
		if fe != "" {
			url := "http://localhost:" + fe
			corsConf := cors.DefaultConfig()
			corsConf.AllowOrigins = []string{url}
			// The session cookie must survive the cross-origin dev setup.
			corsConf.AllowCredentials = true
			b.R.Use(cors.New(corsConf))
		}
	}

	managers := registerManagers(conf)

	///////////////////////////////////////
	//// Public routers, no need login ////
	///////////////////////////////////////

	publicRouter := b.R.Group(constants.APIPrefix)

	///////////////////////////////////////
	//// Protected routers, need login ////
	///////////////////////////////////////

	protectedRouter := b.R.Group(constants.APIPrefix)
	protectedRouter.Use(middleware.AuthProtected())

	///////////////////////////////////////
	//// Admin routers, need admin role ///
	///////////////////////////////////////

	adminRouter := b.R.Group(constants.APIPrefix + "/admin")
	adminRouter.Use(middleware.AuthProtected(), middleware.AuthAdmin())

	for _, mgr := range managers {
		name := mgr.GetName()
		mgr.RegisterPublic(publicRouter.Group(name))
		mgr.RegisterProtected(protectedRouter.Group(name))
		mgr.RegisterAdmin(adminRouter.Group(name))
	}
}

// registerFrontend serves the single page app: files that exist are
// served as is, everything else falls back to index.html so client side
// routes survive a page reload.
func (b *Backend) registerFrontend(dist string) {
	b.R.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/"+constants.APIPrefix) || strings.HasPrefix(path, constants.AssetPathPrefix) {
			c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
			return
		}
		file := filepath.Join(dist, filepath.Clean(path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(dist, "index.html"))
	})
}
