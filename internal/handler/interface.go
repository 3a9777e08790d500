package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/atelier-lab/atelier/internal/util"
	"github.com/atelier-lab/atelier/pkg/alert"
	"github.com/atelier-lab/atelier/pkg/assetctl"
	artistdb "github.com/atelier-lab/atelier/pkg/db/artist"
	chaindb "github.com/atelier-lab/atelier/pkg/db/chain"
	inspirationdb "github.com/atelier-lab/atelier/pkg/db/inspiration"
	sessiondb "github.com/atelier-lab/atelier/pkg/db/session"
	userdb "github.com/atelier-lab/atelier/pkg/db/user"
	"github.com/atelier-lab/atelier/pkg/generation"
	"github.com/atelier-lab/atelier/pkg/objstore"
	"github.com/atelier-lab/atelier/pkg/sweeper"
)

type Manager interface {
	GetName() string
	RegisterPublic(group *gin.RouterGroup)
	RegisterProtected(group *gin.RouterGroup)
	RegisterAdmin(group *gin.RouterGroup)
}

type ManagerRegisterFunc func(conf *RegisterConfig) Manager

var Registers []ManagerRegisterFunc

// RegisterConfig carries the dependencies shared by all managers.
// It is assembled once during startup, before the route tree is built.
type RegisterConfig struct {
	UserDB        userdb.DBService
	SessionDB     sessiondb.DBService
	ChainDB       chaindb.DBService
	ArtistDB      artistdb.DBService
	InspirationDB inspirationdb.DBService

	SessionMgr  *util.SessionManager
	ObjectStore objstore.ObjectStoreInterface
	AssetCtrl   *assetctl.Controller
	Alerter     alert.AlertInterface
	Generator   generation.GeneratorInterface
	Sweeper     *sweeper.Sweeper
}
