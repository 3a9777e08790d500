package util

import (
	"github.com/gin-gonic/gin"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/pkg/authz"
)

const (
	UserIDKey   = "x-user-id"
	UsernameKey = "x-user-name"

	RolePlatformKey = "x-role-platform"
)

// SessionInfo is the identity the middleware resolved for the request.
type SessionInfo struct {
	UserID   uint       `json:"userID"`   // User ID
	Username string     `json:"username"` // Username
	Role     model.Role `json:"role"`     // Role in platform (e.g. guest, user, admin)
}

// Actor converts the identity into the form the mutation policy takes.
func (s SessionInfo) Actor() authz.Actor {
	return authz.Actor{UserID: s.UserID, Role: s.Role}
}

func SetSessionContext(
	c *gin.Context,
	info SessionInfo,
) {
	c.Set(UserIDKey, info.UserID)
	c.Set(UsernameKey, info.Username)

	c.Set(RolePlatformKey, info.Role)
}

func GetSessionInfo(ctx *gin.Context) SessionInfo {
	var info SessionInfo
	info.UserID = ctx.GetUint(UserIDKey)
	info.Username = ctx.GetString(UsernameKey)

	rolePlatform, _ := ctx.Get(RolePlatformKey)
	info.Role = rolePlatform.(model.Role)
	return info
}
