package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/internal/resputil"
	"github.com/atelier-lab/atelier/internal/util"
	"github.com/atelier-lab/atelier/pkg/config"
	"github.com/atelier-lab/atelier/pkg/constants"
)

// CookieName returns the session cookie name, configurable so that
// several deployments can share a domain.
func CookieName() string {
	if name := config.GetConfig().Session.CookieName; name != "" {
		return name
	}
	return constants.SessionCookieName
}

func AuthProtected() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName())
		if err != nil || token == "" {
			resputil.HTTPError(c, http.StatusUnauthorized, "Missing session", resputil.TokenInvalid)
			c.Abort()
			return
		}

		session, err := util.GetSessionMgr().Resolve(c, token)
		if err != nil {
			switch {
			case errors.Is(err, util.ErrSessionExpired):
				resputil.HTTPError(c, http.StatusUnauthorized, "Session expired", resputil.TokenExpired)
			case errors.Is(err, util.ErrSessionInvalid):
				resputil.HTTPError(c, http.StatusUnauthorized, "Invalid session", resputil.TokenInvalid)
			default:
				resputil.HTTPError(c, http.StatusUnauthorized, err.Error(), resputil.TokenInvalid)
			}
			c.Abort()
			return
		}

		if session.User.Status != model.StatusActive {
			resputil.HTTPError(c, http.StatusUnauthorized, "User is not active", resputil.TokenInvalid)
			c.Abort()
			return
		}

		util.SetSessionContext(c, util.SessionInfo{
			UserID:   session.User.ID,
			Username: session.User.Name,
			Role:     session.User.Role,
		})
		c.Next()
	}
}

func AuthAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		info := util.GetSessionInfo(c)
		if info.Role != model.RoleAdmin {
			resputil.HTTPError(c, http.StatusForbidden, "Not Admin", resputil.UserNotAllowed)
			c.Abort()
			return
		}
		c.Next()
	}
}
