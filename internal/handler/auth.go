package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	ldap "github.com/go-ldap/ldap/v3"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/internal/middleware"
	"github.com/atelier-lab/atelier/internal/resputil"
	"github.com/atelier-lab/atelier/internal/util"
	"github.com/atelier-lab/atelier/pkg/config"
	userdb "github.com/atelier-lab/atelier/pkg/db/user"
	"github.com/atelier-lab/atelier/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewAuthMgr)
}

type AuthMgr struct {
	name       string
	users      userdb.DBService
	sessionMgr *util.SessionManager
}

func NewAuthMgr(conf *RegisterConfig) Manager {
	return &AuthMgr{
		name:       "auth",
		users:      conf.UserDB,
		sessionMgr: conf.SessionMgr,
	}
}

func (mgr *AuthMgr) GetName() string { return mgr.name }

func (mgr *AuthMgr) RegisterPublic(g *gin.RouterGroup) {
	g.POST("/login", mgr.Login)
	g.POST("/signup", mgr.Signup)
	g.POST("/logout", mgr.Logout)
}

func (mgr *AuthMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *AuthMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	LoginReq struct {
		Username   string `json:"username" binding:"required"` // 用户名
		Password   string `json:"password" binding:"required"` // 密码
		AuthMethod string `json:"auth" binding:"required"`     // 认证方式 [normal, ldap]
	}

	LoginResp struct {
		Context UserContext `json:"context"`
	}

	UserContext struct {
		Name     string     `json:"name"`     // 用户名
		Nickname *string    `json:"nickname"` // 用户昵称
		Role     model.Role `json:"role"`     // 平台角色
	}
)

const (
	AuthMethodNormal = "normal"
	AuthMethodLDAP   = "ldap"
)

// Login godoc
// @Summary 用户登录
// @Description 校验用户身份，开启会话并通过 HTTP-only Cookie 下发会话令牌
// @Tags Auth
// @Accept json
// @Produce json
// @Param data body LoginReq false "查询参数"
// @Success 200 {object} resputil.Response[LoginResp] "登录成功，Set-Cookie 中包含会话令牌"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 401 {object} resputil.Response[any] "用户名或密码错误"
// @Failure 500 {object} resputil.Response[any] "数据库交互错误"
// @Router /v1/auth/login [post]
func (mgr *AuthMgr) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBind(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	l := logutils.Log.WithFields(logutils.Fields{
		"username": req.Username,
		"auth":     req.AuthMethod,
	})

	// Check if request auth method is valid
	switch req.AuthMethod {
	case AuthMethodLDAP:
		if err := mgr.ldapAuth(req.Username, req.Password); err != nil {
			l.Error("invalid credentials: ", err)
			resputil.HTTPError(c, http.StatusUnauthorized, "Invalid credentials", resputil.InvalidCredentials)
			return
		}
	case AuthMethodNormal:
		if err := mgr.normalAuth(c, req.Username, req.Password); err != nil {
			l.Error("invalid credentials: ", err)
			resputil.HTTPError(c, http.StatusUnauthorized, "Invalid credentials", resputil.InvalidCredentials)
			return
		}
	default:
		l.Error("invalid auth method: ", req.AuthMethod)
		resputil.HTTPError(c, http.StatusBadRequest, "Invalid auth method", resputil.InvalidRequest)
		return
	}

	// Check if the user exists
	user, err := mgr.users.GetByUserName(c, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// User exists in LDAP but not in the database, create it
			user, err = mgr.createUser(c, req.Username)
			if err != nil {
				l.Error("create new user", err)
				resputil.Error(c, "Create user failed", resputil.NotSpecified)
				return
			}
		} else {
			// Other DB error
			l.Error(err)
			resputil.Error(c, err.Error(), resputil.NotSpecified)
			return
		}
	}
	if user.Status != model.StatusActive {
		l.Error("user is not active")
		resputil.HTTPError(c, http.StatusUnauthorized, "User is not active", resputil.NotSpecified)
		return
	}

	if err := mgr.openSession(c, user); err != nil {
		resputil.HTTPError(c, http.StatusInternalServerError, err.Error(), resputil.NotSpecified)
		return
	}
	resputil.Success(c, LoginResp{
		Context: UserContext{
			Name:     user.Name,
			Nickname: user.Nickname,
			Role:     user.Role,
		},
	})
}

// openSession stores a fresh session and hands its token to the browser.
// The token never appears in a response body, only in the cookie. The
// cookie lifetime mirrors the stored expiry, so both run out together.
func (mgr *AuthMgr) openSession(c *gin.Context, user *model.User) error {
	session, err := mgr.sessionMgr.Create(c, user)
	if err != nil {
		return err
	}
	cfg := config.GetConfig()
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName(), session.Token, maxAge,
		cookiePath(cfg), cfg.Session.CookieDomain, cfg.Session.Secure, true)
	return nil
}

func clearSessionCookie(c *gin.Context) {
	cfg := config.GetConfig()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName(), "", -1,
		cookiePath(cfg), cfg.Session.CookieDomain, cfg.Session.Secure, true)
}

func cookiePath(cfg *config.Config) string {
	if cfg.Session.CookiePath != "" {
		return cfg.Session.CookiePath
	}
	return "/"
}

// createUser is called when an LDAP user logs in for the first time.
func (mgr *AuthMgr) createUser(c *gin.Context, name string) (*model.User, error) {
	user := model.User{
		Name:     name,
		Nickname: &name,
		Password: nil,
		Role:     model.RoleUser,
		Status:   model.StatusActive,
		Attributes: datatypes.NewJSONType(model.UserAttribute{
			Email: nil,
		}),
	}
	if err := mgr.users.Create(c, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (mgr *AuthMgr) normalAuth(c *gin.Context, username, password string) error {
	user, err := mgr.users.GetByUserName(c, username)
	if err != nil {
		return fmt.Errorf("user not found")
	}

	p := user.Password
	if p == nil {
		return fmt.Errorf("user does not have a password")
	}

	if bcrypt.CompareHashAndPassword([]byte(*p), []byte(password)) != nil {
		return fmt.Errorf("wrong username or password")
	}
	return nil
}

func (mgr *AuthMgr) ldapAuth(username, password string) error {
	authConfig := config.GetConfig()
	if !authConfig.LDAP.Enable {
		return fmt.Errorf("ldap auth is not enabled")
	}
	l, err := ldap.DialURL(authConfig.LDAP.Address)
	if err != nil {
		return err
	}
	err = l.Bind(authConfig.LDAP.UserName, authConfig.LDAP.Password)
	if err != nil {
		return err
	}

	// 管理员搜索用户
	searchRequest := ldap.NewSearchRequest(
		authConfig.LDAP.SearchDN, // 搜索基准 DN
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 0, 0, false,
		fmt.Sprintf("(sAMAccountName=%s)", username), // 过滤条件
		[]string{"dn"}, // 返回的属性列表
		nil,
	)

	// 执行搜索请求
	searchResult, err := l.Search(searchRequest)
	if err != nil {
		return err
	}

	if len(searchResult.Entries) != 1 {
		return fmt.Errorf("user not found or too many entries returned")
	}

	// 用户存在，验证用户密码
	userDN := searchResult.Entries[0].DN
	if err = l.Bind(userDN, password); err != nil {
		return err
	}

	return nil
}

type SignupReq struct {
	Username string  `json:"username" binding:"required,alphanum,min=3,max=32"` // 用户名
	Password string  `json:"password" binding:"required,min=8"`                 // 密码
	Nickname *string `json:"nickname"`                                          // 昵称
}

// Signup godoc
// @Summary 用户注册
// @Description 开放注册时创建新用户并直接登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param data body SignupReq true "注册参数"
// @Success 200 {object} resputil.Response[LoginResp] "注册成功并已登录"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "注册未开放"
// @Failure 409 {object} resputil.Response[any] "用户名已存在"
// @Router /v1/auth/signup [post]
func (mgr *AuthMgr) Signup(c *gin.Context) {
	var req SignupReq
	if err := c.ShouldBind(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if !config.GetConfig().Registration.Open {
		resputil.HTTPError(c, http.StatusForbidden, "Registration is closed", resputil.RegisterClosed)
		return
	}

	if _, err := mgr.users.GetByUserName(c, req.Username); err == nil {
		resputil.HTTPError(c, http.StatusConflict, "Username already taken", resputil.Conflict)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resputil.Error(c, "Hash password failed", resputil.NotSpecified)
		return
	}
	password := string(hashed)
	nickname := req.Nickname
	if nickname == nil {
		nickname = &req.Username
	}
	user := model.User{
		Name:     req.Username,
		Nickname: nickname,
		Password: &password,
		Role:     model.RoleUser,
		Status:   model.StatusActive,
	}
	if err := mgr.users.Create(c, &user); err != nil {
		// The unique index backs up the pre-check under races.
		resputil.HTTPError(c, http.StatusConflict, "Username already taken", resputil.Conflict)
		return
	}
	logutils.Log.Infof("signup success, username: %s", user.Name)

	if err := mgr.openSession(c, &user); err != nil {
		resputil.HTTPError(c, http.StatusInternalServerError, err.Error(), resputil.NotSpecified)
		return
	}
	resputil.Success(c, LoginResp{
		Context: UserContext{
			Name:     user.Name,
			Nickname: user.Nickname,
			Role:     user.Role,
		},
	})
}

// Logout godoc
// @Summary 退出登录
// @Description 撤销当前会话并清除 Cookie，重复调用同样返回成功
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} resputil.Response[string] "退出成功"
// @Failure 500 {object} resputil.Response[any] "数据库交互错误"
// @Router /v1/auth/logout [post]
func (mgr *AuthMgr) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.CookieName())
	if err == nil && token != "" {
		if err := mgr.sessionMgr.Revoke(c, token); err != nil {
			resputil.Error(c, err.Error(), resputil.NotSpecified)
			return
		}
	}
	clearSessionCookie(c)
	resputil.Success(c, "")
}
