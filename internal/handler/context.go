package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/internal/resputil"
	"github.com/atelier-lab/atelier/internal/util"
	"github.com/atelier-lab/atelier/pkg/config"
	userdb "github.com/atelier-lab/atelier/pkg/db/user"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewContextMgr)
}

type ContextMgr struct {
	name  string
	users userdb.DBService
}

func NewContextMgr(conf *RegisterConfig) Manager {
	return &ContextMgr{
		name:  "context",
		users: conf.UserDB,
	}
}

func (mgr *ContextMgr) GetName() string { return mgr.name }

func (mgr *ContextMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ContextMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.GetMe)
	g.GET("quota", mgr.GetQuota)
	g.PUT("attributes", mgr.UpdateUserAttributes)
	g.PUT("password", mgr.UpdatePassword)
}

func (mgr *ContextMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	MeResp struct {
		ID        uint         `json:"id"`        // 用户ID
		Name      string       `json:"name"`      // 用户名称
		Nickname  *string      `json:"nickname"`  // 用户昵称
		Role      model.Role   `json:"role"`      // 用户角色
		Status    model.Status `json:"status"`    // 用户状态
		CreatedAt time.Time    `json:"createdAt"` // 创建时间
		Email     *string      `json:"email"`     // 邮箱
		Bio       *string      `json:"bio"`       // 简介
	}

	// QuotaResp describes the storage ledger of the current user.
	// Limit is absent for admins, they are exempt from the ceiling.
	QuotaResp struct {
		Used     int64  `json:"used"`               // 已用字节数
		Limit    *int64 `json:"limit,omitempty"`    // 配额上限(字节)
		Headroom *int64 `json:"headroom,omitempty"` // 剩余可用字节数
	}
)

// GetMe godoc
// @Summary Get the current user profile
// @Description Return the profile of the session user
// @Tags Context
// @Accept json
// @Produce json
// @Security SessionCookie
// @Success 200 {object} resputil.Response[MeResp] "Current user"
// @Failure 401 {object} resputil.Response[any] "Not logged in"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/context [get]
func (mgr *ContextMgr) GetMe(c *gin.Context) {
	info := util.GetSessionInfo(c)
	user, err := mgr.users.GetByID(c, info.UserID)
	if err != nil {
		resputil.Error(c, "User not found", resputil.NotSpecified)
		return
	}

	attrs := user.Attributes.Data()
	resputil.Success(c, MeResp{
		ID:        user.ID,
		Name:      user.Name,
		Nickname:  user.Nickname,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		Email:     attrs.Email,
		Bio:       attrs.Bio,
	})
}

// GetQuota godoc
// @Summary Get the storage quota
// @Description Return used bytes and the remaining headroom of the session user
// @Tags Context
// @Accept json
// @Produce json
// @Security SessionCookie
// @Success 200 {object} resputil.Response[QuotaResp] "Storage quota"
// @Failure 401 {object} resputil.Response[any] "Not logged in"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/context/quota [get]
func (mgr *ContextMgr) GetQuota(c *gin.Context) {
	info := util.GetSessionInfo(c)
	user, err := mgr.users.GetByID(c, info.UserID)
	if err != nil {
		resputil.Error(c, "User not found", resputil.NotSpecified)
		return
	}

	resp := QuotaResp{Used: user.StorageUsage}
	if user.Role != model.RoleAdmin {
		limit := config.GetConfig().StorageQuotaBytes()
		headroom := limit - user.StorageUsage
		if headroom < 0 {
			headroom = 0
		}
		resp.Limit = &limit
		resp.Headroom = &headroom
	}
	resputil.Success(c, resp)
}

// UpdateUserAttributes godoc
// @Summary Update user attributes
// @Description Update the attributes of the current user
// @Tags Context
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param attributes body model.UserAttribute true "User attributes"
// @Success 200 {object} resputil.Response[any] "User attributes updated"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/context/attributes [put]
func (mgr *ContextMgr) UpdateUserAttributes(c *gin.Context) {
	info := util.GetSessionInfo(c)

	var attributes model.UserAttribute
	if err := c.ShouldBindJSON(&attributes); err != nil {
		resputil.BadRequestError(c, "Invalid request body")
		return
	}

	user, err := mgr.users.GetByID(c, info.UserID)
	if err != nil {
		resputil.Error(c, "User not found", resputil.NotSpecified)
		return
	}

	user.Attributes = datatypes.NewJSONType(attributes)
	if err := mgr.users.Update(c, user); err != nil {
		resputil.Error(c, "Failed to update user attributes", resputil.NotSpecified)
		return
	}

	resputil.Success(c, "User attributes updated successfully")
}

type UpdatePasswordReq struct {
	OldPassword string `json:"oldPassword"`                          // 原密码，首次设置时可为空
	NewPassword string `json:"newPassword" binding:"required,min=8"` // 新密码
}

// UpdatePassword godoc
// @Summary 修改密码
// @Description 校验原密码后更新为新密码
// @Tags Context
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param data body UpdatePasswordReq true "密码参数"
// @Success 200 {object} resputil.Response[string] "修改成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 401 {object} resputil.Response[any] "原密码错误"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/context/password [put]
func (mgr *ContextMgr) UpdatePassword(c *gin.Context) {
	info := util.GetSessionInfo(c)
	var req UpdatePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	user, err := mgr.users.GetByID(c, info.UserID)
	if err != nil {
		resputil.Error(c, "User not found", resputil.NotSpecified)
		return
	}

	// Accounts created through LDAP have no local password yet, for
	// them the old password check is skipped.
	if user.Password != nil {
		if bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.OldPassword)) != nil {
			resputil.HTTPError(c, http.StatusUnauthorized, "Wrong password", resputil.InvalidCredentials)
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		resputil.Error(c, "Hash password failed", resputil.NotSpecified)
		return
	}
	if err := mgr.users.UpdatePassword(c, user.ID, string(hashed)); err != nil {
		resputil.Error(c, "Failed to update password", resputil.NotSpecified)
		return
	}
	resputil.Success(c, "Password updated successfully")
}
