package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/internal/resputil"
	"github.com/atelier-lab/atelier/pkg/constants"
	sessiondb "github.com/atelier-lab/atelier/pkg/db/session"
	userdb "github.com/atelier-lab/atelier/pkg/db/user"
	"github.com/atelier-lab/atelier/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewUserMgr)
}

type UserMgr struct {
	name     string
	users    userdb.DBService
	sessions sessiondb.DBService
}

func NewUserMgr(conf *RegisterConfig) Manager {
	return &UserMgr{
		name:     "users",
		users:    conf.UserDB,
		sessions: conf.SessionDB,
	}
}

func (mgr *UserMgr) GetName() string { return mgr.name }

func (mgr *UserMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *UserMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/:name", mgr.GetUser)
}

func (mgr *UserMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("", mgr.ListUser)
	g.DELETE("/:name", mgr.DeleteUser)
	g.PUT("/:name/role", mgr.UpdateRole)
	g.PUT("/:name/password", mgr.ResetPassword)
}

type UserResp struct {
	ID           uint         `json:"id"`           // 用户ID
	Name         string       `json:"name"`         // 用户名称
	Nickname     *string      `json:"nickname"`     // 用户昵称
	Role         model.Role   `json:"role"`         // 用户角色
	Status       model.Status `json:"status"`       // 用户状态
	StorageUsage int64        `json:"storageUsage"` // 已用存储空间(字节)
	CreatedAt    time.Time    `json:"createdAt"`    // 创建时间
}

type UserDetailResp struct {
	ID        uint         `json:"id"`        // 用户ID
	Name      string       `json:"name"`      // 用户名称
	Nickname  *string      `json:"nickname"`  // 用户昵称
	Role      model.Role   `json:"role"`      // 用户角色
	Status    model.Status `json:"status"`    // 用户状态
	CreatedAt time.Time    `json:"createdAt"` // 创建时间
	Bio       *string      `json:"bio"`       // 简介
}

type UpdateRoleReq struct {
	Role model.Role `json:"role" binding:"required"`
}

type UserNameReq struct {
	Name string `uri:"name" binding:"required"`
}

// DeleteUser godoc
// @Summary 删除用户
// @Description 删除用户并撤销其全部会话
// @Tags User
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param name path string true "username"
// @Success 200 {object} resputil.Response[string] "删除成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/users/{name} [delete]
func (mgr *UserMgr) DeleteUser(c *gin.Context) {
	name := c.Param("name")
	if name == constants.AdminUserName || name == constants.GuestUserName {
		resputil.BadRequestError(c, "Built-in accounts cannot be deleted")
		return
	}
	user, err := mgr.users.GetByUserName(c, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "User not found", resputil.NotFound)
			return
		}
		resputil.Error(c, fmt.Sprintf("delete user failed, detail: %v", err), resputil.NotSpecified)
		return
	}

	// Deleting an account revokes every session it still has.
	if err := mgr.sessions.DeleteByUserID(c, user.ID); err != nil {
		resputil.Error(c, fmt.Sprintf("revoke sessions failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if err := mgr.users.DeleteByUserName(c, name); err != nil {
		resputil.Error(c, fmt.Sprintf("delete user failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("delete user success, username: %s", name)
	resputil.Success(c, "")
}

// ListUser godoc
// @Summary 列出用户信息
// @Description 列出用户信息（包含已用存储空间）
// @Tags User
// @Accept json
// @Produce json
// @Security SessionCookie
// @Success 200 {object} resputil.Response[[]UserResp] "成功获取用户信息"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/users [get]
func (mgr *UserMgr) ListUser(c *gin.Context) {
	users, err := mgr.users.ListAllUsers(c)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("list users failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	resp := make([]UserResp, 0, len(users))
	for i := range users {
		u := &users[i]
		resp = append(resp, UserResp{
			ID:           u.ID,
			Name:         u.Name,
			Nickname:     u.Nickname,
			Role:         u.Role,
			Status:       u.Status,
			StorageUsage: u.StorageUsage,
			CreatedAt:    u.CreatedAt,
		})
	}
	logutils.Log.Infof("list users success, count: %d", len(resp))
	resputil.Success(c, resp)
}

// GetUser godoc
// @Summary 获取单个用户信息
// @Description 获取指定用户的详细信息
// @Tags User
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param name path string true "username"
// @Success 200 {object} resputil.Response[UserDetailResp] "成功获取用户信息"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 404 {object} resputil.Response[any] "用户不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/users/{name} [get]
func (mgr *UserMgr) GetUser(c *gin.Context) {
	name := c.Param("name")
	user, err := mgr.users.GetByUserName(c, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "User not found", resputil.NotFound)
			return
		}
		resputil.Error(c, fmt.Sprintf("get user failed, detail: %v", err), resputil.NotSpecified)
		return
	}

	userResp := UserDetailResp{
		ID:        user.ID,
		Name:      user.Name,
		Nickname:  user.Nickname,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}

	// 从 Attributes 中获取需要的字段
	data := user.Attributes.Data()
	userResp.Bio = data.Bio

	resputil.Success(c, userResp)
}

// UpdateRole godoc
// @Summary 更新角色
// @Description 更新角色
// @Tags User
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param name path string true "username"
// @Param data body UpdateRoleReq true "role"
// @Success 200 {object} resputil.Response[string] "更新角色成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/users/{name}/role [put]
func (mgr *UserMgr) UpdateRole(c *gin.Context) {
	var req UpdateRoleReq
	var nameReq UserNameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, fmt.Sprintf("validate update parameters failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if err := c.ShouldBindUri(&nameReq); err != nil {
		resputil.Error(c, fmt.Sprintf("validate update parameters failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	name := nameReq.Name
	if req.Role < model.RoleGuest || req.Role > model.RoleAdmin {
		resputil.Error(c, fmt.Sprintf("role value exceeds the allowed range 1-3, detail: Role is %d, out of range", req.Role),
			resputil.NotSpecified)
		return
	}
	if err := mgr.users.UpdateRole(c, name, req.Role); err != nil {
		resputil.Error(c, fmt.Sprintf("update user role failed, detail: %v", err), resputil.NotSpecified)
		return
	}

	logutils.Log.Infof("update user role success, user: %s, role: %v", name, req.Role)

	resputil.Success(c, "")
}

type ResetPasswordReq struct {
	Password string `json:"password" binding:"required,min=8"`
}

// ResetPassword godoc
// @Summary 重置用户密码
// @Description 管理员直接设置指定用户的新密码
// @Tags User
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param name path string true "username"
// @Param data body ResetPasswordReq true "new password"
// @Success 200 {object} resputil.Response[string] "重置成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 404 {object} resputil.Response[any] "用户不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/users/{name}/password [put]
func (mgr *UserMgr) ResetPassword(c *gin.Context) {
	name := c.Param("name")
	var req ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	user, err := mgr.users.GetByUserName(c, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "User not found", resputil.NotFound)
			return
		}
		resputil.Error(c, fmt.Sprintf("get user failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resputil.Error(c, "Hash password failed", resputil.NotSpecified)
		return
	}
	if err := mgr.users.UpdatePassword(c, user.ID, string(hashed)); err != nil {
		resputil.Error(c, fmt.Sprintf("reset password failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("reset password success, username: %s", name)
	resputil.Success(c, "")
}
