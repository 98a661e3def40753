package controller

import (
	"center_backend/internal/middleware"
	"center_backend/internal/service"
	"center_backend/internal/util"
	"center_backend/pkg/logger"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login godoc
// @Summary 管理员登录
// @Description 校验本地密码，管理员本地校验失败时回退到统一身份认证
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭据"
// @Success 200 {object} util.Response{data=object} "登录成功"
// @Failure 401 {object} util.Response "用户名或密码错误"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, http.StatusUnauthorized, util.ErrInvalidCredentials.Msg)
		return
	}

	token, user, err := c.AuthService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	session := sessions.Default(ctx)
	session.Set(middleware.SessionTokenKey, token)
	if err := session.Save(); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, "登录成功", gin.H{"user": user.Name})
}

// Logout godoc
// @Summary 退出登录
// @Tags 认证
// @Success 302 "跳转到登录页"
// @Router /logout [get]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.AuthService.Logout(ctx.Request.Context(), middleware.TokenFromRequest(ctx)); err != nil {
		logger.Log.Warn("Failed to revoke session", zap.Error(err))
	}

	session := sessions.Default(ctx)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		logger.Log.Warn("Failed to clear session cookie", zap.Error(err))
	}

	ctx.Redirect(http.StatusFound, "/login")
}

// GetUser godoc
// @Summary 当前登录用户
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 401 {object} util.Response "请先登录"
// @Router /user [get]
func (c *AuthController) GetUser(ctx *gin.Context) {
	user, err := c.AuthService.GetCurrentUser(ctx.Request.Context(), util.CurrentUID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "", gin.H{"user": user.Name})
}
