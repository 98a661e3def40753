package middleware

import (
	"center_backend/internal/service"
	"center_backend/internal/util"
	"center_backend/pkg/logger"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionTokenKey 会话 cookie 中保存令牌的键
const SessionTokenKey = "token"

// TokenFromRequest 优先读取会话 cookie，其次是 Authorization 头
func TokenFromRequest(c *gin.Context) string {
	if token, ok := sessions.Default(c).Get(SessionTokenKey).(string); ok && token != "" {
		return token
	}
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func resolve(c *gin.Context, sessionService *service.SessionService) bool {
	claims, err := sessionService.Resolve(c.Request.Context(), TokenFromRequest(c))
	if err != nil {
		if util.KindOf(err) == util.KindInternal {
			logger.Log.Error("Session lookup failed", zap.Error(err))
		}
		return false
	}
	c.Set(util.ContextUserKey, claims)
	return true
}

// AuthMiddleware 接口鉴权，未登录返回 401
func AuthMiddleware(sessionService *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !resolve(c, sessionService) {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// PageAuthMiddleware 页面鉴权，未登录跳转登录页
func PageAuthMiddleware(sessionService *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !resolve(c, sessionService) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuthMiddleware 已登录时写入当前用户，未登录也放行
func OptionalAuthMiddleware(sessionService *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolve(c, sessionService)
		c.Next()
	}
}
