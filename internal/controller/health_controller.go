package controller

import (
	"center_backend/internal/util"
	"center_backend/pkg/logger"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

// @Summary 健康检查
// @Description 检查数据库与会话存储
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	components := gin.H{"database": "up", "redis": "up"}
	healthy := true

	sqlDB, err := c.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(pingCtx)
	}
	if err != nil {
		logger.Log.Warn("Database ping failed", zap.Error(err))
		components["database"] = "down"
		healthy = false
	}

	if err := c.Redis.Ping(pingCtx).Err(); err != nil {
		logger.Log.Warn("Redis ping failed", zap.Error(err))
		components["redis"] = "down"
		healthy = false
	}

	if !healthy {
		ctx.JSON(http.StatusServiceUnavailable, util.Response{
			Status: http.StatusServiceUnavailable,
			Msg:    "服务不可用",
			Data:   gin.H{"status": "degraded", "components": components},
		})
		return
	}
	util.Success(ctx, "", gin.H{"status": "ok", "components": components})
}
