package controller

import (
	"center_backend/internal/config"
	"center_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageController 前端页面与服务信息
type PageController struct {
	App *config.AppConfig
}

func NewPageController(app *config.AppConfig) *PageController {
	return &PageController{App: app}
}

func (c *PageController) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", gin.H{"title": c.App.Production})
}

// Login 已登录时直接进入管理页
func (c *PageController) Login(ctx *gin.Context) {
	if util.CurrentUID(ctx) != "" {
		ctx.Redirect(http.StatusFound, "/admin")
		return
	}
	ctx.HTML(http.StatusOK, "login.html", gin.H{"title": c.App.Production})
}

func (c *PageController) Admin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "admin.html", gin.H{"title": c.App.Production})
}

// Meta godoc
// @Summary 服务信息
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Router / [get]
func (c *PageController) Meta(ctx *gin.Context) {
	util.Success(ctx, "", gin.H{
		"production":  c.App.Production,
		"author":      c.App.Author,
		"environment": c.App.Environment,
	})
}
