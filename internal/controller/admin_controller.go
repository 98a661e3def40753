package controller

import (
	"center_backend/internal/service"
	"center_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController 管理员账号维护
type AdminController struct {
	UserService *service.UserService
}

func NewAdminController(userService *service.UserService) *AdminController {
	return &AdminController{UserService: userService}
}

// swagger:model AddAdminRequest
type AddAdminRequest struct {
	UID string `json:"uid"`
	// Username 旧版前端使用的字段名，与 uid 等价
	Username string `json:"username"`
	Password string `json:"password"`
	Tag      string `json:"tag"`
}

// swagger:model DeleteAdminRequest
type DeleteAdminRequest struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
}

func targetUID(uid, username string) string {
	if uid != "" {
		return uid
	}
	return username
}

// swagger:model EditPasswordRequest
type EditPasswordRequest struct {
	Password string `json:"password"`
}

// Add godoc
// @Summary 添加管理员
// @Description 仅超级管理员可用
// @Tags 管理员
// @Accept json
// @Produce json
// @Param request body AddAdminRequest true "管理员信息"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "数据不完整"
// @Failure 401 {object} util.Response "无权操作"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /admin/add [post]
func (c *AdminController) Add(ctx *gin.Context) {
	var req AddAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrIncompleteData.Msg)
		return
	}

	if err := c.UserService.AddAdmin(ctx.Request.Context(), util.CurrentUID(ctx), targetUID(req.UID, req.Username), req.Password, req.Tag); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "添加成功！", nil)
}

// Delete godoc
// @Summary 删除管理员
// @Description 仅超级管理员可用，清空目标用户的密码、标签和管理员标记
// @Tags 管理员
// @Accept json
// @Produce json
// @Param request body DeleteAdminRequest true "目标用户"
// @Success 200 {object} util.Response "成功"
// @Failure 401 {object} util.Response "无权操作"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /admin/delete [post]
func (c *AdminController) Delete(ctx *gin.Context) {
	var req DeleteAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrIncompleteData.Msg)
		return
	}

	if err := c.UserService.DeleteAdmin(ctx.Request.Context(), util.CurrentUID(ctx), targetUID(req.UID, req.Username)); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "删除成功！", nil)
}

// Edit godoc
// @Summary 修改自己的密码
// @Tags 管理员
// @Accept json
// @Produce json
// @Param request body EditPasswordRequest true "新密码"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "数据不完整"
// @Router /admin/edit [post]
func (c *AdminController) Edit(ctx *gin.Context) {
	var req EditPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrIncompleteData.Msg)
		return
	}

	if err := c.UserService.ChangePassword(ctx.Request.Context(), util.CurrentUID(ctx), req.Password); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "修改成功！", nil)
}
