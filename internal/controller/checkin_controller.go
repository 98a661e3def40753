package controller

import (
	"center_backend/internal/service"
	"center_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CheckinController 签到任务与签到记录
type CheckinController struct {
	CheckinService *service.CheckinService
}

func NewCheckinController(checkinService *service.CheckinService) *CheckinController {
	return &CheckinController{CheckinService: checkinService}
}

// CreateCheckinRequest expireTime 为从现在起的分钟数
// swagger:model CreateCheckinRequest
type CreateCheckinRequest struct {
	TaskName   string `json:"taskName"`
	ExpireTime int    `json:"expireTime"`
}

// swagger:model CheckinRequest
type CheckinRequest struct {
	TaskID   uint             `json:"taskId"`
	UID      string           `json:"uid"`
	Location service.Location `json:"location"`
}

// swagger:model LeaveRequest
type LeaveRequest struct {
	TaskID uint   `json:"taskId"`
	UID    string `json:"uid"`
}

// Create godoc
// @Summary 创建签到任务
// @Tags 签到
// @Accept json
// @Produce json
// @Param request body CreateCheckinRequest true "任务名与有效分钟数"
// @Success 200 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "数据不完整"
// @Failure 401 {object} util.Response "请先登录"
// @Router /checkin/create [post]
func (c *CheckinController) Create(ctx *gin.Context) {
	var req CreateCheckinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrIncompleteData.Msg)
		return
	}

	task, err := c.CheckinService.CreateTask(ctx.Request.Context(), req.TaskName, req.ExpireTime, util.CurrentUID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "创建成功！", gin.H{"taskId": task.TaskID})
}

// Do godoc
// @Summary 学生签到
// @Tags 签到
// @Accept json
// @Produce json
// @Param request body CheckinRequest true "签到信息"
// @Success 200 {object} util.Response "签到成功"
// @Failure 400 {object} util.Response "数据不完整或无法获取位置"
// @Failure 404 {object} util.Response "任务或用户不存在"
// @Failure 409 {object} util.Response "请勿重复签到"
// @Router /checkin/do [post]
func (c *CheckinController) Do(ctx *gin.Context) {
	var req CheckinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrIncompleteData.Msg)
		return
	}

	if err := c.CheckinService.Submit(ctx.Request.Context(), req.TaskID, req.UID, req.Location); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "签到成功！", nil)
}

// Leave godoc
// @Summary 登记请假
// @Tags 签到
// @Accept json
// @Produce json
// @Param request body LeaveRequest true "请假学生"
// @Success 200 {object} util.Response "请假成功"
// @Failure 409 {object} util.Response "请勿重复签到"
// @Router /checkin/leave [post]
func (c *CheckinController) Leave(ctx *gin.Context) {
	var req LeaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrIncompleteData.Msg)
		return
	}

	if err := c.CheckinService.Leave(ctx.Request.Context(), req.TaskID, req.UID, util.CurrentUID(ctx)); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "请假成功！", nil)
}

// Tasks godoc
// @Summary 签到任务列表
// @Tags 签到
// @Produce json
// @Param getValid query string false "为真时只返回未截止任务"
// @Success 200 {object} util.Response{data=util.ItemsResponse{items=[]model.TaskView}} "成功"
// @Router /checkin/task [get]
func (c *CheckinController) Tasks(ctx *gin.Context) {
	tasks, err := c.CheckinService.ListTasks(ctx.Request.Context(), util.Truthy(ctx.Query("getValid")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Items(ctx, tasks)
}

// List godoc
// @Summary 未签到名单
// @Tags 签到
// @Produce json
// @Param taskId query int true "任务ID"
// @Success 200 {object} util.Response{data=util.ItemsResponse{items=[]model.Member}} "成功"
// @Failure 404 {object} util.Response "任务不存在"
// @Router /checkin/list [get]
func (c *CheckinController) List(ctx *gin.Context) {
	members, err := c.CheckinService.Unchecked(ctx.Request.Context(), util.MustParseUint(ctx.Query("taskId")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Items(ctx, members)
}

// Record godoc
// @Summary 签到记录
// @Tags 签到
// @Produce json
// @Param taskId query int true "任务ID"
// @Success 200 {object} util.Response{data=util.ItemsResponse{items=[]model.CheckinRecordView}} "成功"
// @Failure 404 {object} util.Response "任务不存在"
// @Router /checkin/record [get]
func (c *CheckinController) Record(ctx *gin.Context) {
	records, err := c.CheckinService.Records(ctx.Request.Context(), util.MustParseUint(ctx.Query("taskId")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Items(ctx, records)
}
