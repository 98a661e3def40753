package controller

import (
	"bytes"
	"center_backend/internal/model"
	"center_backend/internal/service"
	"center_backend/internal/util"
	"encoding/json"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CollectController 收集任务与提交
type CollectController struct {
	CollectService *service.CollectService
}

func NewCollectController(collectService *service.CollectService) *CollectController {
	return &CollectController{CollectService: collectService}
}

// CreateCollectRequest expireTime 为 Unix 秒或 "2006-01-02 15:04:05"
// swagger:model CreateCollectRequest
type CreateCollectRequest struct {
	TaskName   string          `json:"taskName"`
	ExpireTime json.RawMessage `json:"expireTime" swaggertype:"string"`
	TaskType   string          `json:"taskType"`
}

// CollectRequest 图片任务提交 image，文本任务提交 content
// swagger:model CollectRequest
type CollectRequest struct {
	TaskID   uint   `json:"taskId"`
	UID      string `json:"uid"`
	TaskType string `json:"taskType"`
	Image    string `json:"image"`
	Content  string `json:"content"`
}

// Payload 按提交类型取出内容
func (r CollectRequest) Payload() string {
	if model.CollectType(r.TaskType) == model.CollectImage {
		return r.Image
	}
	return r.Content
}

// Create godoc
// @Summary 创建收集任务
// @Tags 收集
// @Accept json
// @Produce json
// @Param request body CreateCollectRequest true "任务信息"
// @Success 200 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "参数错误"
// @Router /collect/create [post]
func (c *CollectController) Create(ctx *gin.Context) {
	var req CreateCollectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrIncompleteData.Msg)
		return
	}

	expire, err := util.ParseDeadline(req.ExpireTime)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	task, err := c.CollectService.CreateTask(ctx.Request.Context(), req.TaskName, model.CollectType(req.TaskType), expire, util.CurrentUID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "创建成功！", gin.H{"taskId": task.TaskID})
}

// Do godoc
// @Summary 提交收集内容
// @Tags 收集
// @Accept json
// @Produce json
// @Param request body CollectRequest true "提交内容"
// @Success 200 {object} util.Response "提交成功"
// @Failure 400 {object} util.Response "未知提交或非法提交"
// @Failure 409 {object} util.Response "请勿重复提交"
// @Router /collect/do [post]
func (c *CollectController) Do(ctx *gin.Context) {
	var req CollectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrUnknownSubmit.Msg)
		return
	}

	err := c.CollectService.Submit(ctx.Request.Context(), req.TaskID, req.UID, model.CollectType(req.TaskType), req.Payload())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "提交成功！", nil)
}

// Tasks godoc
// @Summary 收集任务列表
// @Tags 收集
// @Produce json
// @Param taskType query string true "image 或 text"
// @Param getValid query string false "为真时只返回未截止任务"
// @Success 200 {object} util.Response{data=util.ItemsResponse{items=[]model.TaskView}} "成功"
// @Router /collect/task [get]
func (c *CollectController) Tasks(ctx *gin.Context) {
	tasks, err := c.CollectService.ListTasks(ctx.Request.Context(), model.CollectType(ctx.Query("taskType")), util.Truthy(ctx.Query("getValid")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Items(ctx, tasks)
}

// List godoc
// @Summary 未提交名单
// @Tags 收集
// @Produce json
// @Param taskId query int true "任务ID"
// @Success 200 {object} util.Response{data=util.ItemsResponse{items=[]model.Member}} "成功"
// @Router /collect/list [get]
func (c *CollectController) List(ctx *gin.Context) {
	members, err := c.CollectService.Unsubmitted(ctx.Request.Context(), util.MustParseUint(ctx.Query("taskId")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Items(ctx, members)
}

// Record godoc
// @Summary 提交记录
// @Tags 收集
// @Produce json
// @Param taskId query int true "任务ID"
// @Success 200 {object} util.Response{data=util.ItemsResponse{items=[]model.CollectRecordView}} "成功"
// @Router /collect/record [get]
func (c *CollectController) Record(ctx *gin.Context) {
	records, err := c.CollectService.Records(ctx.Request.Context(), util.MustParseUint(ctx.Query("taskId")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Items(ctx, records)
}

// Download godoc
// @Summary 打包下载全部提交
// @Tags 收集
// @Produce application/zip
// @Param taskId query int true "任务ID"
// @Success 200 {file} binary "zip 文件"
// @Failure 404 {object} util.Response "任务不存在"
// @Router /collect/download [get]
func (c *CollectController) Download(ctx *gin.Context) {
	var buf bytes.Buffer
	name, err := c.CollectService.Archive(ctx.Request.Context(), util.MustParseUint(ctx.Query("taskId")), &buf)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	ctx.Data(http.StatusOK, "application/zip", buf.Bytes())
}
