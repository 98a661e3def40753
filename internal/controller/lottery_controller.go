package controller

import (
	"center_backend/internal/service"
	"center_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LotteryController struct {
	LotteryService *service.LotteryService
}

func NewLotteryController(lotteryService *service.LotteryService) *LotteryController {
	return &LotteryController{LotteryService: lotteryService}
}

// DrawRequest select 为用户组名，num 为抽取人数
// swagger:model DrawRequest
type DrawRequest struct {
	Select string `json:"select"`
	Num    int    `json:"num"`
}

// List godoc
// @Summary 可抽取的用户组
// @Tags 抽签
// @Produce json
// @Success 200 {object} util.Response{data=object} "amis 下拉选项"
// @Router /lottery/list [get]
func (c *LotteryController) List(ctx *gin.Context) {
	options, err := c.LotteryService.ListRoles(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "", gin.H{"options": options})
}

// Do godoc
// @Summary 随机抽取
// @Tags 抽签
// @Accept json
// @Produce json
// @Param request body DrawRequest true "用户组与人数"
// @Success 200 {object} util.Response{data=util.ItemsResponse{items=[]model.Member}} "抽取结果"
// @Failure 404 {object} util.Response "用户组不存在"
// @Router /lottery/do [post]
func (c *LotteryController) Do(ctx *gin.Context) {
	var req DrawRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrIncompleteData.Msg)
		return
	}

	members, err := c.LotteryService.Draw(ctx.Request.Context(), req.Select, req.Num)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Items(ctx, members)
}
