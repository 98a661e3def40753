package controller

import (
	"center_backend/internal/service"
	"center_backend/internal/util"
	"errors"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

// Upload godoc
// @Summary 上传图片
// @Description 仅接受图片，保存后返回相对访问路径
// @Tags 上传
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "图片文件"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "文件类型或大小不合法"
// @Router /upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, util.ErrInvalidFile.Msg)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.StorageService.UploadImage(ctx.Request.Context(), file, fileHeader.Size)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "", gin.H{"value": url})
}

// Serve 读取已上传的文件
func (c *UploadController) Serve(ctx *gin.Context) {
	key := strings.TrimPrefix(ctx.Param("filepath"), "/")
	if _, ok := c.StorageService.KeyOf(c.StorageService.GetURL(key)); !ok {
		ctx.Status(http.StatusNotFound)
		return
	}

	body, err := c.StorageService.Open(ctx.Request.Context(), key)
	if errors.Is(err, service.ErrObjectNotFound) {
		ctx.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer body.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ctx.DataFromReader(http.StatusOK, -1, contentType, body, nil)
}
