package util

import (
	"center_backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构，status 为 0 表示成功（与前端 amis 约定一致）
type Response struct {
	Status int         `json:"status"`
	Msg    string      `json:"msg"`
	Data   interface{} `json:"data,omitempty"`
}

// ItemsResponse 列表数据
type ItemsResponse struct {
	Items interface{} `json:"items"`
}

func Success(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status: 0,
		Msg:    msg,
		Data:   data,
	})
}

func Items(c *gin.Context, items interface{}) {
	Success(c, "", ItemsResponse{Items: items})
}

func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Status: code,
		Msg:    message,
	})
}

func Unauthorized(c *gin.Context) {
	Fail(c, http.StatusUnauthorized, ErrUnauthenticated.Msg)
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func InternalServerError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, "服务器内部错误")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c)
}

// StatusOf 错误分类对应的 HTTP 状态码
func StatusOf(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindUnauthenticated, KindPermissionDenied:
		return http.StatusUnauthorized
	case KindAlreadySubmitted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleError 按错误分类输出响应，未分类错误记录日志后返回 500
func HandleError(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindInternal {
		LogInternalError(c, err)
		return
	}
	Fail(c, StatusOf(e.Kind), e.Msg)
}
