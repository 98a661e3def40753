package util

import "errors"

// Kind 错误分类，决定 HTTP 状态码
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidArgument
	KindUnauthenticated
	KindPermissionDenied
	KindAlreadySubmitted
)

// Error 携带分类和面向用户的提示信息
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// KindOf 返回错误的分类，未分类错误视为内部错误
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	ErrInvalidCredentials = NewError(KindUnauthenticated, "用户名或密码错误")
	ErrUnauthenticated    = NewError(KindUnauthenticated, "请先登录")
	ErrPermissionDenied   = NewError(KindPermissionDenied, "无权操作！")

	ErrIncompleteData  = NewError(KindInvalidArgument, "数据不完整！")
	ErrMissingLocation = NewError(KindInvalidArgument, "无法获取位置信息！")
	ErrUnknownSubmit   = NewError(KindInvalidArgument, "未知提交！")
	ErrIllegalSubmit   = NewError(KindInvalidArgument, "非法提交！")
	ErrInvalidTaskType = NewError(KindInvalidArgument, "任务类型无效")
	ErrInvalidExpire   = NewError(KindInvalidArgument, "截止时间无效")
	ErrTaskExpired     = NewError(KindInvalidArgument, "任务已截止")
	ErrInvalidFile     = NewError(KindInvalidArgument, "仅支持上传图片")
	ErrFileTooLarge    = NewError(KindInvalidArgument, "文件过大")

	ErrUserNotFound = NewError(KindNotFound, "用户不存在")
	ErrTaskNotFound = NewError(KindNotFound, "任务不存在")
	ErrRoleNotFound = NewError(KindNotFound, "用户组不存在")

	ErrAlreadyCheckedIn = NewError(KindAlreadySubmitted, "请勿重复签到！")
	ErrAlreadySubmitted = NewError(KindAlreadySubmitted, "请勿重复提交！")
)
