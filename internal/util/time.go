package util

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// maxDeadlineUnix 9999-12-31 23:59:59 UTC，超出即视为非法输入
const maxDeadlineUnix = 253402300799

func fromUnix(sec float64) (time.Time, error) {
	if sec < 0 || sec > maxDeadlineUnix {
		return time.Time{}, ErrInvalidExpire
	}
	return time.Unix(int64(sec), 0), nil
}

// ParseDeadline 解析绝对截止时间：数字为 Unix 秒，字符串为 TimeFormat（本地时区）
func ParseDeadline(raw json.RawMessage) (time.Time, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return time.Time{}, ErrInvalidExpire
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return time.Time{}, ErrInvalidExpire
		}
		str = strings.TrimSpace(str)
		if sec, err := strconv.ParseInt(str, 10, 64); err == nil {
			return fromUnix(float64(sec))
		}
		t, err := time.ParseInLocation(TimeFormat, str, time.Local)
		if err != nil {
			return time.Time{}, ErrInvalidExpire
		}
		return t, nil
	}

	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, ErrInvalidExpire
	}
	return fromUnix(sec)
}
