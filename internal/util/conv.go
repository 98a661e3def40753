package util

import (
	"strconv"
)

// MustParseUint 将字符串转换为无符号整数，解析失败时返回 0
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// Truthy 查询参数是否为真值（如 getValid=1）
func Truthy(s string) bool {
	switch s {
	case "", "0", "false", "False", "FALSE":
		return false
	}
	return true
}
