package service

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// 旧系统遗留的 SHA-1 十六进制摘要长度
const legacyDigestLen = 40

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword 校验密码；旧版 SHA-1 摘要校验通过时 needsUpgrade 为 true，调用方应改存 bcrypt
func VerifyPassword(stored, password string) (ok bool, needsUpgrade bool) {
	if stored == "" || password == "" {
		return false, false
	}

	if isLegacyDigest(stored) {
		sum := sha1.Sum([]byte(password))
		digest := hex.EncodeToString(sum[:])
		match := subtle.ConstantTimeCompare([]byte(digest), []byte(strings.ToLower(stored))) == 1
		return match, match
	}

	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil, false
}

func isLegacyDigest(s string) bool {
	if len(s) != legacyDigestLen {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
