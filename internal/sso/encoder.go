package sso

import (
	"crypto/cipher"
	"crypto/des"
	"encoding/hex"
	"errors"
	"strings"
	"unicode/utf16"
)

// Encoder 生成登录表单中的 rsa 字段
type Encoder interface {
	Encode(plain string) (string, error)
}

// DESEncoder 复现门户登录页 des.js 的 strEnc：
// 明文与密钥均按 UTF-16 码元每 4 个一组转为 64 位分组（不足补零），
// 每个明文分组依次用第一、二、三个密钥的所有分组做 DES 加密，输出大写十六进制。
// des.js 的置换选择 1 与标准 DES 不同，密钥分组需先经 portalKey 重排。
type DESEncoder struct {
	Keys []string
}

func NewDESEncoder(keys []string) *DESEncoder {
	return &DESEncoder{Keys: keys}
}

func (e *DESEncoder) Encode(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}

	var ciphers []cipher.Block
	for _, key := range e.Keys {
		for _, chunk := range chunkUnits(key) {
			block, err := des.NewCipher(portalKey(chunk))
			if err != nil {
				return "", err
			}
			ciphers = append(ciphers, block)
		}
	}
	if len(ciphers) == 0 {
		return "", errors.New("sso: no encoder keys configured")
	}

	var sb strings.Builder
	for _, block := range chunkUnits(plain) {
		for _, c := range ciphers {
			c.Encrypt(block, block)
		}
		sb.WriteString(strings.ToUpper(hex.EncodeToString(block)))
	}
	return sb.String(), nil
}

// pc1 标准 DES 置换选择 1（从 0 计数）
var pc1 = [56]int{
	56, 48, 40, 32, 24, 16, 8, 0, 57, 49, 41, 33, 25, 17,
	9, 1, 58, 50, 42, 34, 26, 18, 10, 2, 59, 51, 43, 35,
	62, 54, 46, 38, 30, 22, 14, 6, 61, 53, 45, 37, 29, 21,
	13, 5, 60, 52, 44, 36, 28, 20, 12, 4, 27, 19, 11, 3,
}

// portalKey 重排密钥位，使标准 DES 的子密钥与 des.js 一致。
// des.js 第 p 个密钥位取自原始第 8*(7-p%8)+p/8 位，标准 DES 取自第 pc1[p] 位。
func portalKey(key []byte) []byte {
	out := make([]byte, des.BlockSize)
	for p := 0; p < len(pc1); p++ {
		src := 8*(7-p%8) + p/8
		if key[src/8]&(0x80>>(src%8)) != 0 {
			out[pc1[p]/8] |= 0x80 >> (pc1[p] % 8)
		}
	}
	return out
}

// chunkUnits 将字符串按 4 个 UTF-16 码元切成 8 字节大端分组
func chunkUnits(s string) [][]byte {
	units := utf16.Encode([]rune(s))
	var chunks [][]byte
	for start := 0; start < len(units); start += 4 {
		block := make([]byte, des.BlockSize)
		for i := 0; i < 4 && start+i < len(units); i++ {
			u := units[start+i]
			block[2*i] = byte(u >> 8)
			block[2*i+1] = byte(u)
		}
		chunks = append(chunks, block)
	}
	return chunks
}

// utf16Len 与 JavaScript String.length 一致的长度
func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}
