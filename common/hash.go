// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package common 哈希与编码相关的基础函数
package common

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/ripemd160"
)

// ToHex 带 0x 前缀的小写 hex, 空输入返回空串
func ToHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return "0x" + Bytes2Hex(b)
}

// FromHex 解析 hex, 0x 前缀可选, 奇数长度在前面补 0
func FromHex(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

// CopyBytes nil 仍然返回 nil
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}

// Bytes2Hex 不带前缀
func Bytes2Hex(d []byte) string {
	return hex.EncodeToString(d)
}

// Sha256 单次 sha256
func Sha256(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// Sha2Sum sha256(sha256(b)), 地址校验和使用
func Sha2Sum(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

// Rimp160AfterSha256 ripemd160(sha256(b)), 公钥与执行器名生成地址时使用
func Rimp160AfterSha256(b []byte) (out [20]byte) {
	first := sha256.Sum256(b)
	rim := ripemd160.New()
	rim.Write(first[:])
	copy(out[:], rim.Sum(nil))
	return out
}
