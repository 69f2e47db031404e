// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto 签名接口定义
package crypto

import (
	"errors"
	"fmt"
)

// PrivKey 私钥
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) Signature
	PubKey() PubKey
}

// Signature 签名
type Signature interface {
	Bytes() []byte
	String() string
}

// PubKey 公钥
type PubKey interface {
	Bytes() []byte
	KeyString() string
	VerifyBytes(msg []byte, sig Signature) bool
}

// Crypto 加密
type Crypto interface {
	GenKey() (PrivKey, error)
	SignatureFromBytes([]byte) (Signature, error)
	PrivKeyFromBytes([]byte) (PrivKey, error)
	PubKeyFromBytes([]byte) (PubKey, error)
}

// sign types carried in a transaction signature
const (
	SECP256K1 = 1
)

// ErrNotSupport unknown sign type
var ErrNotSupport = errors.New("ErrNotSupport")

// New 按名称获取签名驱动
func New(name string) (Crypto, error) {
	if name == NameSecp256k1 {
		return Secp256k1Driver{}, nil
	}
	return nil, fmt.Errorf("unknown driver %q", name)
}

// GetName sign type -> name
func GetName(ty int32) string {
	if ty == SECP256K1 {
		return NameSecp256k1
	}
	return "unknown"
}

// CheckSign verify msg against a raw pubkey and signature of the given type
func CheckSign(ty int32, msg, pub, sig []byte) bool {
	c, err := New(GetName(ty))
	if err != nil {
		return false
	}
	pubKey, err := c.PubKeyFromBytes(pub)
	if err != nil {
		return false
	}
	signature, err := c.SignatureFromBytes(sig)
	if err != nil {
		return false
	}
	return pubKey.VerifyBytes(msg, signature)
}
