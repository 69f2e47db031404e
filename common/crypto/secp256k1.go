// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	"errors"
	"fmt"

	"github.com/33cn/twothirds/common"
	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// NameSecp256k1 driver name
const NameSecp256k1 = "secp256k1"

// Secp256k1Driver secp256k1 签名驱动
type Secp256k1Driver struct{}

// GenKey 生成私钥
func (d Secp256k1Driver) GenKey() (PrivKey, error) {
	priv, err := secp256k1.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	var privKeyBytes [32]byte
	copy(privKeyBytes[:], priv.Serialize())
	return PrivKeySecp256k1(privKeyBytes), nil
}

// PrivKeyFromBytes 字节转私钥
func (d Secp256k1Driver) PrivKeyFromBytes(b []byte) (PrivKey, error) {
	if len(b) != 32 {
		return nil, errors.New("invalid priv key byte")
	}
	var privKeyBytes [32]byte
	priv, _ := secp256k1.PrivKeyFromBytes(b)
	copy(privKeyBytes[:], priv.Serialize())
	return PrivKeySecp256k1(privKeyBytes), nil
}

// PubKeyFromBytes 字节转公钥
func (d Secp256k1Driver) PubKeyFromBytes(b []byte) (PubKey, error) {
	if len(b) != 33 {
		return nil, errors.New("invalid pub key byte")
	}
	var pubKeyBytes [33]byte
	copy(pubKeyBytes[:], b)
	return PubKeySecp256k1(pubKeyBytes), nil
}

// SignatureFromBytes 字节转签名
func (d Secp256k1Driver) SignatureFromBytes(b []byte) (Signature, error) {
	return SignatureSecp256k1(common.CopyBytes(b)), nil
}

// PrivKeySecp256k1 PrivKey
type PrivKeySecp256k1 [32]byte

// Bytes 字节格式
func (privKey PrivKeySecp256k1) Bytes() []byte {
	s := make([]byte, 32)
	copy(s, privKey[:])
	return s
}

// Sign 签名, msg 先做 sha256
func (privKey PrivKeySecp256k1) Sign(msg []byte) Signature {
	priv, _ := secp256k1.PrivKeyFromBytes(privKey[:])
	sig := ecdsa.Sign(priv, common.Sha256(msg))
	return SignatureSecp256k1(sig.Serialize())
}

// PubKey 私钥生成公钥
func (privKey PrivKeySecp256k1) PubKey() PubKey {
	_, pub := secp256k1.PrivKeyFromBytes(privKey[:])
	var pubKey PubKeySecp256k1
	copy(pubKey[:], pub.SerializeCompressed())
	return pubKey
}

// PubKeySecp256k1 压缩格式公钥
type PubKeySecp256k1 [33]byte

// Bytes 字节格式
func (pubKey PubKeySecp256k1) Bytes() []byte {
	s := make([]byte, 33)
	copy(s, pubKey[:])
	return s
}

// VerifyBytes 验证签名
func (pubKey PubKeySecp256k1) VerifyBytes(msg []byte, sig Signature) bool {
	sigSecp, ok := sig.(SignatureSecp256k1)
	if !ok {
		return false
	}
	pub, err := secp256k1.ParsePubKey(pubKey[:])
	if err != nil {
		return false
	}
	parsed, err := ecdsa.ParseDERSignature(sigSecp)
	if err != nil {
		return false
	}
	return parsed.Verify(common.Sha256(msg), pub)
}

func (pubKey PubKeySecp256k1) String() string {
	return fmt.Sprintf("PubKeySecp256k1{%X}", pubKey[:])
}

// KeyString Must return the full bytes in hex.
func (pubKey PubKeySecp256k1) KeyString() string {
	return fmt.Sprintf("%X", pubKey[:])
}

// SignatureSecp256k1 DER 编码的签名
type SignatureSecp256k1 []byte

// Bytes 字节格式
func (sig SignatureSecp256k1) Bytes() []byte {
	return common.CopyBytes(sig)
}

func (sig SignatureSecp256k1) String() string {
	if len(sig) < 6 {
		return fmt.Sprintf("/%X/", []byte(sig))
	}
	return fmt.Sprintf("/%X.../", []byte(sig[:6]))
}
