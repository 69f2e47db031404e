// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/33cn/twothirds/common"
	"github.com/33cn/twothirds/common/address"
	"github.com/33cn/twothirds/common/crypto"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Signature 交易签名
type Signature struct {
	Ty        int32  `json:"ty"`
	Pubkey    []byte `json:"pubkey"`
	Signature []byte `json:"signature"`
}

// Transaction 交易, 字段编号与 chain33 的 protobuf 定义一致
type Transaction struct {
	Execer    []byte     `json:"execer"`
	Payload   []byte     `json:"payload"`
	Signature *Signature `json:"signature"`
	Fee       int64      `json:"fee"`
	// 高度过期, 0 表示永不过期
	Expire int64 `json:"expire"`
	// 随机ID，可以防止payload 相同的时候，交易重复
	Nonce int64 `json:"nonce"`
	// 对方地址，如果没有对方地址，可以为空
	To string `json:"to"`
}

var txrand = rand.New(rand.NewSource(time.Now().UnixNano()))

// NewTransaction 构造未签名交易, To 为执行器地址
func NewTransaction(execer string, payload interface{}) *Transaction {
	return &Transaction{
		Execer:  []byte(execer),
		Payload: Encode(payload),
		Nonce:   txrand.Int63(),
		To:      address.ExecAddress(execer),
	}
}

// GetSignature 签名
func (tx *Transaction) GetSignature() *Signature {
	if tx == nil {
		return nil
	}
	return tx.Signature
}

// GetPubkey 公钥
func (sig *Signature) GetPubkey() []byte {
	if sig == nil {
		return nil
	}
	return sig.Pubkey
}

func (sig *Signature) marshal() []byte {
	var b []byte
	if sig.Ty != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(sig.Ty))
	}
	if len(sig.Pubkey) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, sig.Pubkey)
	}
	if len(sig.Signature) > 0 {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, sig.Signature)
	}
	return b
}

func (sig *Signature) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			sig.Ty = int32(v)
			b = b[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			sig.Pubkey = common.CopyBytes(v)
			b = b[n:]
		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			sig.Signature = common.CopyBytes(v)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return nil
}

// Marshal protobuf 编码, 零值字段省略
func (tx *Transaction) Marshal() []byte {
	var b []byte
	if len(tx.Execer) > 0 {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, tx.Execer)
	}
	if len(tx.Payload) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, tx.Payload)
	}
	if tx.Signature != nil {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, tx.Signature.marshal())
	}
	for _, f := range []struct {
		num protowire.Number
		v   int64
	}{{4, tx.Fee}, {5, tx.Expire}, {6, tx.Nonce}} {
		if f.v != 0 {
			b = protowire.AppendTag(b, f.num, protowire.VarintType)
			b = protowire.AppendVarint(b, uint64(f.v))
		}
	}
	if tx.To != "" {
		b = protowire.AppendTag(b, 7, protowire.BytesType)
		b = protowire.AppendString(b, tx.To)
	}
	return b
}

// Unmarshal protobuf 解码, 未知字段忽略
func (tx *Transaction) Unmarshal(b []byte) error {
	*tx = Transaction{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(ErrDecode, protowire.ParseError(n).Error())
		}
		b = b[n:]
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return errors.Wrap(ErrDecode, protowire.ParseError(n).Error())
			}
			b = b[n:]
			switch num {
			case 4:
				tx.Fee = int64(v)
			case 5:
				tx.Expire = int64(v)
			case 6:
				tx.Nonce = int64(v)
			}
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return errors.Wrap(ErrDecode, protowire.ParseError(n).Error())
			}
			b = b[n:]
			switch num {
			case 1:
				tx.Execer = common.CopyBytes(v)
			case 2:
				tx.Payload = common.CopyBytes(v)
			case 3:
				sig := &Signature{}
				if err := sig.unmarshal(v); err != nil {
					return errors.Wrap(ErrDecode, err.Error())
				}
				tx.Signature = sig
			case 7:
				tx.To = string(v)
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return errors.Wrap(ErrDecode, protowire.ParseError(n).Error())
			}
			b = b[n:]
		}
	}
	return nil
}

// DecodeTxHex 十六进制交易
func DecodeTxHex(data string) (*Transaction, error) {
	b, err := common.FromHex(data)
	if err != nil {
		return nil, errors.Wrap(ErrDecode, err.Error())
	}
	tx := &Transaction{}
	if err := tx.Unmarshal(b); err != nil {
		return nil, err
	}
	return tx, nil
}

// HexString 十六进制编码
func (tx *Transaction) HexString() string {
	return hex.EncodeToString(tx.Marshal())
}

func (tx *Transaction) unsignedBytes() []byte {
	copytx := *tx
	copytx.Signature = nil
	return copytx.Marshal()
}

// Hash 交易的hash不包含签名
func (tx *Transaction) Hash() []byte {
	return common.Sha256(tx.unsignedBytes())
}

// Size 交易大小
func (tx *Transaction) Size() int {
	return len(tx.Marshal())
}

// Sign 交易签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	data := tx.unsignedBytes()
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

// CheckSign 校验签名
func (tx *Transaction) CheckSign() bool {
	sig := tx.GetSignature()
	if sig == nil {
		return false
	}
	return crypto.CheckSign(sig.Ty, tx.unsignedBytes(), sig.Pubkey, sig.Signature)
}

// From 交易from地址
func (tx *Transaction) From() string {
	return address.PubKeyToAddr(tx.GetSignature().GetPubkey())
}

// IsExpire Expire 为过期高度, 0 表示永不过期
func (tx *Transaction) IsExpire(height int64) bool {
	return tx.Expire > 0 && tx.Expire <= height
}

// Check 交易进入执行前的基本检查
func (tx *Transaction) Check(height int64) error {
	if len(tx.Execer) == 0 {
		return ErrNoExecer
	}
	if tx.Size() > MaxTxSize {
		return ErrTxMsgSizeTooBig
	}
	if tx.Fee < 0 {
		return ErrAmount
	}
	if tx.IsExpire(height) {
		return ErrTxExpire
	}
	if !tx.CheckSign() {
		return ErrSign
	}
	return nil
}

// ActionName 获取tx交易的Actionname
func (tx *Transaction) ActionName() string {
	exec := LoadExecutor(string(tx.Execer))
	if exec == nil {
		return "unknown"
	}
	return exec.ActionName(tx)
}

// JSON Transaction交易信息转成json结构体
func (tx *Transaction) JSON() string {
	type transaction struct {
		Hash      string          `json:"hash,omitempty"`
		Execer    string          `json:"execer,omitempty"`
		Payload   json.RawMessage `json:"payload,omitempty"`
		Signature *Signature      `json:"signature,omitempty"`
		Fee       int64           `json:"fee,omitempty"`
		Expire    int64           `json:"expire,omitempty"`
		Nonce     int64           `json:"nonce,omitempty"`
		To        string          `json:"to,omitempty"`
	}
	newtx := &transaction{
		Hash:      hex.EncodeToString(tx.Hash()),
		Execer:    string(tx.Execer),
		Signature: tx.Signature,
		Fee:       tx.Fee,
		Expire:    tx.Expire,
		Nonce:     tx.Nonce,
		To:        tx.To,
	}
	if json.Valid(tx.Payload) {
		newtx.Payload = tx.Payload
	} else {
		newtx.Payload = Encode(hex.EncodeToString(tx.Payload))
	}
	data, err := json.MarshalIndent(newtx, "", "\t")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
