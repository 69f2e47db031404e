// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/33cn/twothirds/common"
	"github.com/33cn/twothirds/types"
)

// ReqNil 无参数
type ReqNil struct{}

// RawParm 十六进制编码的交易
type RawParm struct {
	Data string `json:"data"`
}

// QueryParm 交易 hash
type QueryParm struct {
	Hash string `json:"hash"`
}

// Query4Jrpc 执行器查询
type Query4Jrpc struct {
	Execer   string          `json:"execer"`
	FuncName string          `json:"funcName"`
	Payload  json.RawMessage `json:"payload"`
}

// ReqBalance 余额查询
type ReqBalance struct {
	Addresses []string `json:"addresses"`
}

// Signature 签名
type Signature struct {
	Ty        int32  `json:"ty"`
	Pubkey    string `json:"pubkey"`
	Signature string `json:"signature"`
}

// Transaction 交易
type Transaction struct {
	Hash       string          `json:"hash"`
	Execer     string          `json:"execer"`
	Payload    json.RawMessage `json:"payload"`
	RawPayload string          `json:"rawPayload"`
	Signature  *Signature      `json:"signature"`
	Fee        int64           `json:"fee"`
	Expire     int64           `json:"expire"`
	Nonce      int64           `json:"nonce"`
	To         string          `json:"to"`
	From       string          `json:"from"`
}

// ReceiptLogResult 解码后的日志
type ReceiptLogResult struct {
	Ty     int32           `json:"ty"`
	TyName string          `json:"tyName"`
	Log    json.RawMessage `json:"log"`
	RawLog string          `json:"rawLog"`
}

// ReceiptDataResult 交易执行结果
type ReceiptDataResult struct {
	Ty     int32               `json:"ty"`
	TyName string              `json:"tyName"`
	Logs   []*ReceiptLogResult `json:"logs"`
}

// TransactionDetail 交易详情
type TransactionDetail struct {
	Tx         *Transaction       `json:"tx"`
	Receipt    *ReceiptDataResult `json:"receipt"`
	Height     int64              `json:"height"`
	Index      int32              `json:"index"`
	Blocktime  int64              `json:"blocktime"`
	ActionName string             `json:"actionName"`
}

// DecodeTx 转换成 json 友好的格式
func DecodeTx(tx *types.Transaction) *Transaction {
	if tx == nil {
		return nil
	}
	result := &Transaction{
		Hash:       common.ToHex(tx.Hash()),
		Execer:     string(tx.Execer),
		RawPayload: common.ToHex(tx.Payload),
		Fee:        tx.Fee,
		Expire:     tx.Expire,
		Nonce:      tx.Nonce,
		To:         tx.To,
	}
	if json.Valid(tx.Payload) {
		result.Payload = tx.Payload
	}
	if sig := tx.GetSignature(); sig != nil {
		result.Signature = &Signature{
			Ty:        sig.Ty,
			Pubkey:    common.ToHex(sig.Pubkey),
			Signature: common.ToHex(sig.Signature),
		}
		result.From = tx.From()
	}
	return result
}

// DecodeLog 按注册的日志类型解码
func DecodeLog(rlog *types.ReceiptData) *ReceiptDataResult {
	rd := &ReceiptDataResult{Ty: rlog.Ty, TyName: types.ExecTyName(rlog.Ty)}
	for _, l := range rlog.Logs {
		result := &ReceiptLogResult{Ty: l.Ty, TyName: "LogReserved", RawLog: common.ToHex(l.Log)}
		if logType := types.LoadLog(l.Ty); logType != nil {
			result.TyName = logType.Name()
			if v, err := logType.Decode(l.Log); err == nil {
				result.Log, _ = json.Marshal(v)
			}
		}
		rd.Logs = append(rd.Logs, result)
	}
	return rd
}

// DecodeTxResult 交易详情
func DecodeTxResult(r *types.TxResult) *TransactionDetail {
	detail := &TransactionDetail{
		Tx:         DecodeTx(r.Tx),
		Height:     r.Height,
		Index:      r.Index,
		Blocktime:  r.Blocktime,
		ActionName: r.ActionName,
	}
	if r.Receipt != nil {
		detail.Receipt = DecodeLog(r.Receipt)
	}
	return detail
}
