// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// KeyValue 状态数据
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

// ReceiptLog 交易执行日志
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log []byte `json:"log"`
}

// Receipt 执行器返回的结果, KV 写入状态数据库
type Receipt struct {
	Ty   int32         `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

// ReceiptData 保存到本地的交易结果, 不含 KV
type ReceiptData struct {
	Ty   int32         `json:"ty"`
	Logs []*ReceiptLog `json:"logs"`
}

// Data 去掉 kv 的 receipt
func (r *Receipt) Data() *ReceiptData {
	return &ReceiptData{Ty: r.Ty, Logs: r.Logs}
}

// TxResult 交易结果
type TxResult struct {
	Height     int64        `json:"height"`
	Index      int32        `json:"index"`
	Tx         *Transaction `json:"tx"`
	Receipt    *ReceiptData `json:"receipt"`
	Blocktime  int64        `json:"blocktime"`
	ActionName string       `json:"actionName"`
}

// MergeReceipt 合并两个 receipt, 保持 KV 与日志的先后顺序
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt1 == nil {
		return receipt2
	}
	if receipt2 == nil {
		return receipt1
	}
	receipt1.KV = append(receipt1.KV, receipt2.KV...)
	receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	return receipt1
}

// NewErrReceipt 执行失败的 receipt, 只保留一条错误日志
func NewErrReceipt(err error) *Receipt {
	return &Receipt{
		Ty:   ExecErr,
		Logs: []*ReceiptLog{{Ty: TyLogErr, Log: Encode(err.Error())}},
	}
}
