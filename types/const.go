// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin          int64 = 1e8
	MaxCoin       int64 = 1e17
	CoinPrecision int32 = 8
	MaxTxSize           = 100000 //100K
)

// 系统执行器名称
const (
	CoinsX = "coins"
)

// ty = 1 -> secp256k1
const (
	SECP256K1 = 1
)

// log type
const (
	TyLogReserved = 0
	TyLogErr      = 1
	TyLogFee      = 2
	//coins
	TyLogTransfer        = 3
	TyLogGenesis         = 4
	TyLogDeposit         = 5
	TyLogExecTransfer    = 6
	TyLogExecWithdraw    = 7
	TyLogExecDeposit     = 8
	TyLogExecFrozen      = 9
	TyLogExecActive      = 10
	TyLogGenesisTransfer = 11
	TyLogGenesisDeposit  = 12
	TyLogAccountLock     = 13
)

// exec type
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// ExecTyName 交易执行结果名称
func ExecTyName(ty int32) string {
	switch ty {
	case ExecErr:
		return "ExecErr"
	case ExecPack:
		return "ExecPack"
	case ExecOk:
		return "ExecOk"
	}
	return "unknown"
}
