// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// 账本通用错误
var (
	ErrNoBalance               = errors.New("ErrNoBalance")
	ErrAmount                  = errors.New("ErrAmount")
	ErrAccountLocked           = errors.New("ErrAccountLocked")
	ErrSendSameToRecv          = errors.New("ErrSendSameToRecv")
	ErrBalanceOverflow         = errors.New("ErrBalanceOverflow")
	ErrInvalidAddress          = errors.New("ErrInvalidAddress")
	ErrFromAddr                = errors.New("ErrFromAddr")
	ErrToAddrNotSameToExecAddr = errors.New("ErrToAddrNotSameToExecAddr")
	ErrTxDup                   = errors.New("ErrTxDup")
	ErrTxExpire                = errors.New("ErrTxExpire")
	ErrTxMsgSizeTooBig         = errors.New("ErrTxMsgSizeTooBig")
	ErrSign                    = errors.New("ErrSign")
	ErrNoExecer                = errors.New("ErrNoExecer")
	ErrUnknowDriver            = errors.New("ErrUnknowDriver")
	ErrActionNotSupport        = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport         = errors.New("ErrQueryNotSupport")
	ErrNotFound                = errors.New("ErrNotFound")
	ErrEmpty                   = errors.New("ErrEmpty")
	ErrInvalidParam            = errors.New("ErrInvalidParam")
	ErrDecode                  = errors.New("ErrDecode")
	ErrChainClosed             = errors.New("ErrChainClosed")
	ErrGenesisDone             = errors.New("ErrGenesisDone")
	ErrConfig                  = errors.New("ErrConfig")
	ErrNotAllowKey             = errors.New("ErrNotAllowKey")
	ErrNotAllowMemSetKey       = errors.New("ErrNotAllowMemSetKey")
	ErrExecPanic               = errors.New("ErrExecPanic")
	ErrRateLimited             = errors.New("ErrRateLimited")
	ErrJrpcNotAllow            = errors.New("ErrJrpcNotAllow")
)
