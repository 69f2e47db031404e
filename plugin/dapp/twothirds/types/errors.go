// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrGameNotFound 游戏不存在
	ErrGameNotFound = errors.New("ErrGameNotFound")
	// ErrDuplicateParticipant 本轮已经参与过
	ErrDuplicateParticipant = errors.New("ErrDuplicateParticipant")
	// ErrInvalidGuess 押注必须大于 0
	ErrInvalidGuess = errors.New("ErrInvalidGuess")
	// ErrRoundClosed 本轮已经结束
	ErrRoundClosed = errors.New("ErrRoundClosed")
	// ErrTransferFailure 派奖或者退款失败, 整笔交易回滚
	ErrTransferFailure = errors.New("ErrTransferFailure")
	ErrInvalidBounds   = errors.New("ErrInvalidBounds")
	ErrInvalidTieBreak = errors.New("ErrInvalidTieBreak")
	ErrInvalidTimeout  = errors.New("ErrInvalidTimeout")
	// ErrExpireNotAllowed 没有开启超时, 或者还没有到超时高度
	ErrExpireNotAllowed = errors.New("ErrExpireNotAllowed")
	ErrRoundEmpty       = errors.New("ErrRoundEmpty")
	ErrPotOverflow      = errors.New("ErrPotOverflow")
)
