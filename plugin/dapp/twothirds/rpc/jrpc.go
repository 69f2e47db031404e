// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	tt "github.com/33cn/twothirds/plugin/dapp/twothirds/types"
	"github.com/33cn/twothirds/types"
)

// CreateDeployTx 创建游戏的未签名交易
func (c *Jrpc) CreateDeployTx(in *tt.TwoThirdsDeploy, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	if in.MinBound != 0 || in.MaxBound != 0 {
		if in.MinBound < 1 || in.MaxBound < in.MinBound || in.MaxBound > tt.MaxParticipants {
			return tt.ErrInvalidBounds
		}
	}
	reply, err := c.cli.createTx("Deploy", in)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// CreateJoinTx 押注的未签名交易
func (c *Jrpc) CreateJoinTx(in *tt.TwoThirdsJoin, result *interface{}) error {
	if in == nil || in.GameID == "" {
		return types.ErrInvalidParam
	}
	if in.Amount <= 0 || in.Amount > types.MaxCoin {
		return tt.ErrInvalidGuess
	}
	reply, err := c.cli.createTx("Join", in)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// CreateExpireTx 超时退款的未签名交易
func (c *Jrpc) CreateExpireTx(in *tt.TwoThirdsExpire, result *interface{}) error {
	if in == nil || in.GameID == "" {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.createTx("Expire", in)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// HasJoined 地址是否参与了当前轮
func (c *Jrpc) HasJoined(in *tt.ReqHasJoined, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.query(tt.FuncNameHasJoined, in)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// CurrentRound 当前轮
func (c *Jrpc) CurrentRound(in *tt.ReqGameInfo, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.query(tt.FuncNameCurrentRound, in)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GameInfo 游戏信息
func (c *Jrpc) GameInfo(in *tt.ReqGameInfo, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.query(tt.FuncNameGameInfo, in)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}
