// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	tt "github.com/33cn/twothirds/plugin/dapp/twothirds/types"
	"github.com/33cn/twothirds/types"
)

// Query_HasJoined 地址是否参与了当前轮
func (t *TwoThirds) Query_HasJoined(in *tt.ReqHasJoined) (interface{}, error) {
	if in.GameID == "" || in.Addr == "" {
		return nil, types.ErrInvalidParam
	}
	game, err := readGame(t.GetStateDB(), in.GameID)
	if err != nil {
		return nil, err
	}
	return &tt.ReplyHasJoined{
		RoundID:   game.Round.RoundID,
		HasJoined: hasJoined(game.Round, in.Addr),
	}, nil
}

// Query_CurrentRound 当前轮
func (t *TwoThirds) Query_CurrentRound(in *tt.ReqGameInfo) (interface{}, error) {
	if in.GameID == "" {
		return nil, types.ErrInvalidParam
	}
	game, err := readGame(t.GetStateDB(), in.GameID)
	if err != nil {
		return nil, err
	}
	return game.Round, nil
}

// Query_GameInfo 游戏配置与当前轮
func (t *TwoThirds) Query_GameInfo(in *tt.ReqGameInfo) (interface{}, error) {
	if in.GameID == "" {
		return nil, types.ErrInvalidParam
	}
	return readGame(t.GetStateDB(), in.GameID)
}
