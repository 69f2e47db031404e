// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types twothirds 游戏的交易, 状态与日志
package types

import (
	"github.com/33cn/twothirds/types"
)

func init() {
	// init executor type
	types.RegistorExecutor(TwoThirdsX, NewType())

	types.RegistorLog(TyLogTwoThirdsDeploy, types.NewLogType("LogTwoThirdsDeploy", func() interface{} { return &ReceiptDeploy{} }))
	types.RegistorLog(TyLogTwoThirdsJoin, types.NewLogType("LogTwoThirdsJoin", func() interface{} { return &ReceiptJoin{} }))
	types.RegistorLog(TyLogTwoThirdsRoundOpened, types.NewLogType("LogTwoThirdsRoundOpened", func() interface{} { return &ReceiptRoundOpened{} }))
	types.RegistorLog(TyLogTwoThirdsRoundEnded, types.NewLogType("LogTwoThirdsRoundEnded", func() interface{} { return &ReceiptRoundEnded{} }))
	types.RegistorLog(TyLogTwoThirdsRoundExpired, types.NewLogType("LogTwoThirdsRoundExpired", func() interface{} { return &ReceiptRoundExpired{} }))
}

// TwoThirdsType exec
type TwoThirdsType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *TwoThirdsType {
	c := &TwoThirdsType{}
	c.SetChild(c)
	return c
}

// GetName 执行器名称
func (t *TwoThirdsType) GetName() string {
	return TwoThirdsX
}

// GetPayload action 结构
func (t *TwoThirdsType) GetPayload() interface{} {
	return &TwoThirdsAction{}
}

// GetTypeMap 动作名与 ty
func (t *TwoThirdsType) GetTypeMap() map[string]int32 {
	return actionName
}

// TwoThirdsAction 交易的 payload
type TwoThirdsAction struct {
	Ty     int32            `json:"ty"`
	Deploy *TwoThirdsDeploy `json:"deploy,omitempty"`
	Join   *TwoThirdsJoin   `json:"join,omitempty"`
	Expire *TwoThirdsExpire `json:"expire,omitempty"`
}

// TwoThirdsDeploy 创建一个游戏, 零值字段使用运营者的配置
type TwoThirdsDeploy struct {
	MinBound int32  `json:"minBound,omitempty"`
	MaxBound int32  `json:"maxBound,omitempty"`
	TieBreak string `json:"tieBreak,omitempty"`
	// 第一个人参与后经过多少个高度可以强制结束, 0 表示不开启
	RoundTimeout int64 `json:"roundTimeout,omitempty"`
}

// TwoThirdsJoin 押注, amount 同时是猜测的数字
type TwoThirdsJoin struct {
	GameID string `json:"gameId"`
	Amount int64  `json:"amount"`
}

// TwoThirdsExpire 超时结束本轮并退款
type TwoThirdsExpire struct {
	GameID string `json:"gameId"`
}

// Participant 参与者
type Participant struct {
	Addr         string `json:"addr"`
	Guess        int64  `json:"guess"`
	JoinSequence int32  `json:"joinSequence"`
}

// Round 当前轮, 目标人数不保存, 只公布承诺
type Round struct {
	RoundID         int64          `json:"roundId"`
	Participants    []*Participant `json:"participants"`
	Pot             int64          `json:"pot"`
	Status          int32          `json:"status"`
	Commitment      string         `json:"commitment"`
	OpenHeight      int64          `json:"openHeight"`
	FirstJoinHeight int64          `json:"firstJoinHeight,omitempty"`
}

// Game 游戏实例
type Game struct {
	GameID       string `json:"gameId"`
	Creator      string `json:"creator"`
	MinBound     int32  `json:"minBound"`
	MaxBound     int32  `json:"maxBound"`
	TieBreak     string `json:"tieBreak"`
	RoundTimeout int64  `json:"roundTimeout"`
	CreateHeight int64  `json:"createHeight"`
	Round        *Round `json:"round"`
}

// ReceiptDeploy 创建游戏
type ReceiptDeploy struct {
	GameID       string `json:"gameId"`
	Creator      string `json:"creator"`
	MinBound     int32  `json:"minBound"`
	MaxBound     int32  `json:"maxBound"`
	TieBreak     string `json:"tieBreak"`
	RoundTimeout int64  `json:"roundTimeout"`
}

// ReceiptJoin ParticipantJoined 事件
type ReceiptJoin struct {
	GameID  string `json:"gameId"`
	RoundID int64  `json:"roundId"`
	Addr    string `json:"addr"`
	Stake   int64  `json:"stake"`
}

// ReceiptRoundOpened 新一轮开始, 公布目标人数的承诺
type ReceiptRoundOpened struct {
	GameID     string `json:"gameId"`
	RoundID    int64  `json:"roundId"`
	Commitment string `json:"commitment"`
	OpenHeight int64  `json:"openHeight"`
}

// ReceiptRoundEnded RoundEnded 事件, 公开目标人数和 salt 以验证承诺
type ReceiptRoundEnded struct {
	GameID      string `json:"gameId"`
	RoundID     int64  `json:"roundId"`
	Winner      string `json:"winner"`
	Reward      int64  `json:"reward"`
	Target      int64  `json:"target"`
	TargetCount int32  `json:"targetCount"`
	Salt        string `json:"salt"`
}

// ReceiptRoundExpired 超时退款
type ReceiptRoundExpired struct {
	GameID      string         `json:"gameId"`
	RoundID     int64          `json:"roundId"`
	Refunded    []*Participant `json:"refunded"`
	Total       int64          `json:"total"`
	TargetCount int32          `json:"targetCount"`
	Salt        string         `json:"salt"`
}

// ReqGameInfo 按 id 查询
type ReqGameInfo struct {
	GameID string `json:"gameId"`
}

// ReqHasJoined 是否参与了当前轮
type ReqHasJoined struct {
	GameID string `json:"gameId"`
	Addr   string `json:"addr"`
}

// ReplyHasJoined reply
type ReplyHasJoined struct {
	RoundID   int64 `json:"roundId"`
	HasJoined bool  `json:"hasJoined"`
}
