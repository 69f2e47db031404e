// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// game action ty
const (
	TwoThirdsActionDeploy = iota + 1
	TwoThirdsActionJoin
	TwoThirdsActionExpire
)

const (
	//log for twothirds game
	TyLogTwoThirdsDeploy       = 2301
	TyLogTwoThirdsJoin         = 2302
	TyLogTwoThirdsRoundOpened  = 2303
	TyLogTwoThirdsRoundEnded   = 2304
	TyLogTwoThirdsRoundExpired = 2305
)

// round status
const (
	RoundStatusOpen   = 1
	RoundStatusClosed = 2
)

// 同样接近目标值时的胜出规则
const (
	TieBreakEarliest = "earliest"
	TieBreakLatest   = "latest"
)

// 运营者没有配置时的默认值
const (
	DefaultMinBound = 2
	DefaultMaxBound = 3
	// 一轮的人数上限, 限制状态大小
	MaxParticipants = 1000
)

// 包的名字可以通过配置文件来配置
var (
	JRPCName        = "TwoThirds"
	TwoThirdsX      = "twothirds"
	ExecerTwoThirds = []byte(TwoThirdsX)

	actionName = map[string]int32{
		"Deploy": TwoThirdsActionDeploy,
		"Join":   TwoThirdsActionJoin,
		"Expire": TwoThirdsActionExpire,
	}
)

// 查询方法名
const (
	FuncNameHasJoined    = "HasJoined"
	FuncNameCurrentRound = "CurrentRound"
	FuncNameGameInfo     = "GameInfo"
)
