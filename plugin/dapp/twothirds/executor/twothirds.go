// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
twothirds 猜平均数 2/3 的游戏

Deploy -> 创建游戏实例, 开启第 0 轮
Join   -> 押注(押注额就是猜测的数字), 人数达到目标后结算, 奖池全部给最接近平均数 2/3 的参与者
Expire -> 开启超时的游戏, 超时后退还本轮全部押注
*/

import (
	"encoding/hex"

	log "github.com/33cn/twothirds/common/log"
	tt "github.com/33cn/twothirds/plugin/dapp/twothirds/types"
	drivers "github.com/33cn/twothirds/system/dapp"
	"github.com/33cn/twothirds/types"
)

var tlog = log.New("module", "execs.twothirds")

var driverName = tt.TwoThirdsX

type subConfig struct {
	MinBound     int32  `json:"minBound"`
	MaxBound     int32  `json:"maxBound"`
	Seed         string `json:"seed"`
	TieBreak     string `json:"tieBreak"`
	RoundTimeout int64  `json:"roundTimeout"`
}

var (
	cfg          subConfig
	targetSource TargetSource
)

// Init 注册执行器, sub 为 [exec.sub.twothirds] 配置
func Init(name string, sub []byte) {
	driverName = name
	conf := subConfig{}
	if sub != nil {
		types.MustDecode(sub, &conf)
	}
	if err := setConfig(conf); err != nil {
		panic(err)
	}
	drivers.Register(driverName, newTwoThirds, 0)
}

func setConfig(conf subConfig) error {
	if conf.MinBound == 0 && conf.MaxBound == 0 {
		conf.MinBound, conf.MaxBound = tt.DefaultMinBound, tt.DefaultMaxBound
	}
	if err := checkBounds(conf.MinBound, conf.MaxBound); err != nil {
		return err
	}
	if conf.TieBreak == "" {
		conf.TieBreak = tt.TieBreakEarliest
	}
	if err := checkTieBreak(conf.TieBreak); err != nil {
		return err
	}
	if conf.RoundTimeout < 0 {
		return tt.ErrInvalidTimeout
	}
	seed, err := hex.DecodeString(conf.Seed)
	if err != nil {
		return err
	}
	cfg = conf
	targetSource = NewSeedSource(seed)
	tlog.Info("twothirds config", "minBound", cfg.MinBound, "maxBound", cfg.MaxBound, "tieBreak", cfg.TieBreak,
		"roundTimeout", cfg.RoundTimeout)
	return nil
}

func checkBounds(minBound, maxBound int32) error {
	if minBound < 1 || maxBound < minBound || maxBound > tt.MaxParticipants {
		return tt.ErrInvalidBounds
	}
	return nil
}

func checkTieBreak(tieBreak string) error {
	if tieBreak != tt.TieBreakEarliest && tieBreak != tt.TieBreakLatest {
		return tt.ErrInvalidTieBreak
	}
	return nil
}

// GetName 执行器名称
func GetName() string {
	return newTwoThirds().GetName()
}

// TwoThirds 执行器
type TwoThirds struct {
	drivers.DriverBase
}

func newTwoThirds() drivers.Driver {
	t := &TwoThirds{}
	t.SetChild(t)
	t.SetExecutorType(types.LoadExecutor(driverName))
	return t
}

// GetDriverName 驱动名称
func (t *TwoThirds) GetDriverName() string {
	return driverName
}
