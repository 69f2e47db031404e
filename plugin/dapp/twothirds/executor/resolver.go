// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math/big"

	tt "github.com/33cn/twothirds/plugin/dapp/twothirds/types"
)

// Resolution 本轮的结果
type Resolution struct {
	Winner *tt.Participant
	Reward int64
	// 平均值的 2/3, 截断取整
	Target int64
}

// Resolve 计算 target = (2 * sum) / (3 * count), 选出最接近 target 的参与者
// 同样接近时按 tieBreak 选最早或者最晚参与的
// 不修改 participants
func Resolve(participants []*tt.Participant, tieBreak string) (*Resolution, error) {
	if len(participants) == 0 {
		return nil, tt.ErrRoundEmpty
	}
	sum := new(big.Int)
	for _, p := range participants {
		sum.Add(sum, big.NewInt(p.Guess))
	}
	num := new(big.Int).Mul(sum, big.NewInt(2))
	den := big.NewInt(3 * int64(len(participants)))
	target := new(big.Int).Quo(num, den)

	var winner *tt.Participant
	var best *big.Int
	for _, p := range participants {
		dist := new(big.Int).Sub(big.NewInt(p.Guess), target)
		dist.Abs(dist)
		if winner == nil {
			winner, best = p, dist
			continue
		}
		c := dist.Cmp(best)
		if c < 0 || (c == 0 && tieBreak == tt.TieBreakLatest && p.JoinSequence > winner.JoinSequence) ||
			(c == 0 && tieBreak != tt.TieBreakLatest && p.JoinSequence < winner.JoinSequence) {
			winner, best = p, dist
		}
	}
	if !sum.IsInt64() {
		return nil, tt.ErrPotOverflow
	}
	return &Resolution{
		Winner: winner,
		Reward: sum.Int64(),
		Target: target.Int64(),
	}, nil
}
