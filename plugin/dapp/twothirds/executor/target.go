// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/33cn/twothirds/common"
)

// TargetSource 决定每一轮需要多少人参与
// 同一个 (gameID, roundID) 必须总是返回同样的结果, 开局时公布承诺, 结束时公开
type TargetSource interface {
	Draw(gameID string, roundID int64, minBound, maxBound int32) (target int32, salt []byte)
}

// seedSource 使用运营者的私有种子, 参与者在本轮结束之前无法得知目标人数
type seedSource struct {
	seed []byte
}

// NewSeedSource seed 为空时随机生成, 只在本进程内有效
func NewSeedSource(seed []byte) TargetSource {
	if len(seed) == 0 {
		seed = make([]byte, 32)
		if _, err := rand.Read(seed); err != nil {
			panic(err)
		}
		tlog.Warn("twothirds seed not configured, use a random one")
	}
	return &seedSource{seed: common.CopyBytes(seed)}
}

func (s *seedSource) hash(tag string, gameID string, roundID int64) []byte {
	data := append([]byte{}, s.seed...)
	data = append(data, []byte(fmt.Sprintf("|%s|%s|%d", tag, gameID, roundID))...)
	return common.Sha256(data)
}

func (s *seedSource) Draw(gameID string, roundID int64, minBound, maxBound int32) (int32, []byte) {
	h := new(big.Int).SetBytes(s.hash("target", gameID, roundID))
	span := big.NewInt(int64(maxBound) - int64(minBound) + 1)
	target := minBound + int32(h.Mod(h, span).Int64())
	return target, s.hash("salt", gameID, roundID)
}

// FixedSource 固定的目标人数, 超出范围时取边界
type FixedSource struct {
	Target int32
}

// Draw 返回固定值
func (f *FixedSource) Draw(gameID string, roundID int64, minBound, maxBound int32) (int32, []byte) {
	target := f.Target
	if target < minBound {
		target = minBound
	}
	if target > maxBound {
		target = maxBound
	}
	return target, common.Sha256([]byte(fmt.Sprintf("%s|%d", gameID, roundID)))
}

// Commitment 目标人数的承诺 sha256(gameID|roundID|target|salt)
func Commitment(gameID string, roundID int64, target int32, salt []byte) string {
	data := fmt.Sprintf("%s|%d|%d|%s", gameID, roundID, target, hex.EncodeToString(salt))
	return hex.EncodeToString(common.Sha256([]byte(data)))
}

// VerifyCommitment 用 RoundEnded 公开的 target 与 salt 验证开局时的承诺
func VerifyCommitment(commitment, gameID string, roundID int64, target int32, salt string) bool {
	b, err := hex.DecodeString(salt)
	if err != nil {
		return false
	}
	return Commitment(gameID, roundID, target, b) == commitment
}
