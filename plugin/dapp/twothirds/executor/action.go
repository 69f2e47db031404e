// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/hex"

	"github.com/33cn/twothirds/account"
	dbm "github.com/33cn/twothirds/common/db"
	"github.com/33cn/twothirds/metrics"
	tt "github.com/33cn/twothirds/plugin/dapp/twothirds/types"
	drivers "github.com/33cn/twothirds/system/dapp"
	"github.com/33cn/twothirds/types"
	"github.com/pkg/errors"
)

// Action 一笔交易的执行环境
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	index        int
}

// NewAction new
func NewAction(t *TwoThirds, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: t.GetCoinsAccount(),
		db:           t.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    t.GetBlockTime(),
		height:       t.GetHeight(),
		execaddr:     drivers.ExecAddress(string(tx.Execer)),
		index:        index,
	}
}

// Key 游戏在状态数据库中的 key
func Key(id string) (key []byte) {
	key = append(key, []byte("mavl-"+driverName+"-")...)
	key = append(key, []byte(id)...)
	return key
}

func readGame(db dbm.KV, id string) (*tt.Game, error) {
	data, err := db.Get(Key(id))
	if err == types.ErrNotFound {
		return nil, tt.ErrGameNotFound
	}
	if err != nil {
		tlog.Error("readGame", "id", id, "err", err)
		return nil, err
	}
	var game tt.Game
	if err := types.Decode(data, &game); err != nil {
		tlog.Error("decode game have err:", "err", err)
		return nil, err
	}
	return &game, nil
}

func (action *Action) saveGame(game *tt.Game) (kvset []*types.KeyValue) {
	value := types.Encode(game)
	if err := action.db.Set(Key(game.GameID), value); err != nil {
		panic(err)
	}
	kvset = append(kvset, &types.KeyValue{Key: Key(game.GameID), Value: value})
	return kvset
}

func hasJoined(round *tt.Round, addr string) bool {
	for _, p := range round.Participants {
		if p.Addr == addr {
			return true
		}
	}
	return false
}

func drawTarget(game *tt.Game, roundID int64) (int32, []byte) {
	return targetSource.Draw(game.GameID, roundID, game.MinBound, game.MaxBound)
}

// openRound 开启新一轮, 目标人数在任何人参与之前确定, 只公布承诺
func (action *Action) openRound(game *tt.Game, roundID int64) *types.ReceiptLog {
	target, salt := drawTarget(game, roundID)
	game.Round = &tt.Round{
		RoundID:    roundID,
		Status:     tt.RoundStatusOpen,
		Commitment: Commitment(game.GameID, roundID, target, salt),
		OpenHeight: action.height,
	}
	r := &tt.ReceiptRoundOpened{
		GameID:     game.GameID,
		RoundID:    roundID,
		Commitment: game.Round.Commitment,
		OpenHeight: action.height,
	}
	return &types.ReceiptLog{Ty: tt.TyLogTwoThirdsRoundOpened, Log: types.Encode(r)}
}

// Deploy 创建游戏, id 为交易 hash
func (action *Action) Deploy(deploy *tt.TwoThirdsDeploy) (*types.Receipt, error) {
	minBound, maxBound := deploy.MinBound, deploy.MaxBound
	if minBound == 0 && maxBound == 0 {
		minBound, maxBound = cfg.MinBound, cfg.MaxBound
	}
	if err := checkBounds(minBound, maxBound); err != nil {
		return nil, err
	}
	tieBreak := deploy.TieBreak
	if tieBreak == "" {
		tieBreak = cfg.TieBreak
	}
	if err := checkTieBreak(tieBreak); err != nil {
		return nil, err
	}
	if deploy.RoundTimeout < 0 {
		return nil, tt.ErrInvalidTimeout
	}
	timeout := deploy.RoundTimeout
	if timeout == 0 {
		timeout = cfg.RoundTimeout
	}
	game := &tt.Game{
		GameID:       hex.EncodeToString(action.txhash),
		Creator:      action.fromaddr,
		MinBound:     minBound,
		MaxBound:     maxBound,
		TieBreak:     tieBreak,
		RoundTimeout: timeout,
		CreateHeight: action.height,
	}
	r := &tt.ReceiptDeploy{
		GameID:       game.GameID,
		Creator:      game.Creator,
		MinBound:     minBound,
		MaxBound:     maxBound,
		TieBreak:     tieBreak,
		RoundTimeout: timeout,
	}
	logs := []*types.ReceiptLog{{Ty: tt.TyLogTwoThirdsDeploy, Log: types.Encode(r)}}
	logs = append(logs, action.openRound(game, 0))
	kv := action.saveGame(game)
	tlog.Info("Deploy", "gameId", game.GameID, "creator", game.Creator, "minBound", minBound, "maxBound", maxBound)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Join 押注并参与当前轮, 人数达到目标时在同一笔交易里结算
func (action *Action) Join(join *tt.TwoThirdsJoin) (*types.Receipt, error) {
	game, err := readGame(action.db, join.GameID)
	if err != nil {
		return nil, err
	}
	round := game.Round
	if hasJoined(round, action.fromaddr) {
		return nil, tt.ErrDuplicateParticipant
	}
	if join.Amount <= 0 || join.Amount > types.MaxCoin {
		return nil, tt.ErrInvalidGuess
	}
	if round.Status != tt.RoundStatusOpen {
		return nil, tt.ErrRoundClosed
	}
	target, salt := drawTarget(game, round.RoundID)
	if int32(len(round.Participants)) >= target {
		tlog.Error("Join round should be closed", "gameId", game.GameID, "roundId", round.RoundID)
		return nil, tt.ErrRoundClosed
	}
	if round.Pot > types.MaxCoin-join.Amount {
		return nil, tt.ErrPotOverflow
	}

	//押注进入托管地址
	receipt, err := action.coinsAccount.Transfer(action.fromaddr, action.execaddr, join.Amount)
	if err != nil {
		tlog.Error("Join stake", "addr", action.fromaddr, "amount", join.Amount, "err", err)
		return nil, err
	}
	round.Participants = append(round.Participants, &tt.Participant{
		Addr:         action.fromaddr,
		Guess:        join.Amount,
		JoinSequence: int32(len(round.Participants)),
	})
	round.Pot += join.Amount
	if len(round.Participants) == 1 {
		round.FirstJoinHeight = action.height
	}
	r := &tt.ReceiptJoin{
		GameID:  game.GameID,
		RoundID: round.RoundID,
		Addr:    action.fromaddr,
		Stake:   join.Amount,
	}
	logs := append(receipt.Logs, &types.ReceiptLog{Ty: tt.TyLogTwoThirdsJoin, Log: types.Encode(r)})
	kv := receipt.KV

	if int32(len(round.Participants)) < target {
		kv = append(kv, action.saveGame(game)...)
		return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
	}
	settle, err := action.settle(game, target, salt)
	if err != nil {
		return nil, err
	}
	kv = append(kv, settle.KV...)
	logs = append(logs, settle.Logs...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// settle 结束本轮并派奖
// 先完成全部记账(本轮关闭, 奖池清零, 开启下一轮), 转账是最后一步
// 转账失败返回错误, 整笔交易回滚
func (action *Action) settle(game *tt.Game, target int32, salt []byte) (*types.Receipt, error) {
	round := game.Round
	round.Status = tt.RoundStatusClosed
	res, err := Resolve(round.Participants, game.TieBreak)
	if err != nil {
		return nil, err
	}
	if res.Reward != round.Pot {
		tlog.Crit("settle pot mismatch", "gameId", game.GameID, "pot", round.Pot, "sum", res.Reward)
		return nil, errors.Wrap(tt.ErrTransferFailure, "pot mismatch")
	}
	ended := &tt.ReceiptRoundEnded{
		GameID:      game.GameID,
		RoundID:     round.RoundID,
		Winner:      res.Winner.Addr,
		Reward:      round.Pot,
		Target:      res.Target,
		TargetCount: target,
		Salt:        hex.EncodeToString(salt),
	}
	round.Pot = 0
	logs := []*types.ReceiptLog{{Ty: tt.TyLogTwoThirdsRoundEnded, Log: types.Encode(ended)}}
	logs = append(logs, action.openRound(game, round.RoundID+1))
	kv := action.saveGame(game)

	receipt, err := action.coinsAccount.Transfer(action.execaddr, ended.Winner, ended.Reward)
	if err != nil {
		tlog.Error("settle transfer", "gameId", game.GameID, "winner", ended.Winner, "reward", ended.Reward, "err", err)
		return nil, errors.Wrap(tt.ErrTransferFailure, err.Error())
	}
	metrics.Counter("twothirds/round/ended").Inc(1)
	tlog.Info("RoundEnded", "gameId", game.GameID, "roundId", ended.RoundID, "winner", ended.Winner,
		"reward", ended.Reward, "target", ended.Target)
	kv = append(kv, receipt.KV...)
	logs = append(logs, receipt.Logs...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Expire 超时未满员的轮, 退还全部押注并开启下一轮
func (action *Action) Expire(expire *tt.TwoThirdsExpire) (*types.Receipt, error) {
	game, err := readGame(action.db, expire.GameID)
	if err != nil {
		return nil, err
	}
	round := game.Round
	if game.RoundTimeout <= 0 || len(round.Participants) == 0 {
		return nil, tt.ErrExpireNotAllowed
	}
	if action.height-round.FirstJoinHeight < game.RoundTimeout {
		return nil, tt.ErrExpireNotAllowed
	}
	target, salt := drawTarget(game, round.RoundID)
	r := &tt.ReceiptRoundExpired{
		GameID:      game.GameID,
		RoundID:     round.RoundID,
		Refunded:    round.Participants,
		Total:       round.Pot,
		TargetCount: target,
		Salt:        hex.EncodeToString(salt),
	}
	round.Status = tt.RoundStatusClosed
	round.Pot = 0
	logs := []*types.ReceiptLog{{Ty: tt.TyLogTwoThirdsRoundExpired, Log: types.Encode(r)}}
	logs = append(logs, action.openRound(game, round.RoundID+1))
	kv := action.saveGame(game)

	for _, p := range r.Refunded {
		receipt, err := action.coinsAccount.Transfer(action.execaddr, p.Addr, p.Guess)
		if err != nil {
			tlog.Error("Expire refund", "gameId", game.GameID, "addr", p.Addr, "amount", p.Guess, "err", err)
			return nil, errors.Wrap(tt.ErrTransferFailure, err.Error())
		}
		kv = append(kv, receipt.KV...)
		logs = append(logs, receipt.Logs...)
	}
	metrics.Counter("twothirds/round/expired").Inc(1)
	tlog.Info("RoundExpired", "gameId", game.GameID, "roundId", r.RoundID, "refunded", len(r.Refunded), "total", r.Total)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}
