// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/twothirds/account"
	"github.com/33cn/twothirds/common/address"
	dbm "github.com/33cn/twothirds/common/db"
	_ "github.com/33cn/twothirds/system"
	drivers "github.com/33cn/twothirds/system/dapp"
	"github.com/33cn/twothirds/types"
	"github.com/33cn/twothirds/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	privGenesis = util.HexToPrivkey("CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	addrGenesis = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
)

const testDriver = "exectest"

// 写入非法 key 或者漏报 kv 的执行器
type testExec struct {
	drivers.DriverBase
}

func newTestExec() drivers.Driver {
	e := &testExec{}
	e.SetChild(e)
	return e
}

func (e *testExec) GetDriverName() string {
	return testDriver
}

func (e *testExec) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	switch string(tx.Payload) {
	case "otherkey":
		kv := &types.KeyValue{Key: []byte("mavl-other-key"), Value: []byte("1")}
		return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}}, nil
	case "memset":
		err := e.GetStateDB().Set([]byte("mavl-exectest-hidden"), []byte("1"))
		return &types.Receipt{Ty: types.ExecOk}, err
	}
	kv := &types.KeyValue{Key: []byte("mavl-exectest-key"), Value: tx.Payload}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}}, nil
}

func init() {
	drivers.Register(testDriver, newTestExec, 0)
}

func newTestExecutor(t *testing.T) (*Executor, dbm.DB) {
	db, err := dbm.NewDB("state", dbm.MemDBBackendStr, "", 0)
	require.NoError(t, err)
	exec := New(db, nil)
	_, err = exec.Genesis([]*types.GenesisAlloc{{Addr: addrGenesis, Amount: 100}})
	require.NoError(t, err)
	flush(exec, db)
	return exec, db
}

func flush(exec *Executor, db dbm.DB) {
	util.SaveKVList(db, exec.PendingKVs())
	exec.Reset()
}

func balance(t *testing.T, db dbm.DB, addr string) int64 {
	return account.NewCoinsAccount(db).LoadAccount(addr).Balance
}

func testTx(payload string) *types.Transaction {
	tx := &types.Transaction{
		Execer:  []byte(testDriver),
		Payload: []byte(payload),
		Nonce:   1,
		To:      address.ExecAddress(testDriver),
	}
	tx.Sign(types.SECP256K1, privGenesis)
	return tx
}

func TestGenesis(t *testing.T) {
	_, db := newTestExecutor(t)
	assert.Equal(t, 100*types.Coin, balance(t, db, addrGenesis))
}

func TestExecTransfer(t *testing.T) {
	exec, db := newTestExecutor(t)
	to, _ := util.Genaddress()
	tx := util.CreateCoinsTx(privGenesis, to, 10*types.Coin)
	receipt, err := exec.ExecTx(tx, 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Len(t, receipt.KV, 2)
	assert.Len(t, exec.PendingKVs(), 2)

	//还没写入存储
	assert.Equal(t, int64(0), balance(t, db, to))
	flush(exec, db)
	assert.Equal(t, 10*types.Coin, balance(t, db, to))
	assert.Equal(t, 90*types.Coin, balance(t, db, addrGenesis))

	reply, err := exec.Query(types.CoinsX, "Balance", types.Encode(&types.ReqBalance{Addresses: []string{to}}), 1)
	require.NoError(t, err)
	accs := reply.([]*types.Account)
	require.Len(t, accs, 1)
	assert.Equal(t, 10*types.Coin, accs[0].Balance)
}

func TestExecErrRollback(t *testing.T) {
	exec, db := newTestExecutor(t)
	to, _ := util.Genaddress()
	tx := util.CreateCoinsTx(privGenesis, to, 1000*types.Coin)
	receipt, err := exec.ExecTx(tx, 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecErr), receipt.Ty)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogErr), receipt.Logs[0].Ty)
	var msg string
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &msg))
	assert.Equal(t, types.ErrNoBalance.Error(), msg)
	assert.Empty(t, receipt.KV)
	assert.Empty(t, exec.PendingKVs())
	flush(exec, db)
	assert.Equal(t, 100*types.Coin, balance(t, db, addrGenesis))
}

func TestExecInvalidTx(t *testing.T) {
	exec, _ := newTestExecutor(t)
	to, _ := util.Genaddress()

	tx := util.CreateCoinsTx(privGenesis, to, types.Coin)
	tx.Signature = nil
	_, err := exec.ExecTx(tx, 0, 1, 0)
	assert.Equal(t, types.ErrSign, err)

	tx = util.CreateCoinsTx(privGenesis, to, types.Coin)
	tx.Expire = 5
	tx.Sign(types.SECP256K1, privGenesis)
	assert.Equal(t, types.ErrTxExpire, exec.CheckTx(tx, 5))
	assert.NoError(t, exec.CheckTx(tx, 4))

	tx = &types.Transaction{Execer: []byte("nosuchexec"), Payload: []byte("{}")}
	tx.Sign(types.SECP256K1, privGenesis)
	_, err = exec.ExecTx(tx, 0, 1, 0)
	assert.Equal(t, types.ErrUnknowDriver, err)

	tx = testTx("x")
	tx.To = to
	tx.Sign(types.SECP256K1, privGenesis)
	_, err = exec.ExecTx(tx, 0, 1, 0)
	assert.Equal(t, types.ErrToAddrNotSameToExecAddr, err)
	assert.Empty(t, exec.PendingKVs())
}

func TestExecKeyAllow(t *testing.T) {
	exec, _ := newTestExecutor(t)

	receipt, err := exec.ExecTx(testTx("ok"), 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Len(t, exec.PendingKVs(), 1)
	exec.Reset()

	receipt, err = exec.ExecTx(testTx("otherkey"), 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecErr), receipt.Ty)
	assert.Empty(t, exec.PendingKVs())

	receipt, err = exec.ExecTx(testTx("memset"), 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecErr), receipt.Ty)
	var msg string
	types.MustDecode(receipt.Logs[0].Log, &msg)
	assert.Equal(t, types.ErrNotAllowMemSetKey.Error(), msg)
	assert.Empty(t, exec.PendingKVs())
}

func TestStateDB(t *testing.T) {
	db, err := dbm.NewDB("state", dbm.MemDBBackendStr, "", 0)
	require.NoError(t, err)
	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	s := NewStateDB(db)

	v, err := s.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = s.Get([]byte("b"))
	assert.Equal(t, types.ErrNotFound, err)

	s.Begin()
	require.NoError(t, s.Set([]byte("a"), []byte("2")))
	require.NoError(t, s.Set([]byte("b"), []byte("3")))
	assert.Equal(t, []string{"a", "b"}, s.GetSetKeys())
	v, _ = s.Get([]byte("a"))
	assert.Equal(t, []byte("2"), v)
	s.Rollback()
	v, _ = s.Get([]byte("a"))
	assert.Equal(t, []byte("1"), v)
	assert.Empty(t, s.KVs())

	s.Begin()
	require.NoError(t, s.Set([]byte("b"), []byte("3")))
	s.Commit()
	v, _ = s.Get([]byte("b"))
	assert.Equal(t, []byte("3"), v)
	kvs := s.KVs()
	require.Len(t, kvs, 1)
	assert.Equal(t, []byte("b"), kvs[0].Key)
	s.Reset()
	_, err = s.Get([]byte("b"))
	assert.Equal(t, types.ErrNotFound, err)
}
