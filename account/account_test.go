// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/twothirds/common/address"
	"github.com/33cn/twothirds/common/db"
	"github.com/33cn/twothirds/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
	addr2 = address.ExecAddress("addr2")
	addr3 = address.ExecAddress("addr3")
)

func GenerAccDb() *DB {
	stroedb, _ := db.NewGoMemDB("gomemdb", "test", 128)
	return NewCoinsAccount(stroedb)
}

func (acc *DB) GenerAccData() {
	acc.SaveAccount(&types.Account{Balance: 1000 * 1e8, Addr: addr1})
	acc.SaveAccount(&types.Account{Balance: 900 * 1e8, Addr: addr2})
}

func TestCheckTransfer(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.GenerAccData()

	require.NoError(t, accCoin.CheckTransfer(addr1, addr2, 10*1e8))
	assert.Equal(t, types.ErrNoBalance, accCoin.CheckTransfer(addr3, addr2, 1))
	assert.Equal(t, types.ErrAmount, accCoin.CheckTransfer(addr1, addr2, 0))
	assert.Equal(t, types.ErrAmount, accCoin.CheckTransfer(addr1, addr2, types.MaxCoin+1))
	assert.Equal(t, types.ErrSendSameToRecv, accCoin.CheckTransfer(addr1, addr1, 1))
}

func TestTransfer(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.GenerAccData()

	receipt, err := accCoin.Transfer(addr1, addr3, 10*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Len(t, receipt.KV, 2)
	require.Len(t, receipt.Logs, 2)
	assert.Equal(t, int32(types.TyLogTransfer), receipt.Logs[0].Ty)

	var log1 types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &log1))
	assert.Equal(t, int64(1000*1e8), log1.Prev.Balance)
	assert.Equal(t, int64(990*1e8), log1.Current.Balance)

	assert.Equal(t, int64(990*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(10*1e8), accCoin.LoadAccount(addr3).Balance)

	_, err = accCoin.Transfer(addr3, addr1, 11*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestTransferToLockedAccount(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.GenerAccData()

	receipt, err := accCoin.SetLocked(addr2, true)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogAccountLock), receipt.Logs[0].Ty)
	assert.True(t, accCoin.LoadAccount(addr2).Locked)

	_, err = accCoin.Transfer(addr1, addr2, 1e8)
	assert.Equal(t, types.ErrAccountLocked, err)
	// 失败的转账不修改余额
	assert.Equal(t, int64(1000*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(900*1e8), accCoin.LoadAccount(addr2).Balance)

	// 锁定账户仍然可以转出
	_, err = accCoin.Transfer(addr2, addr1, 1e8)
	require.NoError(t, err)

	_, err = accCoin.SetLocked(addr2, false)
	require.NoError(t, err)
	_, err = accCoin.Transfer(addr1, addr2, 1e8)
	require.NoError(t, err)

	_, err = accCoin.SetLocked("bad", true)
	assert.Equal(t, types.ErrInvalidAddress, err)
}

func TestTransferOverflow(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.SaveAccount(&types.Account{Balance: types.MaxCoin, Addr: addr1})
	accCoin.SaveAccount(&types.Account{Balance: 1, Addr: addr2})
	_, err := accCoin.Transfer(addr2, addr1, 1)
	assert.Equal(t, types.ErrBalanceOverflow, err)
}

func TestGenesisInit(t *testing.T) {
	accCoin := GenerAccDb()
	receipt, err := accCoin.GenesisInit(addr1, 100*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogGenesis), receipt.Logs[0].Ty)
	assert.Equal(t, int64(100*types.Coin), accCoin.LoadAccount(addr1).Balance)

	_, err = accCoin.GenesisInit(addr1, 0)
	assert.Equal(t, types.ErrAmount, err)

	accs := accCoin.LoadAccounts([]string{addr1, addr2})
	require.Len(t, accs, 2)
	assert.Equal(t, int64(0), accs[1].Balance)
	assert.Equal(t, addr2, accs[1].Addr)
}

func TestAccountKey(t *testing.T) {
	accCoin := GenerAccDb()
	assert.Equal(t, "mavl-coins-bty-"+addr1, string(accCoin.AccountKey(addr1)))
}
