// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/twothirds/common"
	_ "github.com/33cn/twothirds/system/dapp/coins/types"
	"github.com/33cn/twothirds/types"
	"github.com/33cn/twothirds/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAccount(t *testing.T) {
	acc := &types.Account{Addr: "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt", Balance: 150000000, Locked: true}
	res := DecodeAccount(acc)
	assert.Equal(t, "1.5", res.Balance)
	assert.Equal(t, acc.Addr, res.Addr)
	assert.True(t, res.Locked)
}

func TestParsePrivKey(t *testing.T) {
	priv, err := ParsePrivKey("0xCC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	require.NoError(t, err)
	assert.Equal(t, "0xcc38546e9e659d15e6b4893f0ab32a06d103931a8230b0bde71459d2b27d6944", common.ToHex(priv.Bytes()))

	_, err = ParsePrivKey("zz")
	assert.Error(t, err)
}

func TestSignRawTx(t *testing.T) {
	priv, err := ParsePrivKey("CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	require.NoError(t, err)
	to, _ := util.Genaddress()
	tx, err := util.CreateTx(nil, types.CoinsX, "Transfer", map[string]interface{}{"to": to, "amount": types.Coin})
	require.NoError(t, err)

	signed, err := SignRawTx(priv, tx.HexString())
	require.NoError(t, err)
	b, err := common.FromHex(signed)
	require.NoError(t, err)
	var stx types.Transaction
	require.NoError(t, stx.Unmarshal(b))
	assert.True(t, stx.CheckSign())
	assert.Equal(t, "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt", stx.From())
	assert.Equal(t, tx.Hash(), stx.Hash())

	_, err = SignRawTx(priv, "0xzz")
	assert.Error(t, err)
}
