// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"testing"

	"github.com/33cn/twothirds/common/address"
	"github.com/33cn/twothirds/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getprivkey(key string) crypto.PrivKey {
	cr, err := crypto.New(crypto.NameSecp256k1)
	if err != nil {
		panic(err)
	}
	bkey, err := hex.DecodeString(key)
	if err != nil {
		panic(err)
	}
	priv, err := cr.PrivKeyFromBytes(bkey)
	if err != nil {
		panic(err)
	}
	return priv
}

// chain33 protobuf 编码的转账交易
const chain33Tx = "0a05636f696e73120e18010a0a1080c2d72f1a036f746520a08d0630f1cdebc8f7efa5e9283a22313271796f6361794e46374c7636433971573461767873324537553431664b536676"

func TestDecodeChain33Tx(t *testing.T) {
	tx, err := DecodeTxHex(chain33Tx)
	require.NoError(t, err)
	assert.Equal(t, "coins", string(tx.Execer))
	assert.Equal(t, int64(100000), tx.Fee)
	assert.Equal(t, int64(2941580080374802161), tx.Nonce)
	assert.Equal(t, "12qyocayNF7Lv6C9qW4avxs2E7U41fKSfv", tx.To)
	assert.Nil(t, tx.Signature)
	assert.Equal(t, chain33Tx, tx.HexString())
}

func TestSignTx(t *testing.T) {
	priv := getprivkey("CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	tx := NewTransaction("coins", map[string]int64{"amount": 1})
	hash := tx.Hash()
	assert.False(t, tx.CheckSign())

	tx.Sign(SECP256K1, priv)
	assert.True(t, tx.CheckSign())
	assert.Equal(t, hash, tx.Hash(), "hash excludes the signature")
	assert.Equal(t, "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt", tx.From())
	assert.Equal(t, address.ExecAddress("coins"), tx.To)

	// 编码往返后签名仍然有效
	tx2, err := DecodeTxHex(tx.HexString())
	require.NoError(t, err)
	assert.True(t, tx2.CheckSign())
	assert.Equal(t, tx.Hash(), tx2.Hash())

	tx2.Payload = []byte(`{"amount":2}`)
	assert.False(t, tx2.CheckSign())
	assert.Equal(t, ErrSign, tx2.Check(0))
}

func TestTxCheck(t *testing.T) {
	priv := getprivkey("CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	tx := NewTransaction("coins", nil)
	tx.Expire = 10
	tx.Sign(SECP256K1, priv)
	assert.NoError(t, tx.Check(9))
	assert.Equal(t, ErrTxExpire, tx.Check(10))

	tx = &Transaction{}
	assert.Equal(t, ErrNoExecer, tx.Check(0))

	tx = NewTransaction("coins", nil)
	tx.Payload = make([]byte, MaxTxSize)
	assert.Equal(t, ErrTxMsgSizeTooBig, tx.Check(0))
}

func TestDecodeTxHexError(t *testing.T) {
	_, err := DecodeTxHex("zz")
	assert.Error(t, err)
	_, err = DecodeTxHex("0a05636f")
	assert.Error(t, err)
}

func TestTxJSON(t *testing.T) {
	tx := NewTransaction("coins", map[string]int64{"amount": 1})
	assert.Contains(t, tx.JSON(), `"amount": 1`)
	assert.Contains(t, tx.JSON(), `"execer": "coins"`)
}
