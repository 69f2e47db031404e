// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
	"testing"

	"github.com/33cn/twothirds/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	c, err := crypto.New(crypto.NameSecp256k1)
	require.NoError(t, err)
	key, err := c.GenKey()
	require.NoError(t, err)
	addr := PubKeyToAddress(key.PubKey().Bytes())
	require.NoError(t, CheckAddress(addr.String()))

	parsed, err := NewAddrFromString(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr.Hash160, parsed.Hash160)
}

func TestGenesisKeyAddress(t *testing.T) {
	c, err := crypto.New(crypto.NameSecp256k1)
	require.NoError(t, err)
	b, err := hex.DecodeString("CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	require.NoError(t, err)
	priv, err := c.PrivKeyFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt", PubKeyToAddr(priv.PubKey().Bytes()))
}

func TestCheckAddress(t *testing.T) {
	assert.Equal(t, ErrDecode, CheckAddress(""))
	assert.Error(t, CheckAddress("1abc"))
	assert.Equal(t, ErrChecksum, CheckAddress("14KEKbYtKKQm4wMthSK9J4La4nAiidGozu"))
	assert.NoError(t, CheckAddress(ExecAddress("twothirds")))
	// cached result
	assert.Equal(t, ErrChecksum, CheckAddress("14KEKbYtKKQm4wMthSK9J4La4nAiidGozu"))
}

func TestExecAddress(t *testing.T) {
	assert.Equal(t, ExecAddress("coins"), ExecAddress("coins"))
	assert.NotEqual(t, ExecAddress("coins"), ExecAddress("twothirds"))
	assert.Panics(t, func() {
		ExecPubKey(string(make([]byte, MaxExecNameLength+1)))
	})
}
