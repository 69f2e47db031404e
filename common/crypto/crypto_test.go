// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecp256k1SignVerify(t *testing.T) {
	c, err := New(NameSecp256k1)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)

	msg := []byte("guess two thirds")
	sig := priv.Sign(msg)
	assert.True(t, priv.PubKey().VerifyBytes(msg, sig))
	assert.False(t, priv.PubKey().VerifyBytes([]byte("other"), sig))
	assert.True(t, CheckSign(SECP256K1, msg, priv.PubKey().Bytes(), sig.Bytes()))
	assert.False(t, CheckSign(99, msg, priv.PubKey().Bytes(), sig.Bytes()))
}

func TestPrivKeyFromBytes(t *testing.T) {
	c, err := New(NameSecp256k1)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)

	priv2, err := c.PrivKeyFromBytes(priv.Bytes())
	require.NoError(t, err)
	assert.Equal(t, priv.PubKey().Bytes(), priv2.PubKey().Bytes())

	_, err = c.PrivKeyFromBytes([]byte{1, 2, 3})
	assert.Error(t, err)
	_, err = c.PubKeyFromBytes([]byte{1, 2, 3})
	assert.Error(t, err)

	_, err = New("ed25519")
	assert.Error(t, err)
}
