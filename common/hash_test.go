// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102ff", ToHex([]byte{1, 2, 255}))

	b, err := FromHex("0x0102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	b, err = FromHex("102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	_, err = FromHex("0xzz")
	assert.Error(t, err)
}

func TestSha256(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Bytes2Hex(Sha256(nil)))
	sum := Sha2Sum([]byte("abc"))
	assert.Equal(t, Sha256(Sha256([]byte("abc"))), sum[:])
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	src := []byte("abc")
	dst := CopyBytes(src)
	src[0] = 'x'
	assert.Equal(t, []byte("abc"), dst)
}
