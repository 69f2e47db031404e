// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = `
Title="local"

[log]
loglevel="debug"
logFile=""

[store]
driver="memdb"

[rpc]
jrpcBindAddr="localhost:9901"
corsOrigins=["*"]

[[genesis]]
addr="14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
amount=100000000

[exec.sub.twothirds]
minBound=3
maxBound=7
tieBreak="latest"
`

func TestInitCfgString(t *testing.T) {
	cfg, sub, err := InitCfgString(testCfg)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Title)
	assert.Equal(t, "debug", cfg.Log.Loglevel)
	// 未配置的字段保留默认值
	assert.Equal(t, "info", cfg.Log.LogConsoleLevel)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.Equal(t, "datadir", cfg.Store.DbPath)
	assert.Equal(t, "localhost:9901", cfg.RPC.JrpcBindAddr)
	assert.Equal(t, []string{"*"}, cfg.RPC.CorsOrigins)
	assert.Equal(t, int64(20), cfg.RPC.SendTxBurst)
	require.Len(t, cfg.Genesis, 1)
	assert.Equal(t, int64(100000000), cfg.Genesis[0].Amount)

	var game struct {
		MinBound int64  `json:"minBound"`
		MaxBound int64  `json:"maxBound"`
		TieBreak string `json:"tieBreak"`
	}
	MustDecode(sub.Exec["twothirds"], &game)
	assert.Equal(t, int64(3), game.MinBound)
	assert.Equal(t, int64(7), game.MaxBound)
	assert.Equal(t, "latest", game.TieBreak)
}

func TestConfigValidate(t *testing.T) {
	_, _, err := InitCfgString(`Title=""`)
	assert.Equal(t, ErrConfig, errors.Cause(err))

	_, _, err = InitCfgString("[[genesis]]\naddr=\"bad\"\namount=1\n")
	assert.Equal(t, ErrConfig, errors.Cause(err))

	_, _, err = InitCfgString("[[genesis]]\naddr=\"14KEKbYtKKQm4wMthSK9J4La4nAiidGozt\"\namount=0\n")
	assert.Equal(t, ErrConfig, errors.Cause(err))

	_, _, err = InitCfgString("Title=")
	assert.Equal(t, ErrConfig, errors.Cause(err))
}

func TestModifySubConfig(t *testing.T) {
	data, err := ModifySubConfig(nil, "minBound", 5)
	require.NoError(t, err)
	data, err = ModifySubConfig(data, "maxBound", 9)
	require.NoError(t, err)
	assert.JSONEq(t, `{"minBound":5,"maxBound":9}`, string(data))
}

func TestAmount(t *testing.T) {
	v, err := ParseAmount("1.5")
	require.NoError(t, err)
	assert.Equal(t, int64(150000000), v)
	v, err = ParseAmount("0.00000001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = ParseAmount("0.000000001")
	assert.Equal(t, ErrAmount, errors.Cause(err))
	_, err = ParseAmount("-1")
	assert.Equal(t, ErrAmount, errors.Cause(err))
	_, err = ParseAmount("abc")
	assert.Equal(t, ErrAmount, errors.Cause(err))
	_, err = ParseAmount("1000000001")
	assert.Equal(t, ErrAmount, errors.Cause(err))

	assert.Equal(t, "1.5", FormatAmount(150000000))
	assert.Equal(t, "0.00000001", FormatAmount(1))
	assert.Equal(t, "2", FormatAmount(2*Coin))
}

func TestEncodeDecode(t *testing.T) {
	acc := &Account{Addr: "a", Balance: 10}
	var acc2 Account
	require.NoError(t, Decode(Encode(acc), &acc2))
	assert.Equal(t, *acc, acc2)
	assert.Equal(t, ErrDecode, errors.Cause(Decode([]byte("{"), &acc2)))
	assert.Panics(t, func() { Encode(make(chan int)) })
}

func TestReceiptLogDecode(t *testing.T) {
	receipt := NewErrReceipt(ErrNoBalance)
	assert.Equal(t, int32(ExecErr), receipt.Ty)
	lt := LoadLog(receipt.Logs[0].Ty)
	require.NotNil(t, lt)
	assert.Equal(t, "LogErr", lt.Name())
	v, err := lt.Decode(receipt.Logs[0].Log)
	require.NoError(t, err)
	assert.Equal(t, "ErrNoBalance", *(v.(*string)))
	assert.Nil(t, LoadLog(9999))
}

func TestInitCfgFile(t *testing.T) {
	cfg, sub, err := InitCfg("../twothirds.toml")
	require.NoError(t, err)
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.True(t, cfg.Metrics.Enable)
	assert.Equal(t, 10.0, cfg.RPC.SendTxRate)
	require.Len(t, cfg.Genesis, 1)
	assert.Contains(t, string(sub.Exec["twothirds"]), `"tieBreak":"earliest"`)

	_, _, err = InitCfg("nosuchfile.toml")
	assert.Error(t, err)
}
