// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	tt "github.com/33cn/twothirds/plugin/dapp/twothirds/types"
	"github.com/33cn/twothirds/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type subConf struct {
	MinBound int32  `json:"minBound"`
	MaxBound int32  `json:"maxBound"`
	Seed     string `json:"seed"`
	TieBreak string `json:"tieBreak"`
}

func TestLoadOrCreateSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", seedFile)
	seed, err := loadOrCreateSeed(path)
	require.NoError(t, err)
	assert.Len(t, seed, 64)

	again, err := loadOrCreateSeed(path)
	require.NoError(t, err)
	assert.Equal(t, seed, again)

	require.NoError(t, os.WriteFile(path, []byte("not hex"), 0600))
	_, err = loadOrCreateSeed(path)
	assert.Error(t, err)
}

func TestOverrideSubConfig(t *testing.T) {
	cfg, sub, err := types.InitCfgString(`
Title="local"
[store]
driver="memdb"
[exec.sub.twothirds]
minBound=2
maxBound=3
tieBreak="latest"
`)
	require.NoError(t, err)
	cfg.Store.DbPath = t.TempDir()

	require.NoError(t, overrideSubConfig(cfg, sub, 4, 9))
	var conf subConf
	types.MustDecode(sub.Exec[tt.TwoThirdsX], &conf)
	assert.Equal(t, int32(4), conf.MinBound)
	assert.Equal(t, int32(9), conf.MaxBound)
	assert.Equal(t, "latest", conf.TieBreak)
	assert.Len(t, conf.Seed, 64)

	//seed 持久化, 再次加载不变
	_, sub2, err := types.InitCfgString("Title=\"local\"\n[store]\ndriver=\"memdb\"\n")
	require.NoError(t, err)
	require.NoError(t, overrideSubConfig(cfg, sub2, 0, 0))
	var conf2 subConf
	types.MustDecode(sub2.Exec[tt.TwoThirdsX], &conf2)
	assert.Equal(t, conf.Seed, conf2.Seed)
	assert.Equal(t, int32(0), conf2.MinBound)
}

func TestOverrideSubConfigSingleBound(t *testing.T) {
	newSub := func() (*types.Config, *types.ConfigSubModule) {
		cfg, sub, err := types.InitCfgString("Title=\"local\"\n[exec.sub.twothirds]\nminBound=2\nmaxBound=3\n")
		require.NoError(t, err)
		cfg.Store.DbPath = t.TempDir()
		return cfg, sub
	}

	cfg, sub := newSub()
	require.NoError(t, overrideSubConfig(cfg, sub, 0, 10))
	var conf subConf
	types.MustDecode(sub.Exec[tt.TwoThirdsX], &conf)
	assert.Equal(t, int32(2), conf.MinBound)
	assert.Equal(t, int32(10), conf.MaxBound)

	cfg, sub = newSub()
	require.NoError(t, overrideSubConfig(cfg, sub, 3, 0))
	conf = subConf{}
	types.MustDecode(sub.Exec[tt.TwoThirdsX], &conf)
	assert.Equal(t, int32(3), conf.MinBound)
	assert.Equal(t, int32(3), conf.MaxBound)
}

func TestOverrideSubConfigSeed(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Store.DbPath = t.TempDir()
	sub := &types.ConfigSubModule{Exec: map[string][]byte{tt.TwoThirdsX: []byte(`{"seed":"abcd"}`)}}
	require.NoError(t, overrideSubConfig(cfg, sub, 0, 0))
	var conf subConf
	types.MustDecode(sub.Exec[tt.TwoThirdsX], &conf)
	assert.Equal(t, "abcd", conf.Seed)
	_, err := os.Stat(filepath.Join(cfg.Store.DbPath, seedFile))
	assert.True(t, os.IsNotExist(err))
}
