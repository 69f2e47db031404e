// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli RunTwoThirds 加载各个模块, 组合成单节点的账本程序
// 交易由 rpc 进入, blockchain 单协程顺序执行
package cli

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/33cn/twothirds/blockchain"
	dbm "github.com/33cn/twothirds/common/db"
	clog "github.com/33cn/twothirds/common/log"
	_ "github.com/33cn/twothirds/plugin" //register plugin
	tt "github.com/33cn/twothirds/plugin/dapp/twothirds/types"
	"github.com/33cn/twothirds/rpc"
	"github.com/33cn/twothirds/types"
	"github.com/33cn/twothirds/util"
	"github.com/pkg/errors"
)

var (
	configPath = flag.String("f", "", "configfile")
	datadir    = flag.String("datadir", "", "data dir of twothirds, include logs and datas")
	minBound   = flag.Int("min", 0, "min participants of a round, overrides exec.sub.twothirds.minBound")
	maxBound   = flag.Int("max", 0, "max participants of a round, overrides exec.sub.twothirds.maxBound")
	log        = clog.New("module", "main")
)

const seedFile = "twothirds.seed"

// RunTwoThirds : run twothirds node
func RunTwoThirds(name string) {
	flag.Parse()
	if *configPath == "" {
		if name == "" {
			*configPath = "twothirds.toml"
		} else {
			*configPath = name + ".toml"
		}
	}
	cfg, sub, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *datadir != "" {
		util.ResetDatadir(cfg, *datadir)
	}
	clog.SetFileLog(cfg.Log)
	if err := run(cfg, sub); err != nil {
		log.Crit("twothirds stopped", "err", err)
		os.Exit(1)
	}
}

// 配置文件不存在时使用默认配置
func loadConfig(path string) (*types.Config, *types.ConfigSubModule, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return types.DefaultConfig(), &types.ConfigSubModule{Exec: make(map[string][]byte)}, nil
	}
	return types.InitCfg(path)
}

func run(cfg *types.Config, sub *types.ConfigSubModule) error {
	if err := overrideSubConfig(cfg, sub, *minBound, *maxBound); err != nil {
		return err
	}
	log.Info("loading store", "driver", cfg.Store.Driver, "path", cfg.Store.DbPath)
	db, err := dbm.NewDB("twothirds", cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info("loading blockchain module")
	chain, err := blockchain.New(cfg, sub, db)
	if err != nil {
		return err
	}
	chain.Start()
	defer chain.Close()

	log.Info("loading rpc module")
	rpcapi := rpc.New(cfg, chain)
	port, err := rpcapi.Listen()
	if err != nil {
		return err
	}
	defer rpcapi.Close()
	log.Info(cfg.Title+" started", "height", chain.GetLastHeight(), "rpcPort", port)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	s := <-interrupt
	log.Info("Got signal:", "signal", s)
	return nil
}

// overrideSubConfig 命令行参数覆盖 [exec.sub.twothirds], 没有配置 seed 时使用数据目录下的 seed 文件
func overrideSubConfig(cfg *types.Config, sub *types.ConfigSubModule, minBound, maxBound int) error {
	if sub.Exec == nil {
		sub.Exec = make(map[string][]byte)
	}
	data := sub.Exec[tt.TwoThirdsX]
	var err error
	// 只覆盖命令行给出的那一个, 另一个保留配置值
	if minBound != 0 {
		if data, err = types.ModifySubConfig(data, "minBound", minBound); err != nil {
			return err
		}
	}
	if maxBound != 0 {
		if data, err = types.ModifySubConfig(data, "maxBound", maxBound); err != nil {
			return err
		}
	}
	var conf struct {
		Seed string `json:"seed"`
	}
	if len(data) > 0 {
		if err := types.Decode(data, &conf); err != nil {
			return err
		}
	}
	if conf.Seed == "" {
		seed, err := loadOrCreateSeed(filepath.Join(cfg.Store.DbPath, seedFile))
		if err != nil {
			return err
		}
		if data, err = types.ModifySubConfig(data, "seed", seed); err != nil {
			return err
		}
	}
	sub.Exec[tt.TwoThirdsX] = data
	return nil
}

// 目标人数由 seed 派生, 重启以后必须使用同一个 seed
func loadOrCreateSeed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		seed := strings.TrimSpace(string(data))
		if _, err := hex.DecodeString(seed); err != nil {
			return "", errors.Wrapf(types.ErrConfig, "bad seed file %s", path)
		}
		return seed, nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	seed := hex.EncodeToString(b)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(seed+"\n"), 0600); err != nil {
		return "", err
	}
	log.Info("create seed file", "path", path)
	return seed, nil
}
