// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	"github.com/33cn/twothirds/common/address"
	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 节点配置
type Config struct {
	Title   string          `toml:"Title"`
	Log     *Log            `toml:"log"`
	Store   *Store          `toml:"store"`
	RPC     *RPC            `toml:"rpc"`
	Metrics *Metrics        `toml:"metrics"`
	Genesis []*GenesisAlloc `toml:"genesis"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地时间（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// Store 状态与交易结果的存储
type Store struct {
	// leveldb / goleveldb / gobadgerdb / memdb
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
	// 每笔交易提交时是否 fsync
	Sync bool `toml:"sync"`
}

// RPC jsonrpc 配置
type RPC struct {
	JrpcBindAddr string   `toml:"jrpcBindAddr"`
	Whitelist    []string `toml:"whitelist"`
	CorsOrigins  []string `toml:"corsOrigins"`
	// SendTransaction 每个 ip 的限流, 每秒 SendTxRate 笔, 突发 SendTxBurst 笔
	SendTxRate  float64 `toml:"sendTxRate"`
	SendTxBurst int64   `toml:"sendTxBurst"`
}

// Metrics prometheus 指标
type Metrics struct {
	Enable bool `toml:"enable"`
}

// ConfigSubModule 执行器的子配置, json 格式
type ConfigSubModule struct {
	Exec map[string][]byte
}

type subModule struct {
	Exec map[string]interface{} `toml:"exec"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		Title: "local",
		Log: &Log{
			Loglevel:        "info",
			LogConsoleLevel: "info",
			LogFile:         "logs/twothirds.log",
			MaxFileSize:     300,
			MaxBackups:      100,
			MaxAge:          28,
			LocalTime:       true,
		},
		Store: &Store{
			Driver:  "leveldb",
			DbPath:  "datadir",
			DbCache: 64,
		},
		RPC: &RPC{
			JrpcBindAddr: "localhost:8801",
			Whitelist:    []string{"127.0.0.1"},
			SendTxRate:   10,
			SendTxBurst:  20,
		},
		Metrics: &Metrics{},
	}
}

// ReadFile 读取配置文件
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read config %s", path)
	}
	return string(data), nil
}

// InitCfg 初始化配置
func InitCfg(path string) (*Config, *ConfigSubModule, error) {
	cfgstring, err := ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return InitCfgString(cfgstring)
}

// InitCfgString 解析配置, 未出现的字段保持默认值
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule, error) {
	cfg := DefaultConfig()
	if _, err := tml.Decode(cfgstring, cfg); err != nil {
		return nil, nil, errors.Wrap(ErrConfig, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	var sub subModule
	if _, err := tml.Decode(cfgstring, &sub); err != nil {
		return nil, nil, errors.Wrap(ErrConfig, err.Error())
	}
	return cfg, parseSubModule(&sub), nil
}

// Validate 配置检查
func (cfg *Config) Validate() error {
	if cfg.Title == "" {
		return errors.Wrap(ErrConfig, "empty Title")
	}
	if cfg.Store == nil || cfg.Store.Driver == "" {
		return errors.Wrap(ErrConfig, "store.driver required")
	}
	if cfg.RPC != nil && cfg.RPC.SendTxRate < 0 {
		return errors.Wrap(ErrConfig, "rpc.sendTxRate must not be negative")
	}
	for _, g := range cfg.Genesis {
		if err := address.CheckAddress(g.Addr); err != nil {
			return errors.Wrapf(ErrConfig, "genesis addr %s: %v", g.Addr, err)
		}
		if g.Amount <= 0 || g.Amount > MaxCoin/Coin {
			return errors.Wrapf(ErrConfig, "genesis amount %d of %s", g.Amount, g.Addr)
		}
	}
	return nil
}

func parseSubModule(cfg *subModule) *ConfigSubModule {
	return &ConfigSubModule{Exec: parseItem(cfg.Exec)}
}

func parseItem(data map[string]interface{}) map[string][]byte {
	subconfig := make(map[string][]byte)
	if len(data) == 0 {
		return subconfig
	}
	for key := range data {
		if key == "sub" {
			subcfg, ok := data[key].(map[string]interface{})
			if !ok {
				continue
			}
			for k := range subcfg {
				subconfig[k], _ = json.Marshal(subcfg[k])
			}
		}
	}
	return subconfig
}

// ModifySubConfig json data modify
func ModifySubConfig(sub []byte, key string, value interface{}) ([]byte, error) {
	data := make(map[string]interface{})
	if len(sub) > 0 {
		err := json.Unmarshal(sub, &data)
		if err != nil {
			return nil, err
		}
	}
	data[key] = value
	return json.Marshal(data)
}
