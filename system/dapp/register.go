// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/33cn/twothirds/common/address"
	log "github.com/33cn/twothirds/common/log"
	"github.com/33cn/twothirds/types"
)

var elog = log.New("module", "execs")

// DriverCreate 每笔交易创建一个新的 driver 实例
type DriverCreate func() Driver

// 从 height 开始启用
type registeredDriver struct {
	create DriverCreate
	height int64
}

func (r *registeredDriver) enabled(height int64) bool {
	return height == -1 || height >= r.height
}

var (
	driversByName = make(map[string]*registeredDriver)
	driversByAddr = make(map[string]*registeredDriver)
)

// Register 只能在 init 阶段调用, 重复注册 panic
func Register(name string, create DriverCreate, height int64) {
	if name == "" || create == nil {
		panic("dapp: Register with empty name or nil driver")
	}
	if _, dup := driversByName[name]; dup {
		panic("dapp: Register called twice for driver " + name)
	}
	d := &registeredDriver{create: create, height: height}
	driversByName[name] = d
	driversByAddr[address.ExecAddress(name)] = d
}

// LoadDriver height 为 -1 时忽略启用高度 (查询)
func LoadDriver(name string, height int64) (Driver, error) {
	d, ok := driversByName[name]
	if !ok || !d.enabled(height) {
		elog.Debug("LoadDriver", "driver", name, "height", height)
		return nil, types.ErrUnknowDriver
	}
	return d.create(), nil
}

// IsDriverAddress addr 是否是某个已启用执行器的地址
func IsDriverAddress(addr string, height int64) bool {
	d, ok := driversByAddr[addr]
	return ok && d.enabled(height)
}

// ExecAddress 执行器名对应的合约地址, address 包内有缓存
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}
