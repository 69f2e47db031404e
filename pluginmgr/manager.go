// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr 插件注册与初始化
package pluginmgr

import (
	"sort"
	"sync"

	"github.com/33cn/twothirds/rpc/types"
	"github.com/spf13/cobra"
)

var pluginItems = make(map[string]Plugin)

var once = &sync.Once{}

// InitExec 初始化全部执行器, 只有第一次调用生效
func InitExec(sub map[string][]byte) {
	once.Do(func() {
		for _, item := range sortedItems() {
			item.InitExec(sub)
		}
	})
}

// HasExec 是否存在执行器
func HasExec(name string) bool {
	for _, item := range pluginItems {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// Register 注册插件
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

// AddCmd 添加插件的命令行
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range sortedItems() {
		item.AddCmd(rootCmd)
	}
}

// AddRPC 添加插件的 rpc
func AddRPC(s types.RPCServer) {
	for _, item := range sortedItems() {
		item.AddRPC(s)
	}
}

func sortedItems() []Plugin {
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	items := make([]Plugin, 0, len(names))
	for _, name := range names {
		items = append(items, pluginItems[name])
	}
	return items
}
