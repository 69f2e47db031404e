// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/33cn/twothirds/rpc/types"
	"github.com/spf13/cobra"
)

// PluginBase plugin module base struct
type PluginBase struct {
	Name     string
	ExecName string
	RPC      func(name string, s types.RPCServer)
	Exec     func(name string, sub []byte)
	Cmd      func() *cobra.Command
}

// GetName 插件名
func (p *PluginBase) GetName() string {
	return p.Name
}

// GetExecutorName 执行器名
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

// InitExec init exec, sub 为 [exec.sub.<name>] 的 json
func (p *PluginBase) InitExec(sub map[string][]byte) {
	if p.Exec != nil {
		// 没有子配置时传 nil, 执行器使用默认值
		p.Exec(p.ExecName, sub[p.ExecName])
	}
}

// AddCmd add Command for plugin cli
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd == nil {
		return
	}
	if cmd := p.Cmd(); cmd != nil {
		rootCmd.AddCommand(cmd)
	}
}

// AddRPC add Rpc for plugin
func (p *PluginBase) AddRPC(c types.RPCServer) {
	if p.RPC != nil {
		p.RPC(p.GetExecutorName(), c)
	}
}
