// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coins 系统内置的 coins 执行器
package coins

import (
	"github.com/33cn/twothirds/pluginmgr"
	"github.com/33cn/twothirds/system/dapp/coins/executor"
	cty "github.com/33cn/twothirds/system/dapp/coins/types"
	"github.com/33cn/twothirds/system/dapp/commands"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "coins",
		ExecName: cty.CoinsX,
		Exec:     executor.Init,
		Cmd:      commands.CoinsCmd,
	})
}
