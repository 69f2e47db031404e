// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package twothirds 猜平均数 2/3 的押注游戏
package twothirds

import (
	"github.com/33cn/twothirds/plugin/dapp/twothirds/commands"
	"github.com/33cn/twothirds/plugin/dapp/twothirds/executor"
	"github.com/33cn/twothirds/plugin/dapp/twothirds/rpc"
	tt "github.com/33cn/twothirds/plugin/dapp/twothirds/types"
	"github.com/33cn/twothirds/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "twothirds",
		ExecName: tt.TwoThirdsX,
		Exec:     executor.Init,
		Cmd:      commands.TwoThirdsCmd,
		RPC:      rpc.Init,
	})
}
