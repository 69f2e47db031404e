// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/33cn/twothirds/common/log"
	_ "github.com/33cn/twothirds/plugin" //register plugin
	"github.com/33cn/twothirds/pluginmgr"
	"github.com/33cn/twothirds/system/dapp/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twothirds-cli",
	Short: "twothirds client tools",
}

func init() {
	rootCmd.PersistentFlags().String("rpc_laddr", "http://localhost:8801", "http url")
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.TxCmd(),
		commands.ChainCmd(),
	)
	//coins, game
	pluginmgr.AddCmd(rootCmd)
}

func main() {
	log.SetLogLevel("error")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
