// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/twothirds/common"
	"github.com/33cn/twothirds/rpc/jsonclient"
	rpctypes "github.com/33cn/twothirds/rpc/types"
	commandtypes "github.com/33cn/twothirds/system/dapp/commands/types"
	"github.com/33cn/twothirds/types"
	"github.com/33cn/twothirds/util"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GenAccountCmd(),
		BalanceCmd(),
	)
	return cmd
}

// GenAccountCmd 生成新的私钥和地址
func GenAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a new private key and address",
		Run:   genAccount,
	}
	return cmd
}

func genAccount(cmd *cobra.Command, args []string) {
	addr, priv := util.Genaddress()
	data, err := json.MarshalIndent(&commandtypes.KeyResult{Addr: addr, PrivKey: common.ToHex(priv.Bytes())}, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}

// BalanceCmd get balance of addresses
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get coins balance of addresses",
		Run:   balance,
	}
	cmd.Flags().StringSliceP("addr", "a", nil, "account addresses")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addrs, _ := cmd.Flags().GetStringSlice("addr")
	var res []*types.Account
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.GetBalance", rpctypes.ReqBalance{Addresses: addrs}, &res)
	ctx.SetResultCb(parseBalance)
	ctx.Run()
}

func parseBalance(res interface{}) (interface{}, error) {
	accs := *res.(*[]*types.Account)
	result := make([]*commandtypes.AccountResult, 0, len(accs))
	for _, acc := range accs {
		result = append(result, commandtypes.DecodeAccount(acc))
	}
	return result, nil
}
