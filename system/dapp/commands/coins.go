// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/33cn/twothirds/common/address"
	cty "github.com/33cn/twothirds/system/dapp/coins/types"
	commandtypes "github.com/33cn/twothirds/system/dapp/commands/types"
	"github.com/33cn/twothirds/types"
	"github.com/33cn/twothirds/util"
	"github.com/spf13/cobra"
)

// CoinsCmd coins command func
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Send system coins transactions",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		TransferCmd(),
		LockCmd(),
		UnlockCmd(),
	)
	return cmd
}

// TransferCmd transfer coins
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins to an address",
		Run:   transfer,
	}
	commandtypes.AddKeyFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "transaction amount in coins, e.g. 1.5")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func transfer(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amountStr, _ := cmd.Flags().GetString("amount")
	if err := address.CheckAddress(to); err != nil {
		fmt.Fprintln(os.Stderr, types.ErrInvalidAddress)
		return
	}
	amount, err := types.ParseAmount(amountStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx := util.CreateCoinsTxUnsigned(to, amount)
	commandtypes.SendTx(cmd, tx)
}

// LockCmd 锁定账户, 锁定后拒绝转入
func LockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Lock the sender account, incoming transfers are refused",
		Run: func(cmd *cobra.Command, args []string) {
			sendCoinsAction(cmd, "Lock", &cty.CoinsLock{})
		},
	}
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

// UnlockCmd 解锁账户
func UnlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Unlock the sender account",
		Run: func(cmd *cobra.Command, args []string) {
			sendCoinsAction(cmd, "Unlock", &cty.CoinsUnlock{})
		},
	}
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

func sendCoinsAction(cmd *cobra.Command, action string, param interface{}) {
	tx, err := util.CreateTx(nil, cty.CoinsX, action, param)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commandtypes.SendTx(cmd, tx)
}
