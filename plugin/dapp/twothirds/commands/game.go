// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"
	"strconv"

	tt "github.com/33cn/twothirds/plugin/dapp/twothirds/types"
	"github.com/33cn/twothirds/rpc/jsonclient"
	commandtypes "github.com/33cn/twothirds/system/dapp/commands/types"
	"github.com/33cn/twothirds/types"
	"github.com/spf13/cobra"
)

// TwoThirdsCmd 猜平均数 2/3 游戏
func TwoThirdsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Guess two thirds of the average game",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		DeployCmd(),
		JoinCmd(),
		ExpireCmd(),
		HasJoinedCmd(),
		RoundCmd(),
		InfoCmd(),
	)
	return cmd
}

// DeployCmd deploy <min> <max>, 不带参数时使用节点配置
func DeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [min max]",
		Short: "Deploy a new game instance",
		Args:  cobra.MaximumNArgs(2),
		Run:   deploy,
	}
	commandtypes.AddKeyFlag(cmd)
	cmd.Flags().StringP("tiebreak", "b", "", "tie break rule, earliest or latest")
	cmd.Flags().Int64P("timeout", "t", 0, "round timeout in blocks, 0 uses the node config")
	return cmd
}

func deploy(cmd *cobra.Command, args []string) {
	tieBreak, _ := cmd.Flags().GetString("tiebreak")
	timeout, _ := cmd.Flags().GetInt64("timeout")
	params := &tt.TwoThirdsDeploy{TieBreak: tieBreak, RoundTimeout: timeout}
	switch len(args) {
	case 0:
	case 2:
		minBound, err1 := strconv.ParseInt(args[0], 10, 32)
		maxBound, err2 := strconv.ParseInt(args[1], 10, 32)
		if err1 != nil || err2 != nil {
			fmt.Fprintln(os.Stderr, tt.ErrInvalidBounds)
			return
		}
		params.MinBound, params.MaxBound = int32(minBound), int32(maxBound)
	default:
		fmt.Fprintln(os.Stderr, "deploy takes both min and max or neither")
		return
	}
	commandtypes.SendRawTx(cmd, tt.JRPCName+".CreateDeployTx", params)
}

// JoinCmd 押注参与当前轮, 押注额就是猜测的数字
func JoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Stake coins into the current round, the stake is the guess",
		Run:   join,
	}
	commandtypes.AddKeyFlag(cmd)
	addGameIDFlag(cmd)
	cmd.Flags().StringP("amount", "a", "", "stake in coins, e.g. 0.5")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func join(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetString("gameID")
	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := types.ParseAmount(amountStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	params := &tt.TwoThirdsJoin{GameID: gameID, Amount: amount}
	commandtypes.SendRawTx(cmd, tt.JRPCName+".CreateJoinTx", params)
}

// ExpireCmd 超时退款
func ExpireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expire",
		Short: "Refund a round that timed out",
		Run:   expire,
	}
	commandtypes.AddKeyFlag(cmd)
	addGameIDFlag(cmd)
	return cmd
}

func expire(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetString("gameID")
	params := &tt.TwoThirdsExpire{GameID: gameID}
	commandtypes.SendRawTx(cmd, tt.JRPCName+".CreateExpireTx", params)
}

// HasJoinedCmd 是否参与了当前轮
func HasJoinedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hasjoined",
		Short: "Check whether an address joined the current round",
		Run:   hasJoined,
	}
	addGameIDFlag(cmd)
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func hasJoined(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetString("gameID")
	addr, _ := cmd.Flags().GetString("addr")
	var res tt.ReplyHasJoined
	ctx := jsonclient.NewRPCCtx(rpcLaddr, tt.JRPCName+".HasJoined", &tt.ReqHasJoined{GameID: gameID, Addr: addr}, &res)
	ctx.Run()
}

// RoundCmd 当前轮
func RoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Show the current round",
		Run:   round,
	}
	addGameIDFlag(cmd)
	return cmd
}

func round(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetString("gameID")
	var res tt.Round
	ctx := jsonclient.NewRPCCtx(rpcLaddr, tt.JRPCName+".CurrentRound", &tt.ReqGameInfo{GameID: gameID}, &res)
	ctx.Run()
}

// InfoCmd 游戏信息
func InfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the game instance",
		Run:   info,
	}
	addGameIDFlag(cmd)
	return cmd
}

func info(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetString("gameID")
	var res tt.Game
	ctx := jsonclient.NewRPCCtx(rpcLaddr, tt.JRPCName+".GameInfo", &tt.ReqGameInfo{GameID: gameID}, &res)
	ctx.Run()
}

func addGameIDFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("gameID", "g", "", "game id")
	cmd.MarkFlagRequired("gameID")
}
