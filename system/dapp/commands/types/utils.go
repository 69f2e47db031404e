// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
	"os"

	"github.com/33cn/twothirds/common"
	"github.com/33cn/twothirds/common/crypto"
	"github.com/33cn/twothirds/rpc/jsonclient"
	rpctypes "github.com/33cn/twothirds/rpc/types"
	"github.com/33cn/twothirds/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// DecodeAccount 余额按 coin 显示
func DecodeAccount(acc *types.Account) *AccountResult {
	return &AccountResult{
		Addr:    acc.Addr,
		Balance: types.FormatAmount(acc.Balance),
		Locked:  acc.Locked,
	}
}

// ParsePrivKey 十六进制私钥
func ParsePrivKey(key string) (crypto.PrivKey, error) {
	cr, err := crypto.New(crypto.GetName(types.SECP256K1))
	if err != nil {
		return nil, err
	}
	bkey, err := common.FromHex(key)
	if err != nil {
		return nil, errors.Wrap(types.ErrInvalidParam, "private key must be hex")
	}
	priv, err := cr.PrivKeyFromBytes(bkey)
	if err != nil {
		return nil, errors.Wrap(types.ErrInvalidParam, err.Error())
	}
	return priv, nil
}

// SignRawTx 对十六进制编码的交易签名
func SignRawTx(priv crypto.PrivKey, data string) (string, error) {
	b, err := common.FromHex(data)
	if err != nil {
		return "", errors.Wrap(types.ErrInvalidParam, "raw tx must be hex")
	}
	var tx types.Transaction
	if err := tx.Unmarshal(b); err != nil {
		return "", err
	}
	tx.Sign(types.SECP256K1, priv)
	return tx.HexString(), nil
}

// SendTx 签名并发送交易, 打印交易 hash
func SendTx(cmd *cobra.Command, tx *types.Transaction) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	key, _ := cmd.Flags().GetString("key")
	priv, err := ParsePrivKey(key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx.Sign(types.SECP256K1, priv)
	sendSigned(rpcLaddr, tx.HexString())
}

// SendRawTx 通过 rpc 构造的未签名交易, 本地签名后发送
func SendRawTx(cmd *cobra.Command, method string, params interface{}) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	key, _ := cmd.Flags().GetString("key")
	priv, err := ParsePrivKey(key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	rpc, err := jsonclient.NewJSONClient(rpcLaddr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	var raw string
	if err := rpc.Call(method, params, &raw); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	signed, err := SignRawTx(priv, raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	sendSigned(rpcLaddr, signed)
}

func sendSigned(rpcLaddr, signed string) {
	var hash string
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.SendTransaction", rpctypes.RawParm{Data: signed}, &hash)
	ctx.Run()
}

// AddKeyFlag 签名私钥
func AddKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "private key of the sender (hex)")
	cmd.MarkFlagRequired("key")
}
