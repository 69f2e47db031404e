// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc 节点的 jsonrpc 服务
package rpc

import (
	"net"
	"net/http"
	"net/rpc"
	"time"

	"github.com/33cn/twothirds/common/log"
	"github.com/33cn/twothirds/metrics"
	"github.com/33cn/twothirds/pluginmgr"
	rpctypes "github.com/33cn/twothirds/rpc/types"
	"github.com/33cn/twothirds/types"
	"github.com/kevinms/leakybucket-go"
	"github.com/rs/cors"
)

var rlog = log.New("module", "rpc")

// Chain33 系统 jsonrpc
type Chain33 struct {
	cli rpctypes.ChannelClient
}

// RPC jsonrpc server
type RPC struct {
	cfg       *types.RPC
	metrics   bool
	api       rpctypes.ChainAPI
	jrpc      *rpc.Server
	limiter   *leakybucket.Collector
	whitelist map[string]bool
	l         net.Listener
	srv       *http.Server
}

// New 创建 rpc 服务并注册系统和插件的 jsonrpc
func New(cfg *types.Config, api rpctypes.ChainAPI) *RPC {
	rcfg := cfg.RPC
	if rcfg == nil {
		rcfg = types.DefaultConfig().RPC
	}
	r := &RPC{
		cfg:       rcfg,
		metrics:   cfg.Metrics != nil && cfg.Metrics.Enable,
		api:       api,
		jrpc:      rpc.NewServer(),
		whitelist: make(map[string]bool),
	}
	for _, ip := range rcfg.Whitelist {
		r.whitelist[ip] = true
	}
	if rcfg.SendTxRate > 0 {
		burst := rcfg.SendTxBurst
		if burst <= 0 {
			burst = 1
		}
		r.limiter = leakybucket.NewCollector(rcfg.SendTxRate, burst, true)
	}
	chain33 := &Chain33{}
	chain33.cli.Init("Chain33", r, chain33)
	//注册插件 rpc
	pluginmgr.AddRPC(r)
	return r
}

// JRPC jsonrpc server
func (r *RPC) JRPC() *rpc.Server {
	return r.jrpc
}

// API chain api
func (r *RPC) API() rpctypes.ChainAPI {
	return r.api
}

// Handler http handler, "/" 为 jsonrpc, 开启指标时 "/metrics" 为 prometheus
func (r *RPC) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", r.jsonrpcHandler())
	if r.metrics {
		mux.Handle("/metrics", metrics.Handler())
	}
	c := cors.New(cors.Options{
		AllowedOrigins: r.cfg.CorsOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodGet},
	})
	return c.Handler(mux)
}

// Listen 监听 jrpcBindAddr, 返回实际端口
func (r *RPC) Listen() (int, error) {
	listener, err := net.Listen("tcp", r.cfg.JrpcBindAddr)
	if err != nil {
		return 0, err
	}
	r.l = listener
	r.srv = &http.Server{Handler: r.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := r.srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			rlog.Error("jsonrpc serve", "err", err)
		}
	}()
	rlog.Info("jsonrpc listen", "addr", listener.Addr().String())
	return listener.Addr().(*net.TCPAddr).Port, nil
}

// Close 关闭监听
func (r *RPC) Close() {
	if r.srv == nil {
		return
	}
	if err := r.srv.Close(); err != nil {
		rlog.Error("jsonrpc close", "err", err)
	}
}

func (r *RPC) checkIPWhitelist(addr string) bool {
	//回环网络直接允许
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	if ip.IsLoopback() {
		return true
	}
	if ipv4 := ip.To4(); ipv4 != nil {
		addr = ipv4.String()
	}
	if r.whitelist["0.0.0.0"] {
		return true
	}
	return r.whitelist[addr]
}

// allowSendTx SendTransaction 按 ip 限流
func (r *RPC) allowSendTx(ip string) bool {
	if r.limiter == nil {
		return true
	}
	// 桶满时 Add 返回 0
	if r.limiter.Add(ip, 1) == 0 {
		metrics.RPCLimited.Inc(1)
		return false
	}
	return true
}
