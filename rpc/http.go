// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc/jsonrpc"

	"github.com/33cn/twothirds/types"
)

const maxRequestSize = 1 << 20

// HTTPConn adapt HTTP connection to ReadWriteCloser
type HTTPConn struct {
	in  io.Reader
	out io.Writer
}

func (c *HTTPConn) Read(p []byte) (n int, err error)  { return c.in.Read(p) }
func (c *HTTPConn) Write(d []byte) (n int, err error) { return c.out.Write(d) }

// Close nothing to close
func (c *HTTPConn) Close() error { return nil }

type clientRequest struct {
	Method string           `json:"method"`
	ID     *json.RawMessage `json:"id"`
}

type serverResponse struct {
	ID     *json.RawMessage `json:"id"`
	Result interface{}      `json:"result"`
	Error  interface{}      `json:"error"`
}

func writeError(w http.ResponseWriter, id *json.RawMessage, err error) {
	w.Header().Set("Content-type", "application/json")
	w.WriteHeader(200)
	data, _ := json.Marshal(&serverResponse{ID: id, Error: err.Error()})
	_, _ = w.Write(data)
}

func (r *RPC) jsonrpcHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" || req.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil || !r.checkIPWhitelist(ip) {
			rlog.Debug("jsonrpc reject", "remote", req.RemoteAddr)
			writeError(w, nil, types.ErrJrpcNotAllow)
			return
		}
		body, err := io.ReadAll(io.LimitReader(req.Body, maxRequestSize))
		if err != nil {
			writeError(w, nil, err)
			return
		}
		var creq clientRequest
		if err := json.Unmarshal(body, &creq); err != nil {
			writeError(w, nil, types.ErrInvalidParam)
			return
		}
		if creq.Method == "Chain33.SendTransaction" && !r.allowSendTx(ip) {
			rlog.Warn("SendTransaction rate limited", "ip", ip)
			writeError(w, creq.ID, types.ErrRateLimited)
			return
		}
		serverCodec := jsonrpc.NewServerCodec(&HTTPConn{in: bytes.NewReader(body), out: w})
		w.Header().Set("Content-type", "application/json")
		w.WriteHeader(200)
		if err := r.jrpc.ServeRequest(serverCodec); err != nil {
			rlog.Debug("Error while serving JSON request", "method", creq.Method, "err", err)
		}
	})
}
