// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonclient 节点 jsonrpc 的客户端
package jsonclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// JSONClient a object of jsonclient
type JSONClient struct {
	url    string
	prefix string
	client *http.Client
}

type clientRequest struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"`
	Params  [1]interface{} `json:"params"`
	ID      string         `json:"id"`
}

type clientResponse struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  interface{}     `json:"error"`
}

// NewJSONClient 默认的服务名为 Chain33
func NewJSONClient(url string) (*JSONClient, error) {
	return NewJSONClientWithPrefix("Chain33", url)
}

// NewJSONClientWithPrefix 方法名不带 "." 时加上 prefix
func NewJSONClientWithPrefix(prefix, url string) (*JSONClient, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	return &JSONClient{url: url, prefix: prefix, client: &http.Client{Timeout: time.Minute}}, nil
}

// Call jsonrpc 调用, resp 为结果的指针
func (client *JSONClient) Call(method string, params, resp interface{}) error {
	if !strings.Contains(method, ".") {
		method = client.prefix + "." + method
	}
	req := &clientRequest{JSONRPC: "2.0", Method: method, ID: uuid.New().String()}
	req.Params[0] = params
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	postresp, err := client.client.Post(client.url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer postresp.Body.Close()
	b, err := io.ReadAll(postresp.Body)
	if err != nil {
		return err
	}
	if postresp.StatusCode != http.StatusOK {
		return errors.Errorf("http status %d: %s", postresp.StatusCode, strings.TrimSpace(string(b)))
	}
	cresp := &clientResponse{}
	if err := json.Unmarshal(b, cresp); err != nil {
		return errors.Wrap(err, "decode response")
	}
	if cresp.Error != nil {
		return errors.New(fmt.Sprint(cresp.Error))
	}
	if resp == nil || len(cresp.Result) == 0 {
		return nil
	}
	return json.Unmarshal(cresp.Result, resp)
}
