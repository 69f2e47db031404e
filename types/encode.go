// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Encode 状态与日志的编码, 失败时 panic
func Encode(data interface{}) []byte {
	b, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode 解码
func Decode(data []byte, msg interface{}) error {
	if err := json.Unmarshal(data, msg); err != nil {
		return errors.Wrap(ErrDecode, err.Error())
	}
	return nil
}

// MustDecode 解码, 失败时 panic
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := Decode(data, v)
	if err != nil {
		panic(err)
	}
}
