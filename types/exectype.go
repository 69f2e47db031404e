// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// ActionProvider 执行器 action 的描述
// action 为 json 编码的结构体, 包含 Ty 字段以及与动作名同名的指针字段
type ActionProvider interface {
	GetName() string
	GetPayload() interface{}
	GetTypeMap() map[string]int32
}

// ExecTypeBase ExecutorType 的通用实现
type ExecTypeBase struct {
	child ActionProvider
}

var nilValue = reflect.ValueOf(nil)

// SetChild 设置具体的执行器类型
func (base *ExecTypeBase) SetChild(child ActionProvider) {
	base.child = child
}

// DecodePayload 解码 action
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (interface{}, error) {
	payload := base.child.GetPayload()
	if err := Decode(tx.Payload, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// DecodePayloadValue 解码 action, 返回动作名和动作参数
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "", nilValue, err
	}
	v := reflect.ValueOf(payload).Elem()
	tyField := v.FieldByName("Ty")
	if !tyField.IsValid() {
		return "", nilValue, ErrActionNotSupport
	}
	ty := int32(tyField.Int())
	for name, t := range base.child.GetTypeMap() {
		if t != ty {
			continue
		}
		field := v.FieldByName(name)
		if !field.IsValid() || field.Kind() != reflect.Ptr || field.IsNil() {
			return "", nilValue, ErrActionNotSupport
		}
		return name, field, nil
	}
	return "", nilValue, ErrActionNotSupport
}

// ActionName 动作名, 小写
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	name, _, err := base.DecodePayloadValue(tx)
	if err != nil {
		return "unknown"
	}
	return strings.ToLower(name)
}

// CreateTx 按动作名构造未签名交易, message 为动作参数的 json
func (base *ExecTypeBase) CreateTx(action string, message json.RawMessage) (*Transaction, error) {
	ty, ok := base.child.GetTypeMap()[action]
	if !ok {
		return nil, ErrActionNotSupport
	}
	payload := base.child.GetPayload()
	v := reflect.ValueOf(payload).Elem()
	field := v.FieldByName(action)
	if !field.IsValid() || field.Kind() != reflect.Ptr {
		return nil, ErrActionNotSupport
	}
	value := reflect.New(field.Type().Elem())
	if len(message) > 0 {
		if err := json.Unmarshal(message, value.Interface()); err != nil {
			return nil, errors.Wrap(ErrInvalidParam, err.Error())
		}
	}
	v.FieldByName("Ty").SetInt(int64(ty))
	field.Set(value)
	return NewTransaction(base.child.GetName(), payload), nil
}
