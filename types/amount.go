// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// FormatAmount 最小单位转成 coin 的字符串表示
func FormatAmount(amount int64) string {
	return decimal.New(amount, -CoinPrecision).String()
}

// ParseAmount coin 字符串转成最小单位, 精度不能超过 8 位小数
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrap(ErrAmount, err.Error())
	}
	d = d.Shift(CoinPrecision)
	if !d.Equal(d.Truncate(0)) {
		return 0, errors.Wrapf(ErrAmount, "%s has more than %d decimals", s, CoinPrecision)
	}
	if d.Sign() <= 0 || d.GreaterThan(decimal.New(MaxCoin, 0)) {
		return 0, errors.Wrapf(ErrAmount, "%s out of range", s)
	}
	return d.IntPart(), nil
}
