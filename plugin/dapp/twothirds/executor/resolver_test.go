// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"
	"testing"

	tt "github.com/33cn/twothirds/plugin/dapp/twothirds/types"
	"github.com/33cn/twothirds/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func participants(guesses ...int64) []*tt.Participant {
	ps := make([]*tt.Participant, 0, len(guesses))
	for i, g := range guesses {
		ps = append(ps, &tt.Participant{Addr: fmt.Sprintf("addr%d", i), Guess: g, JoinSequence: int32(i)})
	}
	return ps
}

func TestResolve(t *testing.T) {
	res, err := Resolve(participants(10, 20, 30), tt.TieBreakEarliest)
	require.NoError(t, err)
	assert.Equal(t, int64(13), res.Target)
	assert.Equal(t, "addr0", res.Winner.Addr)
	assert.Equal(t, int64(60), res.Reward)

	// 1, 2, 0.5
	res, err = Resolve(participants(types.Coin, 2*types.Coin, types.Coin/2), tt.TieBreakEarliest)
	require.NoError(t, err)
	assert.Equal(t, int64(77777777), res.Target)
	assert.Equal(t, "addr0", res.Winner.Addr)
	assert.Equal(t, 35*types.Coin/10, res.Reward)
}

func TestResolveTieBreak(t *testing.T) {
	// 1, 2, 0.5, 1: target 0.75, addr0 addr2 addr3 同样接近
	ps := participants(types.Coin, 2*types.Coin, types.Coin/2, types.Coin)
	res, err := Resolve(ps, tt.TieBreakEarliest)
	require.NoError(t, err)
	assert.Equal(t, int64(75000000), res.Target)
	assert.Equal(t, "addr0", res.Winner.Addr)

	res, err = Resolve(ps, tt.TieBreakLatest)
	require.NoError(t, err)
	assert.Equal(t, "addr3", res.Winner.Addr)
	assert.Equal(t, 45*types.Coin/10, res.Reward)
}

func TestResolveSingle(t *testing.T) {
	res, err := Resolve(participants(7), tt.TieBreakEarliest)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Target)
	assert.Equal(t, "addr0", res.Winner.Addr)
	assert.Equal(t, int64(7), res.Reward)
}

func TestResolveErrors(t *testing.T) {
	_, err := Resolve(nil, tt.TieBreakEarliest)
	assert.Equal(t, tt.ErrRoundEmpty, err)

	//2 * sum 超出 int64 也能算出 target
	ps := participants(types.MaxCoin, types.MaxCoin, types.MaxCoin, 1)
	var guesses []int64
	for i := 0; i < 100; i++ {
		guesses = append(guesses, types.MaxCoin)
	}
	_, err = Resolve(participants(guesses...), tt.TieBreakEarliest)
	assert.Equal(t, tt.ErrPotOverflow, err)

	res, err := Resolve(ps, tt.TieBreakEarliest)
	require.NoError(t, err)
	assert.Equal(t, types.MaxCoin/2, res.Target)
	assert.Equal(t, "addr3", res.Winner.Addr)
}

func TestResolveDoesNotMutate(t *testing.T) {
	ps := participants(3, 1, 2)
	_, err := Resolve(ps, tt.TieBreakLatest)
	require.NoError(t, err)
	assert.Equal(t, int64(3), ps[0].Guess)
	assert.Equal(t, int32(2), ps[2].JoinSequence)
	assert.Len(t, ps, 3)
}
