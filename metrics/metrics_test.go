// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricName(t *testing.T) {
	assert.Equal(t, "twothirds_chain_tx_ok", metricName("chain/tx/ok"))
	assert.Equal(t, "twothirds_twothirds_round_ended", metricName("twothirds.round-ended"))
}

func TestHandler(t *testing.T) {
	TxOk.Inc(2)
	Height.Update(7)
	TxExecTime.Update(time.Millisecond)
	Counter("test/counter").Inc(1)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text, "twothirds_chain_tx_ok")
	assert.Contains(t, text, "twothirds_chain_height 7")
	assert.Contains(t, text, "twothirds_chain_tx_exec_seconds_count")
	assert.Contains(t, text, "twothirds_test_counter 1")
	assert.Contains(t, text, "go_goroutines")
}
