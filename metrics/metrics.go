// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 节点指标, go-metrics 记录, prometheus 导出
package metrics

import (
	"net/http"
	"strings"

	log "github.com/33cn/twothirds/common/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

// Namespace prometheus 指标前缀
var Namespace = "twothirds"

// Registry 全部节点指标
var Registry = go_metrics.NewRegistry()

// 链上指标
var (
	TxOk       = go_metrics.NewRegisteredCounter("chain/tx/ok", Registry)
	TxErr      = go_metrics.NewRegisteredCounter("chain/tx/err", Registry)
	TxRejected = go_metrics.NewRegisteredCounter("chain/tx/rejected", Registry)
	Height     = go_metrics.NewRegisteredGauge("chain/height", Registry)
	TxExecTime = go_metrics.NewRegisteredTimer("chain/tx/exec", Registry)
	RPCLimited = go_metrics.NewRegisteredCounter("rpc/ratelimited", Registry)
)

// Counter 按名字获取或注册计数器
func Counter(name string) go_metrics.Counter {
	return go_metrics.GetOrRegisterCounter(name, Registry)
}

var quantiles = []float64{0.5, 0.9, 0.99}

type collector struct {
	registry go_metrics.Registry
}

// NewCollector 把 go-metrics 的指标转换成 prometheus 指标
func NewCollector(r go_metrics.Registry) prometheus.Collector {
	return &collector{registry: r}
}

// Describe 不声明描述, 作为 unchecked collector 注册
func (c *collector) Describe(ch chan<- *prometheus.Desc) {}

// Collect 导出当前快照
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	c.registry.Each(func(name string, i interface{}) {
		fqName := metricName(name)
		switch m := i.(type) {
		case go_metrics.Counter:
			desc := prometheus.NewDesc(fqName, name, nil, nil)
			ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(m.Count()))
		case go_metrics.Gauge:
			desc := prometheus.NewDesc(fqName, name, nil, nil)
			ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, float64(m.Value()))
		case go_metrics.Timer:
			snap := m.Snapshot()
			ps := snap.Percentiles(quantiles)
			qs := make(map[float64]float64, len(quantiles))
			for i, q := range quantiles {
				qs[q] = ps[i] / 1e9
			}
			desc := prometheus.NewDesc(fqName+"_seconds", name, nil, nil)
			ch <- prometheus.MustNewConstSummary(desc, uint64(snap.Count()), float64(snap.Sum())/1e9, qs)
		default:
			mlog.Debug("Collect unsupported metric", "name", name)
		}
	})
}

func metricName(name string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_")
	return Namespace + "_" + r.Replace(name)
}

func newMetricsRegistry() (r *prometheus.Registry) {
	r = prometheus.NewRegistry()
	r.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
			Namespace: Namespace,
		}),
		collectors.NewGoCollector(),
		NewCollector(Registry),
	)
	return r
}

// Handler /metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(newMetricsRegistry(), promhttp.HandlerOpts{})
}
