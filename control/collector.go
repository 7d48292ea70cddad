// File: control/collector.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus collector for native heap telemetry.

package control

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	totalBytesDesc = prometheus.NewDesc(
		"native_heap_allocated_bytes",
		"Tracked native bytes currently allocated.",
		nil, nil)
	residentBytesDesc = prometheus.NewDesc(
		"native_heap_resident_bytes",
		"Process resident set size in bytes (0 where unavailable).",
		nil, nil)
	activeBlocksDesc = prometheus.NewDesc(
		"native_heap_active_blocks",
		"Number of live native blocks.",
		nil, nil)
)

// Collector exports heap telemetry as prometheus gauges.
type Collector struct{}

// NewCollector returns a collector ready for prometheus.MustRegister.
func NewCollector() *Collector { return &Collector{} }

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- totalBytesDesc
	ch <- residentBytesDesc
	ch <- activeBlocksDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := TakeSnapshot()
	ch <- prometheus.MustNewConstMetric(totalBytesDesc, prometheus.GaugeValue, float64(s.TotalBytes))
	ch <- prometheus.MustNewConstMetric(residentBytesDesc, prometheus.GaugeValue, float64(s.ResidentBytes))
	ch <- prometheus.MustNewConstMetric(activeBlocksDesc, prometheus.GaugeValue, float64(s.ActiveBlocks))
}
