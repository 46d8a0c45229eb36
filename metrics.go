package hepvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics of
// the array backends. Implement this interface to integrate with monitoring
// systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    kernelHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordKernel(op string, n int, duration time.Duration, err error) {
//	    p.kernelHistogram.WithLabelValues(op).Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordKernel is called after each element-wise array operation.
	// n is the number of elements evaluated, err is nil if successful.
	RecordKernel(op string, n int, duration time.Duration, err error)

	// RecordEncode is called after each array block is written.
	RecordEncode(bytes int64, duration time.Duration, err error)

	// RecordDecode is called after each array block is read.
	RecordDecode(bytes int64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordKernel(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordEncode(int64, time.Duration, error)       {}
func (NoopMetricsCollector) RecordDecode(int64, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	KernelCount      atomic.Int64
	KernelErrors     atomic.Int64
	KernelElements   atomic.Int64
	KernelTotalNanos atomic.Int64
	EncodeCount      atomic.Int64
	EncodeErrors     atomic.Int64
	EncodeBytes      atomic.Int64
	DecodeCount      atomic.Int64
	DecodeErrors     atomic.Int64
	DecodeBytes      atomic.Int64
}

// RecordKernel implements MetricsCollector.
func (b *BasicMetricsCollector) RecordKernel(op string, n int, duration time.Duration, err error) {
	b.KernelCount.Add(1)
	b.KernelTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.KernelErrors.Add(1)
		return
	}
	b.KernelElements.Add(int64(n))
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(bytes int64, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodeBytes.Add(bytes)
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(bytes int64, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	if err != nil {
		b.DecodeErrors.Add(1)
		return
	}
	b.DecodeBytes.Add(bytes)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		KernelCount:    b.KernelCount.Load(),
		KernelErrors:   b.KernelErrors.Load(),
		KernelElements: b.KernelElements.Load(),
		KernelAvgNanos: b.getAvgKernelNanos(),
		EncodeCount:    b.EncodeCount.Load(),
		EncodeErrors:   b.EncodeErrors.Load(),
		EncodeBytes:    b.EncodeBytes.Load(),
		DecodeCount:    b.DecodeCount.Load(),
		DecodeErrors:   b.DecodeErrors.Load(),
		DecodeBytes:    b.DecodeBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgKernelNanos() int64 {
	count := b.KernelCount.Load()
	if count == 0 {
		return 0
	}
	return b.KernelTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	KernelCount    int64
	KernelErrors   int64
	KernelElements int64
	KernelAvgNanos int64
	EncodeCount    int64
	EncodeErrors   int64
	EncodeBytes    int64
	DecodeCount    int64
	DecodeErrors   int64
	DecodeBytes    int64
}
