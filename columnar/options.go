package columnar

import (
	"io"
	"log/slog"
	"time"

	"github.com/hupe1980/hepvec/resource"
)

// DefaultChunkSize is the number of elements a worker evaluates at once.
const DefaultChunkSize = 4096

// MetricsObserver receives per-call measurements.
// hepvec.BasicMetricsCollector implements it.
type MetricsObserver interface {
	// RecordKernel is called after each element-wise call with the number of
	// elements evaluated.
	RecordKernel(op string, n int, duration time.Duration, err error)
	// RecordEncode is called after each block is written.
	RecordEncode(bytes int64, duration time.Duration, err error)
	// RecordDecode is called after each block is read.
	RecordDecode(bytes int64, duration time.Duration, err error)
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (NoopMetricsObserver) RecordKernel(string, int, time.Duration, error) {}
func (NoopMetricsObserver) RecordEncode(int64, time.Duration, error)       {}
func (NoopMetricsObserver) RecordDecode(int64, time.Duration, error)       {}

var (
	defaultController = resource.NewController(resource.Config{})
	discardLogger     = slog.New(slog.NewTextHandler(io.Discard, nil))
	defaultOpts       = applyOptions(nil)
)

type options struct {
	logger      *slog.Logger
	metrics     MetricsObserver
	controller  *resource.Controller
	chunkSize   int
	compression Compression
}

// Option configures an Array. Arrays derived from an Array share its options.
type Option func(*options)

// WithLogger logs kernel dispatch and codec blocks at debug level and corrupt
// blocks at warn level. Pass nil to disable logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = discardLogger
		}
		o.logger = l
	}
}

// WithMetrics configures a metrics observer. Pass nil to disable metrics.
func WithMetrics(m MetricsObserver) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsObserver{}
		}
		o.metrics = m
	}
}

// WithController bounds the worker slots, codec memory and codec IO.
// By default all arrays share one controller with GOMAXPROCS workers.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithChunkSize sets the number of elements per worker task.
// Values below 1 select DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultChunkSize
		}
		o.chunkSize = n
	}
}

// WithCompression selects the payload compression used by WriteTo.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

func applyOptions(optFns []Option) *options {
	o := &options{
		logger:      discardLogger,
		metrics:     NoopMetricsObserver{},
		controller:  defaultController,
		chunkSize:   DefaultChunkSize,
		compression: CompressionNone,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(o)
		}
	}
	return o
}
