package hepvec

import (
	"log/slog"

	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/ragged"
	"github.com/hupe1980/hepvec/resource"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	controller       *resource.Controller
	chunkSize        int
	compression      columnar.Compression
	behaviors        *ragged.Behaviors
}

// Option configures the arrays built by NewArray, NewRagged and ReadArray.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for array kernels and
// the block codec. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hepvec.BasicMetricsCollector{}
//	arr, _ := hepvec.NewArray(ctx, cols, hepvec.WithMetricsCollector(metrics))
//	// ... use arr ...
//	stats := metrics.GetStats()
//	fmt.Printf("Kernels: %d, Avg latency: %dns\n", stats.KernelCount, stats.KernelAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := hepvec.NewJSONLogger(slog.LevelDebug)
//	arr, _ := hepvec.NewArray(ctx, cols, hepvec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithController bounds kernel workers, codec memory and codec IO.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithChunkSize sets the number of elements a worker evaluates at once.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithCompression selects the payload compression of WriteArray.
func WithCompression(c columnar.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithBehaviors sets the class registry of ragged arrays.
// If nil is passed, ragged.DefaultBehaviors is used.
func WithBehaviors(b *ragged.Behaviors) Option {
	return func(o *options) {
		o.behaviors = b
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}

func (o options) columnar() []columnar.Option {
	opts := []columnar.Option{
		columnar.WithLogger(o.logger.Logger),
		columnar.WithMetrics(o.metricsCollector),
		columnar.WithChunkSize(o.chunkSize),
		columnar.WithCompression(o.compression),
	}
	if o.controller != nil {
		opts = append(opts, columnar.WithController(o.controller))
	}
	return opts
}

func (o options) ragged() []ragged.Option {
	opts := []ragged.Option{
		ragged.WithLogger(o.logger.Logger),
		ragged.WithMetrics(o.metricsCollector),
		ragged.WithChunkSize(o.chunkSize),
	}
	if o.controller != nil {
		opts = append(opts, ragged.WithController(o.controller))
	}
	return opts
}
