package ragged

import (
	"io"
	"log/slog"

	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/resource"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type options struct {
	logger *slog.Logger
	inner  []columnar.Option
}

// Option configures an Array. Options that concern element-wise evaluation
// are forwarded to the inner columnar array.
type Option func(*options)

// WithLogger logs list-level operations at debug level and passes l on to
// the inner array.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = discardLogger
		}
		o.logger = l
		o.inner = append(o.inner, columnar.WithLogger(l))
	}
}

// WithMetrics configures the metrics observer of the inner array.
func WithMetrics(m columnar.MetricsObserver) Option {
	return func(o *options) {
		o.inner = append(o.inner, columnar.WithMetrics(m))
	}
}

// WithController bounds the inner array's workers, codec memory and IO.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.inner = append(o.inner, columnar.WithController(c))
	}
}

// WithChunkSize sets the inner array's chunk size.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.inner = append(o.inner, columnar.WithChunkSize(n))
	}
}

func applyOptions(optFns []Option) *options {
	o := &options{logger: discardLogger}
	for _, fn := range optFns {
		if fn != nil {
			fn(o)
		}
	}
	return o
}
