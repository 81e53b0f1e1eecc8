package recgo

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/recgo/model"
)

// BaselineLookup returns the baseline vector for a candidate, and
// whether one is known. Candidates without a baseline are skipped from
// the batch like a dimension mismatch.
type BaselineLookup func(id model.ItemID) ([]float32, bool)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	parallelism      int
	queryBaseline    []float32
	baselineLookup   BaselineLookup
}

// Option configures Engine construction.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &recgo.BasicMetricsCollector{}
//	engine, _ := recgo.New(choice, recgo.WithMetricsCollector(metrics))
//	// ... use engine ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithParallelism bounds the number of concurrent candidate scoring
// goroutines. Values below 1 fall back to GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithBaselines supplies the baseline estimates required by
// similarity.KindPearsonBaseline: one vector for the query and a
// lookup for candidate baselines.
func WithBaselines(query []float32, lookup BaselineLookup) Option {
	return func(o *options) {
		o.queryBaseline = query
		o.baselineLookup = lookup
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		parallelism:      runtime.GOMAXPROCS(0),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.parallelism < 1 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}
	return o
}
