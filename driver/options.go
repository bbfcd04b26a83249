package driver

import (
	"go.uber.org/zap"

	"github.com/kvbrowse/kvcore/internal/metrics"
	"github.com/kvbrowse/kvcore/internal/options"
)

type baseOptions struct {
	logger   *zap.Logger
	metrics  *metrics.Collectors
	database string
}

func defaultBaseOptions() baseOptions {
	return baseOptions{
		logger:   zap.NewNop(),
		metrics:  nil,
		database: "db0",
	}
}

// Option configures a driver.
type Option = options.OptionCallback[baseOptions]

// WithLogger sets the logger. Commands are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *baseOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMetrics sets the collectors commands and pages are recorded on.
func WithMetrics(collectors *metrics.Collectors) Option {
	return func(opts *baseOptions) {
		opts.metrics = collectors
	}
}

// WithDatabase sets the database name reported by CurrentDatabaseInfo.
func WithDatabase(name string) Option {
	return func(opts *baseOptions) {
		if name != "" {
			opts.database = name
		}
	}
}
