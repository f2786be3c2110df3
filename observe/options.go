package observe

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Reporter.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	level      slog.Level
	registerer prometheus.Registerer
	namespace  string
}

func defaultOptions() options {
	return options{
		level: slog.LevelWarn,
	}
}

// WithLogger sets the logger failures are written to. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel sets the level failures are logged at. Defaults to Warn.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithRegisterer sets where the Reporter's metrics are registered. By default
// they are not registered anywhere. Registering two Reporters with the same
// namespace on one registerer panics.
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = registerer
	}
}

// WithNamespace prefixes the metric names.
func WithNamespace(namespace string) Option {
	return func(o *options) {
		o.namespace = namespace
	}
}
