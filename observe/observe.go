// Package observe reports the outcome of precondition checks to logs,
// metrics and traces.
//
// The preconditions package never calls into this package. Services that
// want visibility into rejected arguments route the errors through a
// Reporter themselves:
//
//	reporter := observe.NewReporter(
//	    observe.WithLogger(logger),
//	    observe.WithRegisterer(prometheus.DefaultRegisterer),
//	)
//
//	name, err := preconditions.CheckString(req.Name, "[a-z]+", "bad name")
//	if err = reporter.Record(ctx, "create_user.name", err); err != nil {
//	    return err
//	}
//
//	user.Name = name
//
// Metrics are only exported when a registerer is supplied.
package observe

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/amp-labs/morepreconditions/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Outcome labels, as returned by Kind.
const (
	KindOK              = "ok"
	KindNullReference   = "null_reference"
	KindInvalidArgument = "invalid_argument"
	KindInvalidPattern  = "invalid_pattern"
	KindError           = "error"
)

// FailureEvent is the name of the span event added for each failure.
const FailureEvent = "precondition.failed"

// Reporter records check outcomes. It is safe for concurrent use.
type Reporter struct {
	logger *slog.Logger
	level  slog.Level
	checks *prometheus.CounterVec
}

// NewReporter creates a Reporter. Its counter is only registered when
// WithRegisterer is given, so any number of default Reporters can coexist.
func NewReporter(opts ...Option) *Reporter {
	o := defaultOptions()

	for _, opt := range opts {
		opt(&o)
	}

	checks := promauto.With(o.registerer).NewCounterVec(prometheus.CounterOpts{
		Namespace: o.namespace,
		Name:      "precondition_checks_total",
		Help:      "The total number of precondition checks recorded, by check and outcome",
	}, []string{"check", "outcome"})

	return &Reporter{
		logger: o.logger,
		level:  o.level,
		checks: checks,
	}
}

// Kind classifies err into one of the outcome labels.
func Kind(err error) string {
	switch {
	case err == nil:
		return KindOK
	case stderrors.Is(err, errors.ErrNullReference):
		return KindNullReference
	case stderrors.Is(err, errors.ErrInvalidArgument):
		return KindInvalidArgument
	case stderrors.Is(err, errors.ErrInvalidPattern):
		return KindInvalidPattern
	default:
		return KindError
	}
}

// Init pre-creates the counters for check so that every outcome reports
// zero before the first failure.
func (r *Reporter) Init(check string) {
	for _, kind := range []string{KindOK, KindNullReference, KindInvalidArgument, KindInvalidPattern, KindError} {
		r.checks.WithLabelValues(check, kind).Add(0)
	}
}

// Record counts the outcome of check and returns err unchanged. Failures are
// also logged and added as an event to the span carried by ctx, if any.
func (r *Reporter) Record(ctx context.Context, check string, err error) error {
	kind := Kind(err)

	r.checks.WithLabelValues(check, kind).Inc()

	if err == nil {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	r.getLogger().Log(ctx, r.level, "Precondition failed",
		"check", check,
		"kind", kind,
		"error", err)

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent(FailureEvent, trace.WithAttributes(
			attribute.String("precondition.check", check),
			attribute.String("precondition.kind", kind),
			attribute.String("error.message", err.Error()),
		))
	}

	return err
}

func (r *Reporter) getLogger() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}

	return slog.Default()
}
