// Package operation wraps service operations with tracing, metrics, logging
// and transactions so each module service only writes its business logic.
package operation

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/darts-league/app/shared/attr"
	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/Black-And-White-Club/darts-league/app/shared/metrics"
	"github.com/Black-And-White-Club/darts-league/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Func is a unit of service work.
type Func[S, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// TxFunc is a unit of work bound to a database handle. The handle is nil
// when the service runs without a database.
type TxFunc[S, F any] func(ctx context.Context, db bun.IDB) (results.OperationResult[S, F], error)

// Observer carries the telemetry sinks of one service. Nil Metrics and
// Tracer are allowed.
type Observer struct {
	Service string
	Logger  *slog.Logger
	Metrics metrics.OperationMetrics
	Tracer  trace.Tracer
}

func (o Observer) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o Observer) record(fn func(m metrics.OperationMetrics)) {
	if o.Metrics != nil {
		fn(o.Metrics)
	}
}

// Observe runs op inside a span, counts it and converts panics into errors.
// Infrastructure errors come back wrapped with the operation name; failure
// results are logged at warn level and still count as handled.
func Observe[S, F any](ctx context.Context, o Observer, name, identifier string, op Func[S, F]) (result results.OperationResult[S, F], err error) {
	span := trace.SpanFromContext(ctx)
	if o.Tracer != nil {
		ctx, span = o.Tracer.Start(ctx, o.Service+"."+name, trace.WithAttributes(
			attribute.String("operation", name),
			attribute.String("identifier", identifier),
		))
	}
	defer span.End()

	log := o.logger().With(
		attr.ExtractCorrelationID(ctx),
		attr.String("operation", name),
		attr.String("identifier", identifier),
	)

	o.record(func(m metrics.OperationMetrics) { m.RecordOperationAttempt(ctx, name, o.Service) })
	started := time.Now()
	defer o.record(func(m metrics.OperationMetrics) {
		m.RecordOperationDuration(ctx, name, o.Service, time.Since(started))
	})

	defer func() {
		if r := recover(); r != nil {
			result, err = results.OperationResult[S, F]{}, fmt.Errorf("panic in %s: %v", name, r)
			log.ErrorContext(ctx, "Recovered panic in operation", attr.Error(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "panic")
			o.record(func(m metrics.OperationMetrics) { m.RecordOperationFailure(ctx, name, o.Service) })
		}
	}()

	result, err = op(ctx)
	if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
		log.ErrorContext(ctx, "Operation failed", attr.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.record(func(m metrics.OperationMetrics) { m.RecordOperationFailure(ctx, name, o.Service) })
		return result, err
	}
	if result.IsFailure() {
		log.WarnContext(ctx, "Operation returned failure", attr.Any("failure", *result.Failure))
	}
	o.record(func(m metrics.OperationMetrics) { m.RecordOperationSuccess(ctx, name, o.Service) })
	return result, nil
}

// InTx runs fn in a transaction on db. A nil db runs fn with a nil handle.
// The transaction rolls back when fn returns an error; failure results
// still commit.
func InTx[S, F any](ctx context.Context, db *bun.DB, opts *sql.TxOptions, fn TxFunc[S, F]) (results.OperationResult[S, F], error) {
	if db == nil {
		return fn(ctx, nil)
	}
	if opts == nil {
		opts = &sql.TxOptions{}
	}

	var result results.OperationResult[S, F]
	err := db.RunInTx(ctx, opts, func(ctx context.Context, tx bun.Tx) error {
		var err error
		result, err = fn(ctx, tx)
		return err
	})
	return result, err
}

// ReadOnly is the transaction mode for query-only operations.
var ReadOnly = &sql.TxOptions{ReadOnly: true}

// Fail turns a domain error into a failure result and passes anything else
// through as an infrastructure error.
func Fail[S any](err error) (results.OperationResult[S, error], error) {
	if errs.IsDomain(err) {
		return results.FailureResult[S, error](err), nil
	}
	return results.OperationResult[S, error]{}, err
}

// Unwrap converts an operation result into the (value, error) shape the
// service interfaces expose.
func Unwrap[S any](result results.OperationResult[S, error], err error) (S, error) {
	var zero S
	switch {
	case err != nil:
		return zero, err
	case result.IsFailure():
		return zero, *result.Failure
	case result.Success == nil:
		return zero, nil
	}
	return *result.Success, nil
}
