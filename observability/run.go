package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/kbukum/querykit/errors"
	"github.com/kbukum/querykit/query"
)

// Query statuses reported on spans and metrics.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

type (
	runIDKey    struct{}
	elementsKey struct{}
)

// WithRunID stores the id of the current run in the context. Spans started by
// Run carry it as an attribute.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run id stored by WithRunID, or "".
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// Observe counts every element pulled through s under the given query name.
// Counting happens during iteration, so the returned sequence stays lazy.
// Inside Run the count also lands on the span. With nil Metrics and no
// enclosing Run, s is returned unchanged.
func Observe[T any](ctx context.Context, s *query.Sequence[T], m *Metrics, name string) *query.Sequence[T] {
	pulled, _ := ctx.Value(elementsKey{}).(*int64)
	if m == nil && pulled == nil {
		return s
	}
	return s.Tap(func(T) {
		if pulled != nil {
			*pulled++
		}
		if m != nil {
			m.RecordElements(ctx, name, 1)
		}
	})
}

// Run executes fn inside a span named after the query and records its
// duration and outcome. Elements pulled through Observe within fn are counted
// into the span's query.elements attribute. fn is expected to run a terminal reducer. Errors are
// recorded on the span with their querykit code and returned unchanged.
func Run[R any](ctx context.Context, name string, m *Metrics, fn func(ctx context.Context) (R, error)) (R, error) {
	start := time.Now()
	ctx, span := StartSpan(ctx, SpanQuery)
	defer span.End()

	span.SetAttributes(AttrQueryName.String(name))
	if id := RunIDFromContext(ctx); id != "" {
		span.SetAttributes(AttrRunID.String(id))
	}

	var pulled int64
	result, err := fn(context.WithValue(ctx, elementsKey{}, &pulled))
	duration := time.Since(start)
	status := StatusOK
	if err != nil {
		status = StatusError
		code := string(errors.CodeOf(err))
		if code == "" {
			code = "UNKNOWN"
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(AttrErrorCode.String(code), AttrErrorMessage.String(err.Error()))
		if m != nil {
			m.RecordError(ctx, name, code)
		}
	}
	span.SetAttributes(
		AttrQueryStatus.String(status),
		AttrElements.Int64(pulled),
		AttrDurationMs.Int64(duration.Milliseconds()),
	)
	if m != nil {
		m.RecordQuery(ctx, name, status, duration)
	}
	return result, err
}
