package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kbukum/querykit/dataset"
	"github.com/kbukum/querykit/errors"
	"github.com/kbukum/querykit/logger"
	"github.com/kbukum/querykit/observability"
	"github.com/kbukum/querykit/query"
)

// Runner executes catalogue queries against one dataset and prints results.
type Runner struct {
	ds      *dataset.Dataset
	metrics *observability.Metrics
	log     *logger.Logger
	out     io.Writer
}

// NewRunner creates a Runner. metrics may be nil.
func NewRunner(ds *dataset.Dataset, metrics *observability.Metrics, log *logger.Logger, out io.Writer) *Runner {
	return &Runner{ds: ds, metrics: metrics, log: log, out: out}
}

func (r *Runner) owners(ctx context.Context, name string) *query.Sequence[dataset.Owner] {
	return observability.Observe(ctx, query.FromSlice(r.ds.Owners), r.metrics, name)
}

func (r *Runner) pets(ctx context.Context, name string) *query.Sequence[dataset.Pet] {
	return query.SelectMany(r.owners(ctx, name), func(o dataset.Owner) *query.Sequence[dataset.Pet] {
		return query.FromSlice(o.Pets)
	}).Trace(r.log, "pets")
}

// Run executes the named queries in order, or the whole catalogue when names
// is empty. A failing query is reported and the rest still run; the returned
// error counts the failures.
func (r *Runner) Run(ctx context.Context, names []string) error {
	selected := catalogue
	if len(names) > 0 {
		selected = make([]namedQuery, 0, len(names))
		for _, name := range names {
			q, ok := findQuery(name)
			if !ok {
				return errors.InvalidArgument("query", fmt.Sprintf("has no catalogue entry named %q", name))
			}
			selected = append(selected, q)
		}
	}

	failed := 0
	for _, q := range selected {
		if err := r.runOne(ctx, q); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d queries failed", failed, len(selected))
	}
	return nil
}

func (r *Runner) runOne(ctx context.Context, q namedQuery) error {
	start := time.Now()
	result, err := observability.Run(ctx, q.name, r.metrics, func(ctx context.Context) (any, error) {
		return q.run(ctx, r)
	})
	if err != nil {
		fields := logger.ErrorFields(q.name, err)
		fields[logger.FieldErrorCode] = string(errors.CodeOf(err))
		r.log.Error("query failed", fields)
		fmt.Fprintf(r.out, "%-20s error: %v\n", q.name, err)
		return err
	}
	r.log.Info("query finished", logger.DurationFields(q.name, time.Since(start)))
	fmt.Fprintf(r.out, "%-20s %v\n", q.name, result)
	return nil
}
