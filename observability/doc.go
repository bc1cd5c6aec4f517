// Package observability provides OpenTelemetry tracing and metrics for query
// execution.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, &cfg)
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, &meterCfg)
//	defer mp.Shutdown(ctx)
//	metrics, err := observability.NewMetrics(observability.Meter("querydemo"))
//
// Queries:
//
//	pets := observability.Observe(ctx, query.FromSlice(owners), metrics, "owners")
//	n, err := observability.Run(ctx, "count-owners", metrics, func(context.Context) (int, error) {
//		return pets.Count()
//	})
package observability
