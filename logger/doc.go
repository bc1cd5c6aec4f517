// Package logger provides structured logging for querykit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. The query package uses
// it for the Trace operator; the demo CLI uses it for per-query summaries.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("querydemo").WithComponent("orders")
//	log.Info("query finished", logger.Fields(logger.FieldElements, 12))
package logger
