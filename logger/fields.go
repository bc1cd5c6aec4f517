package logger

import (
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldQuery     = "query"
	FieldOperator  = "operator"
	FieldIndex     = "index"
	FieldElement   = "element"
	FieldElements  = "elements"
	FieldError     = "error"
	FieldErrorCode = "error_code"
	FieldDuration  = "duration_ms"
	FieldTraceID   = "trace_id"
	FieldSpanID    = "span_id"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("done", logger.Fields("query", "distinct-pets", "elements", 4))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a query that failed.
func ErrorFields(query string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldQuery: query,
		FieldError: err.Error(),
	}
}

// DurationFields creates fields for a timed query.
func DurationFields(query string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldQuery:    query,
		FieldDuration: d.Milliseconds(),
	}
}

// MergeWithError adds an error field to an existing map.
func MergeWithError(fields map[string]interface{}, err error) map[string]interface{} {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields[FieldError] = err.Error()
	return fields
}
