// Package validation wraps go-playground/validator for querykit.
//
// It serves two callers: the query engine, which checks numeric operator
// arguments (counts, indexes) before committing to any work, and the
// configuration layer, which validates structs through `validate` tags.
//
// # Usage
//
//	type Settings struct {
//	    Dataset string `mapstructure:"dataset" validate:"required"`
//	}
//	if err := validation.Validate(settings); err != nil { ... }
//
//	if err := validation.NonNegative("count", n); err != nil { ... }
package validation
