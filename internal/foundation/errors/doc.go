// Package errors provides the classified error primitives used across wixproject.
//
// A ClassifiedError carries a broad category (config, validation, hook, ...), a severity
// and free-form context. The CLI maps categories to exit codes through CLIErrorAdapter.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryHook, "source formatted subscriber failed").
//		WithContext("hook", "source_formatted").
//		WithContext("subscriber", 2).
//		Build()
package errors
